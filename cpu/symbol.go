package cpu

import (
	"iter"
)

// START is the label of the program entry point.
const START = "START"

// SymbolTable binds labels to memory addresses. Bindings are never replaced.
type SymbolTable struct {
	address map[string]int
	order   []string
}

// Define binds a label to an address. Redefining a label is an error and
// keeps the first binding.
func (st *SymbolTable) Define(label string, addr int) (err error) {
	if _, ok := st.address[label]; ok {
		err = ErrLabelDuplicate
		return
	}

	if st.address == nil {
		st.address = make(map[string]int, HI_MEM)
	}
	st.address[label] = addr
	st.order = append(st.order, label)

	return
}

// Lookup returns the address bound to a label.
func (st *SymbolTable) Lookup(label string) (addr int, ok bool) {
	addr, ok = st.address[label]
	return
}

// Len returns the number of labels.
func (st *SymbolTable) Len() int {
	return len(st.order)
}

// All iterates over the labels in order of definition.
func (st *SymbolTable) All() iter.Seq2[string, int] {
	return func(yield func(label string, addr int) bool) {
		for _, label := range st.order {
			if !yield(label, st.address[label]) {
				return
			}
		}
	}
}

// Reset removes all labels.
func (st *SymbolTable) Reset() {
	clear(st.address)
	st.order = st.order[:0]
}
