package cpu

// Stack is the return stack. It occupies the operand values of the memory
// cells at the top of memory, growing down from HI_MEM.
type Stack struct {
	Memory *Memory
	Tos    int // Address of the top of stack; HI_MEM when empty.
}

func (s *Stack) Push(value int) (err error) {
	if s.Full() {
		err = ErrStackFull
		return
	}

	s.Tos--
	s.Memory[s.Tos].OperandValue = value
	return
}

func (s *Stack) Pop() (value int, err error) {
	value, err = s.Peek()
	if err == nil {
		s.Tos++
	}
	return
}

func (s *Stack) Peek() (value int, err error) {
	if s.Empty() {
		err = ErrStackEmpty
		return
	}
	if !Valid(s.Tos) {
		err = ErrAddress(s.Tos)
		return
	}

	value = s.Memory[s.Tos].OperandValue
	return
}

func (s *Stack) Empty() bool {
	return s.Tos >= HI_MEM
}

func (s *Stack) Full() bool {
	return s.Tos <= 0
}

// Depth returns the number of values on the stack.
func (s *Stack) Depth() int {
	return max(HI_MEM-s.Tos, 0)
}

// Values returns the stack contents, top first.
func (s *Stack) Values() (values []int) {
	for addr := max(s.Tos, 0); addr < HI_MEM; addr++ {
		values = append(values, s.Memory[addr].OperandValue)
	}
	return
}

func (s *Stack) Reset() {
	s.Tos = HI_MEM
}
