package emulator_test

import (
	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/accsim/cpu"
	"github.com/ezrec/accsim/emulator"
)

var L = func(label, mnemonic, operand string) string {
	return cpu.FormatLine(label, mnemonic, operand, "")
}

var _ = Describe("Emulator", func() {
	var (
		asm *cpu.Assembler
		emu *emulator.Emulator
	)

	load := func(program ...string) {
		prog := asm.Assemble(program)
		Expect(prog.Err()).NotTo(HaveOccurred())
		Expect(emu.Load(prog)).To(Succeed())
	}

	BeforeEach(func() {
		asm = &cpu.Assembler{}
		emu = emulator.NewEmulator()
		emu.MaxSteps = 500
	})

	Context("arithmetic", func() {
		It("should add a memory cell to an immediate load", func() {
			load(
				L("START", "LDA#", "5"),
				L("", "ADD", "TEN"),
				L("", "HLT", ""),
				L("TEN", "", "10"),
			)

			regs, err := emu.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(regs.ACC).To(Equal(15))
			Expect(regs.Status).To(Equal(cpu.STATUS_NONE))
			Expect(emu.State).To(Equal(cpu.STATE_HALTED_NORMAL))
		})

		It("should halt with the overflow left visible", func() {
			load(
				L("START", "LDA#", "127"),
				L("", "ADD", "ONE"),
				L("", "HLT", ""),
				L("ONE", "", "1"),
			)

			regs, err := emu.Run()
			Expect(err).To(MatchError(cpu.ErrOverflow))
			Expect(regs.ERR).To(Equal(1))
			Expect(regs.ACC).To(Equal(128))
			Expect(regs.Status).To(Equal(cpu.STATUS_V))
			Expect(emu.State).To(Equal(cpu.STATE_HALTED_ERROR))
		})

		It("should report a negative result below -128 as negative", func() {
			load(
				L("START", "LDA#", "-100"),
				L("", "SUB", "HUND"),
				L("", "HLT", ""),
				L("HUND", "", "100"),
			)

			regs, err := emu.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(regs.ACC).To(Equal(-200))
			Expect(regs.Status).To(Equal(cpu.STATUS_N))
			Expect(regs.ERR).To(Equal(0))
		})

		It("should compare without changing the accumulator", func() {
			load(
				L("", "LDA#", "9"),
				L("", "CMP#", "9"),
				L("", "HLT", ""),
			)

			regs, err := emu.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(regs.ACC).To(Equal(9))
			Expect(regs.Status.Zero()).To(BeTrue())
		})
	})

	Context("control flow", func() {
		It("should branch only when zero is set", func() {
			load(
				L("START", "LDA#", "1"),
				L("", "CMP#", "1"),
				L("", "BEQ", "YES"),
				L("", "LDA#", "-1"),
				L("", "HLT", ""),
				L("YES", "LDA#", "42"),
				L("", "HLT", ""),
			)

			regs, err := emu.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(regs.ACC).To(Equal(42))
			Expect(regs.PC).To(Equal(7))
		})

		It("should return to the instruction after the call", func() {
			load(
				L("START", "JSR", "SUB1"),
				L("", "STA", "OUT"),
				L("", "HLT", ""),
				L("SUB1", "JSR", "SUB2"),
				L("", "ADD", "ONE"),
				L("", "RTN", ""),
				L("SUB2", "LDA#", "40"),
				L("", "ADD", "ONE"),
				L("", "RTN", ""),
				L("ONE", "", "1"),
				L("OUT", "", "0"),
			)

			regs, err := emu.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(regs.ACC).To(Equal(42))
			Expect(regs.TOS).To(Equal(cpu.HI_MEM))
			Expect(emu.Program.Memory[11].OperandValue).To(Equal(42))
			Expect(emu.Program.Memory[10].OperandValue).To(Equal(1))
		})

		It("should stop runaway loops at the step limit", func() {
			load(L("LOOP", "JMP", "LOOP"))

			_, err := emu.Run()
			Expect(err).To(MatchError(cpu.ErrStepLimit))
			Expect(emu.Frames).To(Equal(500))
		})

		It("should fault once recursion overruns the program", func() {
			load(L("LOOP", "JSR", "LOOP"))

			// The stack grows over every cell, including the call
			// itself, until execution falls off the end of memory.
			regs, err := emu.Run()
			Expect(err).To(MatchError(cpu.ErrAddress(cpu.HI_MEM)))
			Expect(regs.ERR).To(Equal(1))
			Expect(regs.TOS).To(Equal(0))
			Expect(regs.PC).To(Equal(cpu.HI_MEM))
		})

		It("should fault on return with an empty stack", func() {
			load(L("", "RTN", ""))

			regs, err := emu.Run()
			Expect(err).To(MatchError(cpu.ErrStackEmpty))
			Expect(regs.ERR).To(Equal(1))
		})
	})

	Context("assembly gate", func() {
		It("should refuse a program with an unresolved operand", func() {
			prog := asm.Assemble([]string{L("", "LDA", "FOO")})
			Expect(prog.OK()).To(BeFalse())
			Expect(prog.Memory[0].Opcode).To(Equal(cpu.OP_ERR))
			Expect(emu.Load(prog)).To(MatchError(emulator.ErrNotAssembled))
		})
	})

	Context("tracing", func() {
		var (
			mockCtrl   *gomock.Controller
			mockTracer *MockTracer
		)

		BeforeEach(func() {
			mockCtrl = gomock.NewController(GinkgoT())
			mockTracer = NewMockTracer(mockCtrl)
			emu.Tracer = mockTracer
		})

		AfterEach(func() {
			mockCtrl.Finish()
		})

		It("should trace every frame before the halt", func() {
			load(
				L("", "LDA#", "3"),
				L("", "HLT", ""),
			)

			gomock.InOrder(
				mockTracer.EXPECT().Frame(0, emu),
				mockTracer.EXPECT().Frame(1, emu),
				mockTracer.EXPECT().Frame(2, emu),
			)

			_, err := emu.Run()
			Expect(err).NotTo(HaveOccurred())
		})

		It("should not trace the failing instruction", func() {
			load(
				L("", "LDA#", "100"),
				L("", "ADD", "ME"),
				L("ME", "", "100"),
			)

			gomock.InOrder(
				mockTracer.EXPECT().Frame(0, emu),
				mockTracer.EXPECT().Frame(1, emu),
				mockTracer.EXPECT().Frame(2, emu),
			)

			_, err := emu.Run()
			Expect(err).To(HaveOccurred())
		})
	})
})
