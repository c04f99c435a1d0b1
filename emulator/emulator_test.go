package emulator_test

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/stackvm/asm"
	"github.com/ezrec/stackvm/emulator"
	"github.com/ezrec/stackvm/io"
	"github.com/ezrec/stackvm/vm"
)

func load(text string, console io.Console) *emulator.Executor {
	assembler := &asm.Assembler{}
	prog, err := assembler.Assemble(asm.Source{Name: "test", Text: text})
	Expect(err).NotTo(HaveOccurred())

	emu, err := emulator.NewExecutor(prog, console)
	Expect(err).NotTo(HaveOccurred())

	return emu
}

var _ = Describe("Executor", func() {
	var (
		mockCtrl    *gomock.Controller
		mockConsole *MockConsole
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockConsole = NewMockConsole(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	Context("initial state", func() {
		It("should start at the code base with an empty stack", func() {
			emu := load("2 3 ADD HALT", mockConsole)

			Expect(emu.Ip).To(Equal(int64(vm.CODE_BASE)))
			Expect(emu.Sp).To(Equal(int64(vm.MEMORY_SIZE)))
			Expect(emu.StackTop(1)).To(BeEmpty())
			_, halted := emu.Halted()
			Expect(halted).To(BeFalse())
		})
	})

	Context("running", func() {
		It("should add and halt", func() {
			emu := load("2 3 ADD HALT", mockConsole)

			rc, err := emu.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(rc).To(Equal(int64(5)))
			Expect(emu.Steps).To(Equal(int64(4)))
			Expect(emu.Sp).To(Equal(int64(vm.MEMORY_SIZE)))
		})

		It("should step one instruction at a time", func() {
			emu := load("7 HALT", mockConsole)

			done, err := emu.Step()
			Expect(err).NotTo(HaveOccurred())
			Expect(done).To(BeFalse())
			Expect(emu.StackTop(1)).To(Equal([]int64{7}))
			Expect(emu.Ip).To(Equal(int64(257)))

			done, err = emu.Step()
			Expect(err).NotTo(HaveOccurred())
			Expect(done).To(BeTrue())

			rc, halted := emu.Halted()
			Expect(halted).To(BeTrue())
			Expect(rc).To(Equal(int64(7)))

			// A halted program stays halted.
			done, err = emu.Step()
			Expect(err).NotTo(HaveOccurred())
			Expect(done).To(BeTrue())
			Expect(emu.Steps).To(Equal(int64(2)))
		})

		It("should jump through labels", func() {
			emu := load("skip SETIP 99 HALT :skip 7 HALT", mockConsole)

			rc, err := emu.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(rc).To(Equal(int64(7)))
		})

		It("should run again after a reset", func() {
			emu := load("PROGRAM_SIZE 1 SAVE PROGRAM_SIZE LOAD 41 ADD HALT", mockConsole)

			rc, err := emu.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(rc).To(Equal(int64(42)))

			emu.Reset()
			Expect(emu.Steps).To(BeZero())
			_, halted := emu.Halted()
			Expect(halted).To(BeFalse())

			rc, err = emu.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(rc).To(Equal(int64(42)))
		})

		It("should trace when verbose", func() {
			var buff bytes.Buffer
			log.SetOutput(&buff)
			defer log.SetOutput(os.Stderr)

			emu := load("2 HALT", mockConsole)
			emu.Verbose = true

			_, err := emu.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(buff.String()).To(ContainSubstring("test:1:3: HALT"))
			Expect(buff.String()).To(ContainSubstring("halted after 2 steps, rc 2"))
		})

		It("should dump the machine state when verbose and failing", func() {
			var buff bytes.Buffer
			log.SetOutput(&buff)
			defer log.SetOutput(os.Stderr)

			emu := load("7 DROP HALT", mockConsole)
			emu.Verbose = true

			_, err := emu.Run()
			Expect(err).To(HaveOccurred())
			Expect(buff.String()).To(ContainSubstring("stopped after 3 steps: test:1:8: failed to execute command instruction HALT"))
			Expect(buff.String()).To(ContainSubstring("   ip: 259\n"))
			Expect(buff.String()).To(ContainSubstring("stack: --\n"))
		})
	})

	Context("console", func() {
		It("should print characters", func() {
			gomock.InOrder(
				mockConsole.EXPECT().PrintChar(int64('H')).Return(nil),
				mockConsole.EXPECT().PrintChar(int64('i')).Return(nil),
			)

			emu := load("72 OUT 105 OUT 0 HALT", mockConsole)

			rc, err := emu.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(rc).To(BeZero())
		})

		It("should read characters", func() {
			mockConsole.EXPECT().GetChar().Return(int64('A'), nil)

			emu := load("IN HALT", mockConsole)

			rc, err := emu.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(rc).To(Equal(int64('A')))
		})

		It("should report the end of input", func() {
			mockConsole.EXPECT().GetChar().Return(int64(0), io.ErrInputEnd)

			emu := load("IN HALT", mockConsole)

			_, err := emu.Run()
			Expect(err).To(MatchError("test:1:1: failed to execute command instruction IN: failed to read character: end of input"))
			Expect(errors.Is(err, io.ErrInputEnd)).To(BeTrue())
		})

		It("should report print failures", func() {
			mockConsole.EXPECT().PrintChar(int64(-5)).Return(io.ErrCharInvalid(-5))

			emu := load("1\n  0 5 SUB OUT", mockConsole)

			_, err := emu.Run()
			Expect(err).To(MatchError("test:2:11: failed to execute command instruction OUT: failed to print character: invalid character code -5"))
		})

		It("should run against a tape", func() {
			var output strings.Builder
			tape := &io.Tape{Input: strings.NewReader("x"), Output: &output}

			emu := load("IN DUP OUT 0 HALT", tape)

			rc, err := emu.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(rc).To(BeZero())
			Expect(output.String()).To(Equal("x"))
		})
	})

	Context("errors", func() {
		It("should fail HALT on an empty stack", func() {
			emu := load("HALT", mockConsole)

			_, err := emu.Run()
			Expect(err).To(MatchError("test:1:1: failed to execute command instruction HALT: failed to pop value: invalid memory read at 1000000: address out of range"))
			Expect(errors.Is(err, vm.ErrAddressRange)).To(BeTrue())

			var runtime *emulator.ErrRuntime
			Expect(errors.As(err, &runtime)).To(BeTrue())
			Expect(runtime.Pos).To(Equal(asm.Position{Name: "test", Line: 1, Column: 1}))
			Expect(runtime.Kind).To(Equal(emulator.KIND_COMMAND))
		})

		It("should fail a literal push into code", func() {
			emu := load("1 HALT", mockConsole)
			machine, err := vm.NewSize(258, emu.Program.Opcodes())
			Expect(err).NotTo(HaveOccurred())
			emu.Vm = machine

			_, err = emu.Run()
			Expect(err).To(MatchError("test:1:1: failed to execute literal instruction 1: failed to push value: invalid memory write at 257: code is read-only"))
			Expect(errors.Is(err, vm.ErrCodeReadOnly)).To(BeTrue())
		})

		It("should fail on an opcode without handler", func() {
			emu := load("-100", mockConsole)

			_, err := emu.Run()
			Expect(err).To(MatchError("test:1:1: failed to execute command instruction -100: no handler for opcode -100"))
			Expect(errors.Is(err, vm.ErrHandlerMissing(-100))).To(BeTrue())
		})

		It("should fail when running off the end of the code", func() {
			emu := load("1 2", mockConsole)

			_, err := emu.Run()
			Expect(err).To(MatchError("instruction pointer outside code: 258"))
			Expect(emu.Steps).To(Equal(int64(2)))
		})

		It("should fail jumping into the banned zone", func() {
			emu := load("0 SETIP", mockConsole)

			_, err := emu.Run()
			Expect(err).To(MatchError(emulator.ErrIpOutside(0)))
		})

		It("should refuse to write code", func() {
			emu := load("256 0 SAVE", mockConsole)

			_, err := emu.Run()
			Expect(err).To(MatchError("test:1:7: failed to execute command instruction SAVE: invalid memory write at 256: code is read-only"))
		})

		It("should fail IN without a console", func() {
			emu := load("IN", nil)

			_, err := emu.Run()
			Expect(errors.Is(err, vm.ErrConsoleMissing)).To(BeTrue())
		})
	})
})
