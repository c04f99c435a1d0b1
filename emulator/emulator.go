// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/pkg/errors"

	"github.com/ezrec/stackvm/asm"
	"github.com/ezrec/stackvm/io"
	"github.com/ezrec/stackvm/vm"
)

const (
	KIND_LITERAL = "literal" // Instruction pushing its opcode.
	KIND_COMMAND = "command" // Instruction invoking a handler.

	TRACE_DEPTH = 3 // Stack cells shown per traced step.
)

// Executor runs a Program on its own Vm.
type Executor struct {
	Verbose bool         // If set, logs every executed instruction.
	*vm.Vm               // Machine state.
	Program *asm.Program // Program loaded in the code zone.
	Console io.Console   // Console used by IN and OUT.
	Steps   int64        // Instructions executed since the last reset.

	halted bool
	rc     int64
}

// NewExecutor loads a program into a fresh machine.
func NewExecutor(prog *asm.Program, console io.Console) (emu *Executor, err error) {
	machine, err := vm.New(prog.Opcodes())
	if err != nil {
		err = errors.Wrap(err, f("failed to load program"))
		return
	}

	emu = &Executor{
		Vm:      machine,
		Program: prog,
		Console: console,
	}

	return
}

// Reset the machine to its initial state; the program is kept.
func (emu *Executor) Reset() {
	emu.Vm.Reset()
	emu.Steps = 0
	emu.halted = false
	emu.rc = 0
}

// Halted returns the return code, if the program has halted.
func (emu *Executor) Halted() (rc int64, ok bool) {
	return emu.rc, emu.halted
}

// Step executes a single instruction. done is set once the program halts.
func (emu *Executor) Step() (done bool, err error) {
	if emu.halted {
		done = true
		return
	}

	ip := emu.Vm.Ip
	ins, ok := emu.Program.Debug(ip)
	if !ok {
		err = ErrIpOutside(ip)
		return
	}

	kind := KIND_COMMAND
	if ins.IsLiteral() {
		kind = KIND_LITERAL
	}

	defer func() {
		if err != nil {
			err = &ErrRuntime{Pos: ins.Token.Pos, Kind: kind, Text: ins.Token.Text(), Err: err}
		}
	}()

	if emu.Verbose {
		log.Printf("%v: %-16v %v", ins.Token.Pos, ins.Token.Text(), emu.Vm.StackTop(TRACE_DEPTH))
	}

	emu.Vm.Ip++
	emu.Steps++

	if ins.IsLiteral() {
		err = emu.Vm.Push(ins.Opcode)
		return
	}

	handler, err := vm.GetHandler(ins.Opcode)
	if err != nil {
		return
	}

	rc, halt, err := handler(emu.Vm, emu.Console)
	if err != nil {
		return
	}

	if halt {
		if emu.Verbose {
			log.Printf("halted after %v steps, rc %v", emu.Steps, rc)
		}
		emu.halted = true
		emu.rc = rc
		done = true
	}

	return
}

// Run steps the program until it halts, returning its return code.
func (emu *Executor) Run() (rc int64, err error) {
	for {
		var done bool
		done, err = emu.Step()
		if err != nil {
			if emu.Verbose {
				log.Printf("stopped after %v steps: %v\n%v", emu.Steps, err, emu.Vm.String())
			}
			return
		}
		if done {
			break
		}
	}

	rc = emu.rc
	return
}
