package asm

import (
	"fmt"
	"io"

	"github.com/ezrec/stackvm/vm"
)

// Instruction is one cell of the code zone and the token it came from.
type Instruction struct {
	Opcode int64
	Token  Token
}

// IsLiteral returns true if the instruction pushes its opcode.
func (ins Instruction) IsLiteral() bool {
	return ins.Opcode >= 0
}

// Program is an assembled instruction stream. Instruction n lives at
// address vm.CODE_BASE+n.
type Program struct {
	Instructions []Instruction
}

// Opcodes returns the code zone image of the program.
func (prog *Program) Opcodes() (codes []int64) {
	codes = make([]int64, len(prog.Instructions))
	for n, ins := range prog.Instructions {
		codes[n] = ins.Opcode
	}

	return
}

// Debug returns the instruction at an absolute address.
func (prog *Program) Debug(addr int64) (ins *Instruction, ok bool) {
	index := addr - vm.CODE_BASE
	if index < 0 || index >= int64(len(prog.Instructions)) {
		return
	}

	return &prog.Instructions[index], true
}

// Listing writes one line per instruction: address, opcode, source word,
// and source position.
func (prog *Program) Listing(w io.Writer) (err error) {
	for n, ins := range prog.Instructions {
		text := ins.Token.Text()
		if mnemonic := vm.Mnemonic(ins.Opcode); mnemonic != "" && mnemonic != text {
			text += " (" + mnemonic + ")"
		}
		_, err = fmt.Fprintf(w, "%8d %20d  %-24s ; %v\n", vm.CODE_BASE+n, ins.Opcode, text, ins.Token.Pos)
		if err != nil {
			return
		}
	}

	return
}
