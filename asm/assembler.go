// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"log"
	"slices"

	"github.com/ezrec/stackvm/internal"
	"github.com/ezrec/stackvm/vm"
)

// Source is one named input text.
type Source struct {
	Name string // Name used in positions, usually a file name.
	Text string
}

// Assembler turns sources into a Program.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Labels  Labels // Label table of the last assembly.

	predefine []predefine
}

// Generate translates a declaration-free token stream into instructions.
func Generate(tokens []Token, labels Labels) (prog *Program, err error) {
	prog = &Program{
		Instructions: make([]Instruction, 0, len(tokens)),
	}

	for _, tok := range tokens {
		var opcode int64
		switch tok.Kind {
		case TOKEN_INTEGER:
			opcode = tok.Value
		case TOKEN_IDENT:
			var ok bool
			opcode, ok = labels[tok.Name]
			if !ok {
				err = ErrIdentUndefined(tok.Name)
			}
		case TOKEN_DECLARATION:
			err = ErrDeclarationUnexpected
		}
		if err != nil {
			err = &ErrSyntax{Pos: tok.Pos, Err: err}
			prog = nil
			return
		}
		prog.Instructions = append(prog.Instructions, Instruction{Opcode: opcode, Token: tok})
	}

	return
}

// Assemble tokenizes each source, resolves labels over all of them in
// order, and generates the program.
func (asm *Assembler) Assemble(sources ...Source) (prog *Program, err error) {
	asm.Labels = nil

	var tokens []Token
	for _, src := range sources {
		var toks []Token
		toks, err = Tokenize(src.Name, src.Text)
		if err != nil {
			return
		}
		if asm.Verbose {
			log.Printf("%v: %v tokens", src.Name, len(toks))
		}
		tokens = append(tokens, toks...)
	}

	predefined, err := asm.predefined(vm.Mnemonics())
	if err != nil {
		return
	}

	labels, err := ResolveWith(tokens, internal.IterSeq2Concat(vm.Mnemonics(), predefined))
	if err != nil {
		return
	}
	if asm.Verbose {
		log.Printf("%v labels, %v = %v", len(labels), PROGRAM_SIZE, labels[PROGRAM_SIZE])
	}

	code := slices.DeleteFunc(tokens, func(tok Token) bool {
		return tok.Kind == TOKEN_DECLARATION
	})

	prog, err = Generate(code, labels)
	if err != nil {
		return
	}

	asm.Labels = labels

	return
}
