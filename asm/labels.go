package asm

import (
	"iter"

	"github.com/ezrec/stackvm/vm"
)

// PROGRAM_SIZE is bound to the address past the end of the program.
const PROGRAM_SIZE = "PROGRAM_SIZE"

// Labels maps names to opcodes: negative for built-in mnemonics, absolute
// addresses for declared labels.
type Labels map[string]int64

// Resolve builds the label table of a token stream, seeded with the
// built-in mnemonics.
func Resolve(tokens []Token) (labels Labels, err error) {
	return ResolveWith(tokens, vm.Mnemonics())
}

// ResolveWith builds the label table of a token stream, seeded with the
// given names. Declarations are bound to the address of the next word;
// declaring a name that is already bound fails.
func ResolveWith(tokens []Token, seed iter.Seq2[string, int64]) (labels Labels, err error) {
	labels = Labels{}
	for name, value := range seed {
		labels[name] = value
	}

	cursor := int64(vm.CODE_BASE)
	for _, tok := range tokens {
		if tok.Kind != TOKEN_DECLARATION {
			cursor++
			continue
		}

		_, ok := labels[tok.Name]
		if ok {
			err = &ErrSyntax{Pos: tok.Pos, Err: ErrLabelDuplicate(tok.Name)}
			labels = nil
			return
		}
		labels[tok.Name] = cursor
	}

	labels[PROGRAM_SIZE] = cursor

	return
}
