package asm

import (
	"errors"
	"strconv"

	"github.com/ezrec/stackvm/translate"
)

var f = translate.From

var (
	// Tokenizer errors
	ErrNoSymbol = errors.New(f("no valid symbol"))

	// Generation errors
	ErrDeclarationUnexpected = errors.New(f("didn't expect declaration here"))

	// Predefine errors
	ErrPredefineName     = errors.New(f("invalid label name"))
	ErrPredefineReserved = errors.New(f("label name is reserved"))
	ErrPredefineValue    = errors.New(f("not an integer"))
)

// ErrSyntax locates an assembly error in the source.
type ErrSyntax struct {
	Pos Position
	Err error
}

func (err *ErrSyntax) Error() string {
	return f("%v: %v", err.Pos.String(), err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrTokenize is a word that does not match the grammar of its class.
type ErrTokenize struct {
	Kind TokenKind
	Text string
	Err  error // Cause, if any.
}

func (err *ErrTokenize) Error() string {
	msg := f("failed to tokenize %v: %v", err.Kind.String(), strconv.Quote(err.Text))
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *ErrTokenize) Unwrap() error {
	return err.Err
}

// ErrIllegalSymbol is the first character of a word that starts no token.
type ErrIllegalSymbol rune

func (err ErrIllegalSymbol) Error() string {
	return f("token starts with illegal symbol: %v", strconv.Quote(string(rune(err))))
}

// ErrLabelDuplicate is a label declared more than once.
type ErrLabelDuplicate string

func (err ErrLabelDuplicate) Error() string {
	return f("label declared twice: %v", string(err))
}

// ErrIdentUndefined is an identifier that is neither a label nor a mnemonic.
type ErrIdentUndefined string

func (err ErrIdentUndefined) Error() string {
	return f("undefined ident: %v", string(err))
}

// ErrPredefine is a predefined label that could not be bound.
type ErrPredefine struct {
	Name string
	Err  error
}

func (err *ErrPredefine) Error() string {
	return f("predefine %v: %v", err.Name, err.Err)
}

func (err *ErrPredefine) Unwrap() error {
	return err.Err
}
