// Package io provides the console capability used by the IN and OUT
// operations of the stack machine, and Tape, a console over a pair of
// byte streams.
package io

// Console is the character device a running program talks to.
type Console interface {
	// GetChar blocks until one character is available and returns its code.
	GetChar() (code int64, err error)
	// PrintChar writes the character with the given code.
	PrintChar(code int64) error
}
