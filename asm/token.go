package asm

import (
	"fmt"
	"strconv"
)

// TokenKind is the lexical class of a token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_INTEGER     = TokenKind(0) // integer
	TOKEN_DECLARATION = TokenKind(1) // declaration
	TOKEN_IDENT       = TokenKind(2) // ident
)

// Position locates a token in its source.
type Position struct {
	Name   string // Source name.
	Line   int    // Line, from 1.
	Column int    // Character offset in the line, from 1.
}

func (pos Position) String() string {
	return fmt.Sprintf("%v:%d:%d", pos.Name, pos.Line, pos.Column)
}

// Token is a single word of source.
type Token struct {
	Kind  TokenKind
	Value int64  // Value of a TOKEN_INTEGER.
	Name  string // Name of a TOKEN_IDENT or TOKEN_DECLARATION, without the ':'.
	Pos   Position
}

// Text returns the token in source form.
func (tok Token) Text() string {
	switch tok.Kind {
	case TOKEN_INTEGER:
		return strconv.FormatInt(tok.Value, 10)
	case TOKEN_DECLARATION:
		return ":" + tok.Name
	default:
		return tok.Name
	}
}

func (tok Token) String() string {
	return tok.Pos.String() + ": " + tok.Kind.String() + " " + tok.Text()
}
