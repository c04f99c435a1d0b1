package asm

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var identRe = regexp.MustCompile(`^[[:alpha:]_][[:word:]-]*$`)

// IsIdent returns true if name is a valid identifier.
func IsIdent(name string) bool {
	return identRe.MatchString(name)
}

// getToken classifies a single word by its first character.
func getToken(word string, pos Position) (tok Token, err error) {
	defer func() {
		if err != nil {
			err = &ErrSyntax{Pos: pos, Err: err}
		}
	}()

	if len(word) == 0 {
		err = ErrNoSymbol
		return
	}

	tok.Pos = pos

	switch c := word[0]; {
	case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_':
		if !IsIdent(word) {
			err = &ErrTokenize{Kind: TOKEN_IDENT, Text: word}
			return
		}
		tok.Kind = TOKEN_IDENT
		tok.Name = word
	case (c >= '0' && c <= '9') || c == '+' || c == '-':
		var value int64
		value, err = strconv.ParseInt(word, 10, 64)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) {
				err = numErr.Err
			}
			err = &ErrTokenize{Kind: TOKEN_INTEGER, Text: word, Err: err}
			return
		}
		tok.Kind = TOKEN_INTEGER
		tok.Value = value
	case c == ':':
		if !IsIdent(word[1:]) {
			err = &ErrTokenize{Kind: TOKEN_DECLARATION, Text: word}
			return
		}
		tok.Kind = TOKEN_DECLARATION
		tok.Name = word[1:]
	default:
		r, _ := utf8.DecodeRuneInString(word)
		err = ErrIllegalSymbol(r)
	}

	return
}

// Tokenize splits source text into tokens, stopping at the first word
// that is not a valid token. The name is used only for positions.
func Tokenize(name string, text string) (tokens []Token, err error) {
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		line, _, _ = strings.Cut(line, ";")

		column := 1
		for {
			end := strings.IndexAny(line, " \t")
			if end < 0 {
				end = len(line)
			}
			word := line[:end]
			if len(word) > 0 {
				var tok Token
				tok, err = getToken(word, Position{Name: name, Line: n + 1, Column: column})
				if err != nil {
					tokens = nil
					return
				}
				tokens = append(tokens, tok)
			}
			column += utf8.RuneCountInString(word) + 1
			if end == len(line) {
				break
			}
			line = line[end+1:]
		}
	}

	return
}
