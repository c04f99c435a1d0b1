package io

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Tape provides character I/O over byte streams.
// It wraps an io.Reader for input and io.Writer for output, converting between
// character codes and UTF-8 encoded bytes.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Crlf   bool // If set, '\n' is written as "\r\n" (raw terminals).

	reader io.RuneReader
}

var _ Console = (*Tape)(nil)

// GetChar reads the next UTF-8 character from the input stream.
// Malformed input yields utf8.RuneError.
func (tc *Tape) GetChar() (code int64, err error) {
	if tc.reader == nil {
		switch in := tc.Input.(type) {
		case nil:
			err = ErrInputMissing
			return
		case io.RuneReader:
			tc.reader = in
		default:
			tc.reader = bufio.NewReader(in)
		}
	}

	r, size, err := tc.reader.ReadRune()
	if size == 0 {
		if err == nil || err == io.EOF {
			err = ErrInputEnd
		} else {
			err = errors.Wrap(err, f("console input"))
		}
		return
	}

	code = int64(r)
	err = nil
	return
}

// PrintChar writes a character to the output stream as UTF-8.
func (tc *Tape) PrintChar(code int64) (err error) {
	if code < 0 || code > utf8.MaxRune || !utf8.ValidRune(rune(code)) {
		err = ErrCharInvalid(code)
		return
	}

	if tc.Output == nil {
		err = ErrOutputMissing
		return
	}

	var buf []byte
	if tc.Crlf && code == '\n' {
		buf = append(buf, '\r')
	}
	buf = utf8.AppendRune(buf, rune(code))

	_, err = tc.Output.Write(buf)
	if err != nil {
		err = errors.Wrap(err, f("console output"))
	}

	return
}
