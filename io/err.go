package io

import (
	"errors"

	"github.com/ezrec/stackvm/translate"
)

var f = translate.From

var (
	// Console errors
	ErrInputEnd      = errors.New(f("end of input"))
	ErrInputMissing  = errors.New(f("no input attached"))
	ErrOutputMissing = errors.New(f("no output attached"))
)

// ErrCharInvalid is a code that is not a Unicode scalar value.
type ErrCharInvalid int64

func (err ErrCharInvalid) Error() string {
	return f("invalid character code %v", translate.Number(int64(err)))
}
