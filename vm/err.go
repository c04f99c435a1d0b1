package vm

import (
	"github.com/pkg/errors"

	"github.com/ezrec/stackvm/translate"
)

var f = translate.From

var (
	// Memory errors
	ErrAddressForbidden = errors.New(f("address range forbidden"))
	ErrAddressRange     = errors.New(f("address out of range"))
	ErrCodeReadOnly     = errors.New(f("code is read-only"))

	// Operation errors
	ErrDivideByZero   = errors.New(f("division by zero"))
	ErrShiftRange     = errors.New(f("shift amount out of range"))
	ErrConsoleMissing = errors.New(f("no console attached"))
)

// ErrHandlerMissing is an opcode with no command table entry.
type ErrHandlerMissing int64

func (err ErrHandlerMissing) Error() string {
	return f("no handler for opcode %v", translate.Number(int64(err)))
}

// ErrProgramSize is a program too large for the memory it is loaded into.
type ErrProgramSize int

func (err ErrProgramSize) Error() string {
	return f("program of %v instructions does not fit in memory", translate.Number(int64(err)))
}
