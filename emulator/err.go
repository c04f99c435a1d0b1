package emulator

import (
	"github.com/ezrec/stackvm/asm"
	"github.com/ezrec/stackvm/translate"
)

var f = translate.From

// ErrRuntime locates an execution error at the instruction that raised it.
type ErrRuntime struct {
	Pos  asm.Position
	Kind string // "literal" or "command"
	Text string // Source text of the instruction.
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("%v: failed to execute %v instruction %v: %v", err.Pos.String(), err.Kind, err.Text, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrIpOutside is an instruction pointer that left the code zone.
type ErrIpOutside int64

func (err ErrIpOutside) Error() string {
	return f("instruction pointer outside code: %v", translate.Number(int64(err)))
}
