package vm

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ezrec/stackvm/io"
)

// Console is the character device used by IN and OUT.
type Console io.Console

const (
	MEMORY_SIZE = 1_000_000 // Cells in the address space.
	CODE_BASE   = 256       // First address of the code zone.
	STACK_DUMP  = 10        // Stack cells shown by String().
)

// Registers of the machine. The executor only ever moves Ip; the others
// change through explicit operations.
type Registers struct {
	Ip int64 // Instruction pointer, an absolute address.
	Sp int64 // Stack pointer, grows toward lower addresses.
	Fp int64 // Frame pointer, program managed.
	Rv int64 // Return value, program managed.
}

// Vm is the register file and memory of a stack machine.
type Vm struct {
	Registers

	capacity int64
	code     []int64
	data     []int64
}

// New creates a machine of MEMORY_SIZE cells holding the given code.
func New(code []int64) (vm *Vm, err error) {
	return NewSize(MEMORY_SIZE, code)
}

// NewSize creates a machine of capacity cells holding the given code.
func NewSize(capacity int64, code []int64) (vm *Vm, err error) {
	if capacity < CODE_BASE+int64(len(code)) {
		err = ErrProgramSize(len(code))
		return
	}

	vm = &Vm{
		capacity: capacity,
		code:     slices.Clone(code),
		data:     make([]int64, capacity-CODE_BASE-int64(len(code))),
	}
	vm.Reset()

	return
}

// Reset zeroes the data zone and puts the registers in their initial state.
func (vm *Vm) Reset() {
	clear(vm.data)
	vm.Registers = Registers{
		Ip: CODE_BASE,
		Sp: vm.capacity,
	}
}

// Capacity returns the size of the address space.
func (vm *Vm) Capacity() int64 {
	return vm.capacity
}

// CodeSize returns the number of cells in the code zone.
func (vm *Vm) CodeSize() int64 {
	return int64(len(vm.code))
}

// DataBase returns the first address of the data zone.
func (vm *Vm) DataBase() int64 {
	return CODE_BASE + vm.CodeSize()
}

// StackTop returns up to count cells from the top of the stack, top first.
func (vm *Vm) StackTop(count int) (cells []int64) {
	for n := range count {
		value, err := vm.ReadStack(int64(n))
		if err != nil {
			break
		}
		cells = append(cells, value)
	}

	return
}

// String returns the registers and the top of the stack as a string.
func (vm *Vm) String() (text string) {
	regs := []string{"ip", "sp", "fp", "rv", "stack"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "ip":
			strval = fmt.Sprint(vm.Ip)
		case "sp":
			strval = fmt.Sprint(vm.Sp)
		case "fp":
			strval = fmt.Sprint(vm.Fp)
		case "rv":
			strval = fmt.Sprint(vm.Rv)
		case "stack":
			cells := vm.StackTop(STACK_DUMP)
			if len(cells) == 0 {
				strval = "--"
			} else {
				strval = strings.Trim(fmt.Sprint(cells), "[]")
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}
