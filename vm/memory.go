package vm

import (
	"github.com/pkg/errors"

	"github.com/ezrec/stackvm/translate"
)

// resolve maps an absolute address to its backing cell.
func (vm *Vm) resolve(addr int64) (cell *int64, readonly bool, err error) {
	switch {
	case addr < CODE_BASE:
		err = ErrAddressForbidden
	case addr < vm.DataBase():
		cell = &vm.code[addr-CODE_BASE]
		readonly = true
	case addr < vm.capacity:
		cell = &vm.data[addr-vm.DataBase()]
	default:
		err = ErrAddressRange
	}

	return
}

// Read returns the cell at addr. Code is readable.
func (vm *Vm) Read(addr int64) (value int64, err error) {
	cell, _, err := vm.resolve(addr)
	if err != nil {
		err = errors.Wrap(err, f("invalid memory read at %v", translate.Number(addr)))
		return
	}

	value = *cell
	return
}

// Write stores value at addr. Code is not writable.
func (vm *Vm) Write(addr int64, value int64) (err error) {
	cell, readonly, err := vm.resolve(addr)
	if err == nil && readonly {
		err = ErrCodeReadOnly
	}
	if err != nil {
		err = errors.Wrap(err, f("invalid memory write at %v", translate.Number(addr)))
		return
	}

	*cell = value
	return
}

// ReadStack returns the cell offset places below the top of the stack.
func (vm *Vm) ReadStack(offset int64) (value int64, err error) {
	return vm.Read(vm.Sp + offset)
}

// Push decrements sp and stores value at the new top of stack.
// On failure sp is left unchanged.
func (vm *Vm) Push(value int64) (err error) {
	vm.Sp--
	err = vm.Write(vm.Sp, value)
	if err != nil {
		vm.Sp++
		err = errors.Wrap(err, f("failed to push value"))
	}

	return
}

// Pop returns the top of stack and increments sp.
func (vm *Vm) Pop() (value int64, err error) {
	value, err = vm.ReadStack(0)
	if err != nil {
		err = errors.Wrap(err, f("failed to pop value"))
		return
	}

	vm.Sp++
	return
}
