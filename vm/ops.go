package vm

import (
	"cmp"

	"github.com/pkg/errors"
)

func opAdd(x, y int64) (int64, error)    { return x + y, nil }
func opSub(x, y int64) (int64, error)    { return x - y, nil }
func opMul(x, y int64) (int64, error)    { return x * y, nil }
func opBitAnd(x, y int64) (int64, error) { return x & y, nil }
func opBitOr(x, y int64) (int64, error)  { return x | y, nil }
func opBitXor(x, y int64) (int64, error) { return x ^ y, nil }
func opCmp(x, y int64) (int64, error)    { return int64(cmp.Compare(x, y)), nil }

func opDiv(x, y int64) (z int64, err error) {
	if y == 0 {
		err = ErrDivideByZero
		return
	}
	z = x / y
	return
}

func opMod(x, y int64) (z int64, err error) {
	if y == 0 {
		err = ErrDivideByZero
		return
	}
	z = x % y
	return
}

func opLshift(x, y int64) (z int64, err error) {
	if y < 0 || y > 63 {
		err = ErrShiftRange
		return
	}
	z = x << y
	return
}

// opRshift is an arithmetic shift.
func opRshift(x, y int64) (z int64, err error) {
	if y < 0 || y > 63 {
		err = ErrShiftRange
		return
	}
	z = x >> y
	return
}

// pop2 pops y, then x. x was pushed first.
func (vm *Vm) pop2() (x, y int64, err error) {
	y, err = vm.Pop()
	if err != nil {
		return
	}
	x, err = vm.Pop()
	return
}

// binary makes a (x y -- x∘y) handler.
func binary(op func(x, y int64) (int64, error)) Handler {
	return func(vm *Vm, con Console) (rc int64, halt bool, err error) {
		x, y, err := vm.pop2()
		if err != nil {
			return
		}
		z, err := op(x, y)
		if err != nil {
			return
		}
		err = vm.Push(z)
		return
	}
}

// unary makes a (x -- ∘x) handler.
func unary(op func(x int64) int64) Handler {
	return func(vm *Vm, con Console) (rc int64, halt bool, err error) {
		x, err := vm.Pop()
		if err != nil {
			return
		}
		err = vm.Push(op(x))
		return
	}
}

// getRegister makes a ( -- reg) handler.
func getRegister(reg func(r *Registers) *int64) Handler {
	return func(vm *Vm, con Console) (rc int64, halt bool, err error) {
		err = vm.Push(*reg(&vm.Registers))
		return
	}
}

// setRegister makes a (value -- ) handler.
func setRegister(reg func(r *Registers) *int64) Handler {
	return func(vm *Vm, con Console) (rc int64, halt bool, err error) {
		value, err := vm.Pop()
		if err != nil {
			return
		}
		*reg(&vm.Registers) = value
		return
	}
}

// pushAll pushes values in order.
func (vm *Vm) pushAll(values ...int64) (err error) {
	for _, value := range values {
		err = vm.Push(value)
		if err != nil {
			return
		}
	}
	return
}

// doDup is (x -- x x).
func doDup(vm *Vm, con Console) (rc int64, halt bool, err error) {
	x, err := vm.Pop()
	if err != nil {
		return
	}
	err = vm.pushAll(x, x)
	return
}

// doDrop is (x -- ).
func doDrop(vm *Vm, con Console) (rc int64, halt bool, err error) {
	_, err = vm.Pop()
	return
}

// doDrop2 is (x y -- ).
func doDrop2(vm *Vm, con Console) (rc int64, halt bool, err error) {
	_, _, err = vm.pop2()
	return
}

// doSwap is (x y -- y x).
func doSwap(vm *Vm, con Console) (rc int64, halt bool, err error) {
	x, y, err := vm.pop2()
	if err != nil {
		return
	}
	err = vm.pushAll(y, x)
	return
}

// doRot is (x y z -- y z x).
func doRot(vm *Vm, con Console) (rc int64, halt bool, err error) {
	y, z, err := vm.pop2()
	if err != nil {
		return
	}
	x, err := vm.Pop()
	if err != nil {
		return
	}
	err = vm.pushAll(y, z, x)
	return
}

// doOver is (x y -- x y x).
func doOver(vm *Vm, con Console) (rc int64, halt bool, err error) {
	x, y, err := vm.pop2()
	if err != nil {
		return
	}
	err = vm.pushAll(x, y, x)
	return
}

// doSdrop is (x y -- y).
func doSdrop(vm *Vm, con Console) (rc int64, halt bool, err error) {
	_, y, err := vm.pop2()
	if err != nil {
		return
	}
	err = vm.Push(y)
	return
}

// doLoad is (addr -- value).
func doLoad(vm *Vm, con Console) (rc int64, halt bool, err error) {
	addr, err := vm.Pop()
	if err != nil {
		return
	}
	value, err := vm.Read(addr)
	if err != nil {
		return
	}
	err = vm.Push(value)
	return
}

// doSave is (addr value -- ).
func doSave(vm *Vm, con Console) (rc int64, halt bool, err error) {
	addr, value, err := vm.pop2()
	if err != nil {
		return
	}
	err = vm.Write(addr, value)
	return
}

// doHalt is (rc -- ), and ends the program.
func doHalt(vm *Vm, con Console) (rc int64, halt bool, err error) {
	rc, err = vm.Pop()
	if err != nil {
		return
	}
	halt = true
	return
}

// doIn is ( -- char).
func doIn(vm *Vm, con Console) (rc int64, halt bool, err error) {
	if con == nil {
		err = ErrConsoleMissing
		return
	}
	code, err := con.GetChar()
	if err != nil {
		err = errors.Wrap(err, f("failed to read character"))
		return
	}
	err = vm.Push(code)
	return
}

// doOut is (char -- ).
func doOut(vm *Vm, con Console) (rc int64, halt bool, err error) {
	code, err := vm.Pop()
	if err != nil {
		return
	}
	if con == nil {
		err = ErrConsoleMissing
		return
	}
	err = con.PrintChar(code)
	if err != nil {
		err = errors.Wrap(err, f("failed to print character"))
	}
	return
}
