package asm

import (
	"iter"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// predefine is a label bound before assembly from an expression.
type predefine struct {
	Name string
	Expr string
}

// Predefine adds a label bound to the value of a starlark integer expression,
// evaluated before assembly. The expression may use the built-in mnemonics
// and earlier predefines.
func (asm *Assembler) Predefine(name string, expr string) {
	asm.predefine = append(asm.predefine, predefine{Name: name, Expr: expr})
}

// evalExpr evaluates a starlark expression to an int64.
func evalExpr(expr string, env starlark.StringDict) (value int64, err error) {
	thread := starlark.Thread{Name: "predefine"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "predefine", prog, env)
	if err != nil {
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrPredefineValue
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrPredefineValue
		return
	}
	return
}

// predefined evaluates the predefines in order, on top of the seed names.
func (asm *Assembler) predefined(seed iter.Seq2[string, int64]) (values iter.Seq2[string, int64], err error) {
	env := starlark.StringDict{}
	for name, value := range seed {
		env[name] = starlark.MakeInt64(value)
	}

	var names []string
	defined := map[string]int64{}
	for _, pre := range asm.predefine {
		switch {
		case !IsIdent(pre.Name):
			err = ErrPredefineName
		case pre.Name == PROGRAM_SIZE:
			err = ErrPredefineReserved
		case env.Has(pre.Name):
			err = ErrLabelDuplicate(pre.Name)
		}
		if err != nil {
			err = &ErrPredefine{Name: pre.Name, Err: err}
			return
		}

		var value int64
		value, err = evalExpr(pre.Expr, env)
		if err != nil {
			err = &ErrPredefine{Name: pre.Name, Err: err}
			return
		}

		if asm.Verbose {
			log.Printf("predefine %v = %v", pre.Name, value)
		}

		env[pre.Name] = starlark.MakeInt64(value)
		names = append(names, pre.Name)
		defined[pre.Name] = value
	}

	values = func(yield func(name string, value int64) bool) {
		for _, name := range names {
			if !yield(name, defined[name]) {
				return
			}
		}
	}

	return
}
