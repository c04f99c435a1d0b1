package vm

import (
	"iter"
)

// Handler performs one operation. A handler that ends the program returns
// halt set and the program's return code in rc.
type Handler func(vm *Vm, con Console) (rc int64, halt bool, err error)

// Command is a built-in operation and the mnemonics that name it.
type Command struct {
	Mnemonics []string
	Handler   Handler
}

// Opcodes of the built-in commands.
const (
	OP_ADD = -(iota + 1)
	OP_SUB
	OP_MUL
	OP_DIV
	OP_MOD
	OP_BITAND
	OP_BITOR
	OP_BITXOR
	OP_LSHIFT
	OP_RSHIFT
	OP_CMP
	OP_GETIP
	OP_GETSP
	OP_GETFP
	OP_GETRV
	OP_SETIP
	OP_SETSP
	OP_SETFP
	OP_SETRV
	OP_DUP
	OP_DROP
	OP_DROP2
	OP_SWAP
	OP_ROT
	OP_OVER
	OP_SDROP
	OP_NEG
	OP_BITNOT
	OP_LOAD
	OP_SAVE
	OP_HALT
	OP_IN
	OP_OUT
)

// commands is indexed by ^opcode.
var commands = [...]Command{
	^OP_ADD:    {[]string{"ADD"}, binary(opAdd)},
	^OP_SUB:    {[]string{"SUB"}, binary(opSub)},
	^OP_MUL:    {[]string{"MUL"}, binary(opMul)},
	^OP_DIV:    {[]string{"DIV"}, binary(opDiv)},
	^OP_MOD:    {[]string{"MOD"}, binary(opMod)},
	^OP_BITAND: {[]string{"BITAND"}, binary(opBitAnd)},
	^OP_BITOR:  {[]string{"BITOR"}, binary(opBitOr)},
	^OP_BITXOR: {[]string{"BITXOR"}, binary(opBitXor)},
	^OP_LSHIFT: {[]string{"LSHIFT"}, binary(opLshift)},
	^OP_RSHIFT: {[]string{"RSHIFT"}, binary(opRshift)},
	^OP_CMP:    {[]string{"CMP"}, binary(opCmp)},
	^OP_GETIP:  {[]string{"GETIP"}, getRegister(func(r *Registers) *int64 { return &r.Ip })},
	^OP_GETSP:  {[]string{"GETSP"}, getRegister(func(r *Registers) *int64 { return &r.Sp })},
	^OP_GETFP:  {[]string{"GETFP"}, getRegister(func(r *Registers) *int64 { return &r.Fp })},
	^OP_GETRV:  {[]string{"GETRV"}, getRegister(func(r *Registers) *int64 { return &r.Rv })},
	^OP_SETIP:  {[]string{"SETIP"}, setRegister(func(r *Registers) *int64 { return &r.Ip })},
	^OP_SETSP:  {[]string{"SETSP"}, setRegister(func(r *Registers) *int64 { return &r.Sp })},
	^OP_SETFP:  {[]string{"SETFP"}, setRegister(func(r *Registers) *int64 { return &r.Fp })},
	^OP_SETRV:  {[]string{"SETRV"}, setRegister(func(r *Registers) *int64 { return &r.Rv })},
	^OP_DUP:    {[]string{"DUP"}, doDup},
	^OP_DROP:   {[]string{"DROP"}, doDrop},
	^OP_DROP2:  {[]string{"DROP2"}, doDrop2},
	^OP_SWAP:   {[]string{"SWAP"}, doSwap},
	^OP_ROT:    {[]string{"ROT"}, doRot},
	^OP_OVER:   {[]string{"OVER"}, doOver},
	^OP_SDROP:  {[]string{"SDROP"}, doSdrop},
	^OP_NEG:    {[]string{"NEG"}, unary(func(x int64) int64 { return -x })},
	^OP_BITNOT: {[]string{"BITNOT"}, unary(func(x int64) int64 { return ^x })},
	^OP_LOAD:   {[]string{"LOAD"}, doLoad},
	^OP_SAVE:   {[]string{"SAVE"}, doSave},
	^OP_HALT:   {[]string{"HALT"}, doHalt},
	^OP_IN:     {[]string{"IN"}, doIn},
	^OP_OUT:    {[]string{"OUT"}, doOut},
}

// GetCommand returns the command table entry for a negative opcode.
func GetCommand(opcode int64) (cmd *Command, err error) {
	// ^opcode never overflows, and is negative for every literal.
	slot := ^opcode
	if slot < 0 || slot >= int64(len(commands)) || commands[slot].Handler == nil {
		err = ErrHandlerMissing(opcode)
		return
	}

	cmd = &commands[slot]
	return
}

// GetHandler returns the handler for a negative opcode.
func GetHandler(opcode int64) (handler Handler, err error) {
	cmd, err := GetCommand(opcode)
	if err != nil {
		return
	}

	handler = cmd.Handler
	return
}

// Mnemonics returns an iterator over every built-in mnemonic and its opcode.
func Mnemonics() iter.Seq2[string, int64] {
	return func(yield func(mnemonic string, opcode int64) bool) {
		for slot, cmd := range commands {
			for _, mnemonic := range cmd.Mnemonics {
				if !yield(mnemonic, ^int64(slot)) {
					return
				}
			}
		}
	}
}

// Mnemonic returns the primary mnemonic of an opcode, or "" if it has none.
func Mnemonic(opcode int64) string {
	cmd, err := GetCommand(opcode)
	if err != nil || len(cmd.Mnemonics) == 0 {
		return ""
	}

	return cmd.Mnemonics[0]
}
