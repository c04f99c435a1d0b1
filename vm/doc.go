// Package vm implements the stack machine: four registers, a single address
// space shared by code and data, and the command table of built-in
// operations.
//
// The address space is partitioned when the machine is built:
//
//	[0, 256)            banned, every access fails
//	[256, 256+N)        code, the N assembled opcodes, read-only
//	[256+N, capacity)   data, zero-initialized, read/write
//
// The stack lives at the top of the data zone and grows toward lower
// addresses; sp starts at capacity, so an empty stack has nothing to pop.
//
// Opcodes that are not negative are literals. A negative opcode selects the
// command in slot ^opcode of the command table, so -1 is ADD.
package vm
