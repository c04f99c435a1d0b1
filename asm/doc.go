// Package asm implements the assembler for the stack machine.
//
// Source text is line oriented. Words are separated by spaces or tabs, and
// a ';' starts a comment that runs to the end of the line. A word is one of:
//
//	123, +5, -40     integer literal, signed 64-bit
//	name             identifier: a label or a built-in mnemonic
//	:name            declaration of the label name
//
// Identifiers match [A-Za-z_][A-Za-z0-9_-]*. A declaration binds its name to
// the address of the next word, counting from address 256, so labels may be
// used before they are declared. PROGRAM_SIZE is bound to the address just
// past the last word of the program.
package asm
