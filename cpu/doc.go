// Package cpu implements the drawing processor and assembler for the spirovm system.
//
// A ROM is a sequence of rules. Each rule packs up to 255 four-bit opcodes,
// two per byte with the high nibble first, and a cycle count that repeats the
// rule body. The Cpu pulls one command per Tick from the decoded Program and
// moves a cursor over a WIDTH x HEIGHT pixel buffer, painting as it goes.
//
// The assembler provides a small text language for writing ROMs, supporting
// macros, equates, and compile-time expression evaluation.
package cpu
