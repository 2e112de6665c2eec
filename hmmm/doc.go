// Package hmmm implements the instruction table, assembler, and
// disassembler for the Harvey Mudd Miniature Machine (HMMM).
//
// HMMM is a 16-bit instructional architecture with 16 registers (r0 is
// hardwired to zero) and 256 words of unified code/data memory. Every
// instruction is a single 16-bit word; register operands occupy 4-bit
// nibbles and numeric operands occupy the low byte. Instruction
// definitions carry a derived opcode/mask pair so that decoding is a
// simple fixed-bits match with a specificity tie-break.
//
// The assembler accepts the numbered-line HMMM source grammar, including
// compile-time $( ... ) Starlark constant expressions, and rejects the
// whole program on the first error. The disassembler recovers mnemonic
// and operands from any 16-bit word in the table.
package hmmm
