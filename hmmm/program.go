package hmmm

import (
	"iter"
	"strings"
)

// Program is a compiled HMMM program: one 16-bit word per instruction,
// a map from instruction index to the 1-based source line it came from,
// and the inverse map for breakpoint translation.
type Program struct {
	Words []uint16
	Lines []int // instruction index -> 1-based source line

	lineInstr map[int]int
}

// newProgram builds a Program and its inverse line map.
func newProgram(words []uint16, lines []int) (prog *Program) {
	prog = &Program{
		Words:     words,
		Lines:     lines,
		lineInstr: make(map[int]int, len(lines)),
	}
	for index, line := range lines {
		prog.lineInstr[line] = index
	}
	return
}

// Size returns the number of compiled instructions.
func (prog *Program) Size() int {
	return len(prog.Words)
}

// Contains reports whether an address lies inside the program's code
// segment.
func (prog *Program) Contains(addr int) bool {
	return addr >= 0 && addr < len(prog.Words)
}

// LineFor returns the 1-based source line of an instruction index.
func (prog *Program) LineFor(index int) (line int, ok bool) {
	if index < 0 || index >= len(prog.Lines) {
		return
	}
	return prog.Lines[index], true
}

// InstructionForLine returns the instruction index compiled from a
// 1-based source line, if that line holds an instruction.
func (prog *Program) InstructionForLine(line int) (index int, ok bool) {
	index, ok = prog.lineInstr[line]
	return
}

// Instructions iterates over (address, word) pairs in address order.
func (prog *Program) Instructions() iter.Seq2[int, uint16] {
	return func(yield func(addr int, word uint16) bool) {
		for addr, word := range prog.Words {
			if !yield(addr, word) {
				return
			}
		}
	}
}

// Listing renders the program as a binary listing, one word per line in
// nibble-grouped binary.
func (prog *Program) Listing() string {
	var sb strings.Builder
	for _, word := range prog.Words {
		sb.WriteString(FormatWord(word))
		sb.WriteByte('\n')
	}
	return sb.String()
}
