package hmmm

import (
	"fmt"
)

// OperandType is the declared shape of an instruction operand slot.
type OperandType int

//go:generate go tool stringer -linecomment -type=OperandType
const (
	OPERAND_NONE     = OperandType(0) // none
	OPERAND_REGISTER = OperandType(1) // register
	OPERAND_SIGNED   = OperandType(2) // signed
	OPERAND_UNSIGNED = OperandType(3) // unsigned
)

// Register operand bit offsets for operand slots 1-3. Numeric operands
// always occupy the low byte regardless of which slot declares them.
const (
	SLOT_SHIFT_1 = 8
	SLOT_SHIFT_2 = 4
	SLOT_SHIFT_3 = 0
)

var slotShift = [3]int{SLOT_SHIFT_1, SLOT_SHIFT_2, SLOT_SHIFT_3}

// Numeric operand range limits.
const (
	NUMBER_MIN = -128
	NUMBER_MAX = 255
)

// Instruction is a single definition in the HMMM instruction table.
// Mask holds the bits of a word that must equal Opcode for the word to
// decode as this instruction; operand bits are don't-care.
type Instruction struct {
	Name     string
	Opcode   uint16
	Mask     uint16
	Operands [3]OperandType
}

// makeInstruction derives the decode mask from the operand slots: the
// slot-1 nibble is cleared when slot 1 is occupied, the slot-2 nibble
// when slot 2 is occupied or any operand is numeric, and the slot-3
// nibble when slot 3 is occupied or any operand is numeric.
func makeInstruction(name string, opcode uint16, operands ...OperandType) (inst Instruction) {
	inst = Instruction{Name: name, Opcode: opcode}
	copy(inst.Operands[:], operands)

	numeric := inst.Numeric()

	mask := uint16(0xffff)
	if inst.Operands[0] != OPERAND_NONE {
		mask &^= 0xf << SLOT_SHIFT_1
	}
	if inst.Operands[1] != OPERAND_NONE || numeric {
		mask &^= 0xf << SLOT_SHIFT_2
	}
	if inst.Operands[2] != OPERAND_NONE || numeric {
		mask &^= 0xf << SLOT_SHIFT_3
	}
	inst.Mask = mask

	return
}

// Numeric returns true if any operand slot is a number.
func (inst *Instruction) Numeric() bool {
	for _, op := range inst.Operands {
		if op == OPERAND_SIGNED || op == OPERAND_UNSIGNED {
			return true
		}
	}
	return false
}

// Arity returns the number of occupied operand slots.
func (inst *Instruction) Arity() (count int) {
	for _, op := range inst.Operands {
		if op != OPERAND_NONE {
			count++
		}
	}
	return
}

// instructionTable is the full HMMM instruction set.
//
// Several definitions share an opcode pattern on purpose: nop, copy, and
// add all live under 0x6000; neg and sub under 0x7000; jumpn and calln
// under 0xb000. Decode resolves these with the mask tie-break.
var instructionTable = []Instruction{
	makeInstruction("halt", 0x0000),
	makeInstruction("read", 0x0001, OPERAND_REGISTER),
	makeInstruction("write", 0x0002, OPERAND_REGISTER),
	makeInstruction("jumpr", 0x0003, OPERAND_REGISTER),
	makeInstruction("setn", 0x1000, OPERAND_REGISTER, OPERAND_SIGNED),
	makeInstruction("loadn", 0x2000, OPERAND_REGISTER, OPERAND_UNSIGNED),
	makeInstruction("storen", 0x3000, OPERAND_REGISTER, OPERAND_UNSIGNED),
	makeInstruction("loadr", 0x4000, OPERAND_REGISTER, OPERAND_REGISTER),
	makeInstruction("storer", 0x4001, OPERAND_REGISTER, OPERAND_REGISTER),
	makeInstruction("popr", 0x4002, OPERAND_REGISTER, OPERAND_REGISTER),
	makeInstruction("pushr", 0x4003, OPERAND_REGISTER, OPERAND_REGISTER),
	makeInstruction("addn", 0x5000, OPERAND_REGISTER, OPERAND_SIGNED),
	makeInstruction("nop", 0x6000),
	makeInstruction("copy", 0x6000, OPERAND_REGISTER, OPERAND_REGISTER),
	makeInstruction("add", 0x6000, OPERAND_REGISTER, OPERAND_REGISTER, OPERAND_REGISTER),
	makeInstruction("neg", 0x7000, OPERAND_REGISTER, OPERAND_NONE, OPERAND_REGISTER),
	makeInstruction("sub", 0x7000, OPERAND_REGISTER, OPERAND_REGISTER, OPERAND_REGISTER),
	makeInstruction("mul", 0x8000, OPERAND_REGISTER, OPERAND_REGISTER, OPERAND_REGISTER),
	makeInstruction("div", 0x9000, OPERAND_REGISTER, OPERAND_REGISTER, OPERAND_REGISTER),
	makeInstruction("mod", 0xa000, OPERAND_REGISTER, OPERAND_REGISTER, OPERAND_REGISTER),
	makeInstruction("jumpn", 0xb000, OPERAND_UNSIGNED),
	makeInstruction("calln", 0xb000, OPERAND_REGISTER, OPERAND_UNSIGNED),
	makeInstruction("jeqzn", 0xc000, OPERAND_REGISTER, OPERAND_UNSIGNED),
	makeInstruction("jnezn", 0xd000, OPERAND_REGISTER, OPERAND_UNSIGNED),
	makeInstruction("jgtzn", 0xe000, OPERAND_REGISTER, OPERAND_UNSIGNED),
	makeInstruction("jltzn", 0xf000, OPERAND_REGISTER, OPERAND_UNSIGNED),
}

// aliasMap maps alternate mnemonics to canonical instruction names.
var aliasMap = map[string]string{
	"mov":    "copy",
	"jump":   "jumpn",
	"jeqz":   "jeqzn",
	"jnez":   "jnezn",
	"jgtz":   "jgtzn",
	"jltz":   "jltzn",
	"call":   "calln",
	"loadi":  "loadr",
	"load":   "loadn",
	"storei": "storer",
	"store":  "storen",
}

var instructionByName = map[string]*Instruction{}

func init() {
	for n := range instructionTable {
		inst := &instructionTable[n]
		instructionByName[inst.Name] = inst
	}
}

// Canonicalize resolves a mnemonic alias to its canonical name. Unknown
// names pass through unchanged.
func Canonicalize(name string) string {
	if canonical, ok := aliasMap[name]; ok {
		return canonical
	}
	return name
}

// Lookup finds an instruction definition by mnemonic, resolving aliases
// first.
func Lookup(name string) (inst *Instruction, ok bool) {
	inst, ok = instructionByName[Canonicalize(name)]
	return
}

// Instructions returns the full instruction table in canonical order.
func Instructions() []Instruction {
	return instructionTable
}

// Operand is a decoded (type, value) operand pair. Register values are
// register indexes; numeric values are the decoded signed or unsigned
// low byte.
type Operand struct {
	Type  OperandType
	Value int
}

// String renders an operand the way the disassembler prints it:
// registers with an "r" prefix, numbers as bare decimal.
func (op Operand) String() string {
	if op.Type == OPERAND_REGISTER {
		return fmt.Sprintf("r%d", op.Value)
	}
	return fmt.Sprintf("%d", op.Value)
}

// Encode packs operand values into the instruction's 16-bit word.
// Register values shift into their 4-bit slot; numeric values are masked
// to the low byte with two's-complement wrap for negatives.
func (inst *Instruction) Encode(operands []Operand) (word uint16, err error) {
	word = inst.Opcode

	slot := 0
	for _, op := range operands {
		for slot < len(inst.Operands) && inst.Operands[slot] == OPERAND_NONE {
			slot++
		}
		if slot >= len(inst.Operands) {
			err = ErrOperandExtra
			return
		}
		switch inst.Operands[slot] {
		case OPERAND_REGISTER:
			word |= uint16(op.Value&0xf) << slotShift[slot]
		default:
			word |= uint16(op.Value) & 0xff
		}
		slot++
	}

	for slot < len(inst.Operands) {
		if inst.Operands[slot] != OPERAND_NONE {
			err = ErrOperandMissing
			return
		}
		slot++
	}

	return
}
