package hmmm

import (
	"fmt"
	"strings"
)

// Decoded is a 16-bit word resolved against the instruction table,
// with its operand values extracted.
type Decoded struct {
	*Instruction
	Word     uint16
	Operands []Operand
}

// Decode resolves a 16-bit word to its instruction definition and
// operand values.
//
// All definitions whose fixed bits match the word are candidates; the
// one with the numerically largest mask wins, and among equal masks the
// definition with more operand slots wins. This prefers a specialized
// form (calln) over a general form that shares its opcode pattern
// (jumpn).
func Decode(word uint16) (dec Decoded, err error) {
	var best *Instruction
	for n := range instructionTable {
		inst := &instructionTable[n]
		if ((inst.Opcode ^ word) & inst.Mask) != 0 {
			continue
		}
		if best == nil || inst.Mask > best.Mask ||
			(inst.Mask == best.Mask && inst.Arity() > best.Arity()) {
			best = inst
		}
	}
	if best == nil {
		err = ErrWord(word)
		return
	}

	dec = Decoded{Instruction: best, Word: word}
	for slot, typ := range best.Operands {
		switch typ {
		case OPERAND_NONE:
			continue
		case OPERAND_REGISTER:
			value := int(word>>slotShift[slot]) & 0xf
			dec.Operands = append(dec.Operands, Operand{Type: typ, Value: value})
		case OPERAND_UNSIGNED:
			if slot == 2 {
				// Numbers need the full low byte; the 4-bit third
				// slot cannot hold one.
				err = ErrOperandSlots
				return
			}
			dec.Operands = append(dec.Operands, Operand{Type: typ, Value: int(word & 0xff)})
		case OPERAND_SIGNED:
			if slot == 2 {
				err = ErrOperandSlots
				return
			}
			value := int(word & 0xff)
			if value >= 0x80 {
				value -= 0x100
			}
			dec.Operands = append(dec.Operands, Operand{Type: typ, Value: value})
		}
	}

	return
}

// String renders the decoded instruction as assembly text without the
// line number: mnemonic followed by its operands.
func (dec Decoded) String() string {
	parts := []string{dec.Name}
	for _, op := range dec.Operands {
		parts = append(parts, op.String())
	}
	return strings.Join(parts, " ")
}

// Operand returns the decoded operand value for an occupied slot index
// (0-2), counting only occupied slots in source order.
func (dec Decoded) Operand(n int) int {
	return dec.Operands[n].Value
}

// ParseWord converts a line of binary text to a 16-bit word. Characters
// other than 0 and 1 are stripped; the remainder must be exactly 16
// binary digits.
func ParseWord(text string) (word uint16, err error) {
	digits := 0
	for _, r := range text {
		switch r {
		case '0':
			word <<= 1
			digits++
		case '1':
			word = word<<1 | 1
			digits++
		}
	}
	if digits != 16 {
		err = ErrWordLength
		word = 0
		return
	}
	return
}

// FormatWord renders a word as four space-separated nibbles of binary
// digits, the conventional HMMM binary listing format.
func FormatWord(word uint16) string {
	return fmt.Sprintf("%04b %04b %04b %04b",
		(word>>12)&0xf, (word>>8)&0xf, (word>>4)&0xf, word&0xf)
}

// Disassemble renders a word as assembly text, or an error if the word
// matches no instruction definition.
func Disassemble(word uint16) (text string, err error) {
	dec, err := Decode(word)
	if err != nil {
		return
	}
	text = dec.String()
	return
}
