package hmmm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word     uint16
		text     string
		operands []int
	}){
		{0x0000, "halt", nil},
		{0x0101, "read r1", []int{1}},
		{0x0202, "write r2", []int{2}},
		{0x0103, "jumpr r1", []int{1}},
		{0x1105, "setn r1 5", []int{1, 5}},
		{0x11ff, "setn r1 -1", []int{1, -1}},
		{0x5380, "addn r3 -128", []int{3, -128}},
		{0x21ff, "loadn r1 255", []int{1, 255}},
		{0x31fe, "storen r1 254", []int{1, 254}},
		{0x4120, "loadr r1 r2", []int{1, 2}},
		{0x4121, "storer r1 r2", []int{1, 2}},
		{0x4122, "popr r1 r2", []int{1, 2}},
		{0x4123, "pushr r1 r2", []int{1, 2}},
		{0x6000, "nop", nil},
		{0x6120, "copy r1 r2", []int{1, 2}},
		{0x6123, "add r1 r2 r3", []int{1, 2, 3}},
		{0x7102, "neg r1 r2", []int{1, 2}},
		{0x7123, "sub r1 r2 r3", []int{1, 2, 3}},
		{0x8123, "mul r1 r2 r3", []int{1, 2, 3}},
		{0x9123, "div r1 r2 r3", []int{1, 2, 3}},
		{0xa123, "mod r1 r2 r3", []int{1, 2, 3}},
		{0xb005, "calln r0 5", []int{0, 5}},
		{0xbe07, "calln r14 7", []int{14, 7}},
		{0xc10a, "jeqzn r1 10", []int{1, 10}},
		{0xd10a, "jnezn r1 10", []int{1, 10}},
		{0xe10a, "jgtzn r1 10", []int{1, 10}},
		{0xf10a, "jltzn r1 10", []int{1, 10}},
	}

	for _, entry := range table {
		dec, err := Decode(entry.word)
		assert.NoError(err, entry.text)
		assert.Equal(entry.text, dec.String(), entry.text)
		for n, value := range entry.operands {
			assert.Equal(value, dec.Operand(n), entry.text)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	assert := assert.New(t)

	for _, word := range []uint16{0x0004, 0x00ff, 0x0f04} {
		_, err := Decode(word)
		assert.ErrorIs(err, ErrWord(word), "0x%04x", word)

		// The error carries the offending word, not just the kind.
		assert.NotErrorIs(err, ErrWord(word+1), "0x%04x", word)
	}
}

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	// Re-encoding a decoded word must reproduce it exactly for every
	// definition in the table. The decoder may resolve a word to a
	// synonymous definition (jumpn encodes to a word that decodes as
	// calln); the re-encoded bits must still be identical.
	for _, inst := range Instructions() {
		var operands []Operand
		reg := 1
		for _, typ := range inst.Operands {
			switch typ {
			case OPERAND_REGISTER:
				operands = append(operands, Operand{typ, reg})
				reg++
			case OPERAND_SIGNED, OPERAND_UNSIGNED:
				operands = append(operands, Operand{typ, 5})
			}
		}

		word, err := inst.Encode(operands)
		assert.NoError(err, inst.Name)

		dec, err := Decode(word)
		assert.NoError(err, inst.Name)

		encoded, err := dec.Instruction.Encode(dec.Operands)
		assert.NoError(err, inst.Name)
		assert.Equal(word, encoded, inst.Name)
	}
}

func TestParseWord(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		text string
		word uint16
		err  error
	}){
		{"plain", "0001000100000101", 0x1105, nil},
		{"nibbles", "0001 0001 0000 0101", 0x1105, nil},
		{"annotated", "0110 0001 0010 0011 # add", 0x6123, nil},
		{"short", "0001 0001", 0, ErrWordLength},
		{"long", "0001 0001 0000 0101 1", 0, ErrWordLength},
		{"empty", "", 0, ErrWordLength},
	}

	for _, entry := range table {
		word, err := ParseWord(entry.text)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.name)
			continue
		}
		assert.NoError(err, entry.name)
		assert.Equal(entry.word, word, entry.name)
	}
}

func TestFormatWord(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0001 0001 0000 0101", FormatWord(0x1105))
	assert.Equal("0000 0000 0000 0000", FormatWord(0x0000))
	assert.Equal("1111 1111 1111 1111", FormatWord(0xffff))

	word, err := ParseWord(FormatWord(0xb005))
	assert.NoError(err)
	assert.Equal(uint16(0xb005), word)
}
