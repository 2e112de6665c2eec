package hmmm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMasks(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		mask uint16
	}){
		{"halt", 0xffff},
		{"nop", 0xffff},
		{"read", 0xf0ff},
		{"jumpr", 0xf0ff},
		{"copy", 0xf00f},
		{"neg", 0xf0f0},
		{"add", 0xf000},
		{"sub", 0xf000},
		{"setn", 0xf000},
		{"jumpn", 0xf000},
		{"calln", 0xf000},
	}

	for _, entry := range table {
		inst, ok := Lookup(entry.name)
		assert.True(ok, entry.name)
		assert.Equal(entry.mask, inst.Mask, entry.name)
	}
}

func TestCanonicalize(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		alias     string
		canonical string
	}){
		{"mov", "copy"},
		{"jump", "jumpn"},
		{"jeqz", "jeqzn"},
		{"call", "calln"},
		{"loadi", "loadr"},
		{"load", "loadn"},
		{"storei", "storer"},
		{"store", "storen"},
		{"add", "add"},
		{"bogus", "bogus"},
	}

	for _, entry := range table {
		assert.Equal(entry.canonical, Canonicalize(entry.alias), entry.alias)
	}
}

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		operands []Operand
		word     uint16
	}){
		{"halt", nil, 0x0000},
		{"read", []Operand{{OPERAND_REGISTER, 1}}, 0x0101},
		{"write", []Operand{{OPERAND_REGISTER, 2}}, 0x0202},
		{"setn", []Operand{{OPERAND_REGISTER, 1}, {OPERAND_SIGNED, 5}}, 0x1105},
		{"setn", []Operand{{OPERAND_REGISTER, 1}, {OPERAND_SIGNED, -1}}, 0x11ff},
		{"addn", []Operand{{OPERAND_REGISTER, 3}, {OPERAND_SIGNED, -128}}, 0x5380},
		{"add", []Operand{{OPERAND_REGISTER, 1}, {OPERAND_REGISTER, 2}, {OPERAND_REGISTER, 3}}, 0x6123},
		{"neg", []Operand{{OPERAND_REGISTER, 1}, {OPERAND_REGISTER, 2}}, 0x7102},
		{"copy", []Operand{{OPERAND_REGISTER, 1}, {OPERAND_REGISTER, 2}}, 0x6120},
		{"loadn", []Operand{{OPERAND_REGISTER, 1}, {OPERAND_UNSIGNED, 255}}, 0x21ff},
		{"jumpn", []Operand{{OPERAND_UNSIGNED, 42}}, 0xb02a},
		{"calln", []Operand{{OPERAND_REGISTER, 14}, {OPERAND_UNSIGNED, 7}}, 0xbe07},
		{"jeqzn", []Operand{{OPERAND_REGISTER, 1}, {OPERAND_UNSIGNED, 10}}, 0xc10a},
	}

	for _, entry := range table {
		inst, ok := Lookup(entry.name)
		assert.True(ok, entry.name)

		word, err := inst.Encode(entry.operands)
		assert.NoError(err, entry.name)
		assert.Equal(entry.word, word, entry.name)
	}
}

func TestEncodeMissing(t *testing.T) {
	assert := assert.New(t)

	inst, ok := Lookup("add")
	assert.True(ok)

	_, err := inst.Encode([]Operand{{OPERAND_REGISTER, 1}})
	assert.ErrorIs(err, ErrOperandMissing)

	_, err = inst.Encode([]Operand{
		{OPERAND_REGISTER, 1}, {OPERAND_REGISTER, 2},
		{OPERAND_REGISTER, 3}, {OPERAND_REGISTER, 4},
	})
	assert.ErrorIs(err, ErrOperandExtra)
}
