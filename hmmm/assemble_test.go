package hmmm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyOperand(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		token string
		shape OperandShape
		value int
	}){
		{"r0", SHAPE_REGISTER_ZERO, 0},
		{"r1", SHAPE_REGISTER, 1},
		{"R15", SHAPE_REGISTER, 15},
		{"r16", SHAPE_REGISTER_INVALID, 16},
		{"0", SHAPE_NUMBER, 0},
		{"127", SHAPE_NUMBER, 127},
		{"128", SHAPE_NUMBER_UNSIGNED, 128},
		{"255", SHAPE_NUMBER_UNSIGNED, 255},
		{"-1", SHAPE_NUMBER_SIGNED, -1},
		{"-128", SHAPE_NUMBER_SIGNED, -128},
		{"256", SHAPE_NUMBER_RANGE, 256},
		{"-129", SHAPE_NUMBER_RANGE, -129},
		{"banana", SHAPE_UNKNOWN, 0},
	}

	for _, entry := range table {
		shape, value := ClassifyOperand(entry.token)
		assert.Equal(entry.shape, shape, entry.token)
		assert.Equal(entry.value, value, entry.token)
	}
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	source := `
# double the input
0 read r1
1 add r2 r1 r1
2 write r2
3 halt
`

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(source))
	assert.NoError(err)
	assert.Equal(4, prog.Size())
	assert.Equal([]uint16{0x0101, 0x6211, 0x0202, 0x0000}, prog.Words)
	assert.Equal([]int{3, 4, 5, 6}, prog.Lines)

	line, ok := prog.LineFor(1)
	assert.True(ok)
	assert.Equal(4, line)

	index, ok := prog.InstructionForLine(5)
	assert.True(ok)
	assert.Equal(2, index)

	_, ok = prog.InstructionForLine(2)
	assert.False(ok)
}

func TestParseAliases(t *testing.T) {
	assert := assert.New(t)

	source := `
0 setn r1 10
1 store r2 20    # storen
2 load r3 20     # loadn
3 storei r3 r1   # storer
4 loadi r4 r1    # loadr
5 mov r5 r4      # copy
6 jeqz r5 9      # jeqzn
7 call r14 9     # calln
8 jump 9         # jumpn
9 halt
`

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(source))
	assert.NoError(err)
	assert.Equal([]uint16{
		0x110a, 0x3214, 0x2314, 0x4311, 0x4410,
		0x6540, 0xc509, 0xbe09, 0xb009, 0x0000,
	}, prog.Words)
}

func TestParseExpressions(t *testing.T) {
	assert := assert.New(t)

	source := `
0 setn r1 $(100 + 27)
1 loadn r2 $(TOP - 1)
2 storen r2 $(TOP)
3 halt
`

	asm := &Assembler{}
	asm.Predefine("TOP", "255")
	asm.Predefine("NAME", "not-a-number")

	prog, err := asm.Parse(strings.NewReader(source))
	assert.NoError(err)
	assert.Equal([]uint16{0x117f, 0x22fe, 0x32ff, 0x0000}, prog.Words)
}

func TestParseLineno(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader("0 setn r1 $(LINENO)\n1 halt\n"))
	assert.NoError(err)
	assert.Equal(uint16(0x1101), prog.Words[0])
}

func TestParseErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source string
		err    error
		lineno int
	}){
		{"lineno-skip", "0 halt\n2 halt\n", ErrLineNumber, 2},
		{"lineno-missing", "halt\n", ErrLineNumber, 1},
		{"mnemonic", "0 blorp r1\n", ErrMnemonicUnknown, 1},
		{"mnemonic-missing", "0\n", ErrMnemonicUnknown, 1},
		{"operand-missing", "0 add r1 r2\n", ErrOperandMissing, 1},
		{"operand-extra", "0 halt r1\n", ErrOperandExtra, 1},
		{"register-expected", "0 read 5\n", ErrRegisterExpected, 1},
		{"register-invalid", "0 add r1 r2 r16\n", ErrRegisterInvalid, 1},
		{"signed-range", "0 setn r1 200\n", ErrNumberSigned, 1},
		{"unsigned-range", "0 loadn r1 -5\n", ErrNumberUnsigned, 1},
		{"range", "0 jumpn 300\n", ErrNumberRange, 1},
	}

	for _, entry := range table {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(entry.source))
		assert.Nil(prog, entry.name)
		assert.ErrorIs(err, entry.err, entry.name)

		var syntax *ErrSyntax
		assert.ErrorAs(err, &syntax, entry.name)
		assert.Equal(entry.lineno, syntax.LineNo, entry.name)
	}
}

func TestParseBinary(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader("0 read r1\n1 add r2 r1 r1\n2 write r2\n3 halt\n"))
	assert.NoError(err)

	reparsed, err := ParseBinary(strings.NewReader(prog.Listing()))
	assert.NoError(err)
	assert.Equal(prog.Words, reparsed.Words)

	_, err = ParseBinary(strings.NewReader("0101\n"))
	assert.ErrorIs(err, ErrWordLength)
}
