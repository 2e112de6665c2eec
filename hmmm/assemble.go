package hmmm

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// OperandShape is the detected shape of a source operand token.
type OperandShape int

//go:generate go tool stringer -linecomment -type=OperandShape
const (
	SHAPE_UNKNOWN          = OperandShape(0) // unknown
	SHAPE_REGISTER_ZERO    = OperandShape(1) // r0
	SHAPE_REGISTER         = OperandShape(2) // register
	SHAPE_REGISTER_INVALID = OperandShape(3) // invalid register
	SHAPE_NUMBER           = OperandShape(4) // number
	SHAPE_NUMBER_SIGNED    = OperandShape(5) // signed number
	SHAPE_NUMBER_UNSIGNED  = OperandShape(6) // unsigned number
	SHAPE_NUMBER_RANGE     = OperandShape(7) // out-of-range number
)

var registerToken = regexp.MustCompile(`^[rR](\d+)$`)

// ClassifyOperand detects the shape of a single operand token. Numbers
// in [0, 127] are representable as either signed or unsigned and
// classify as SHAPE_NUMBER; negative numbers are signed-only and values
// in [128, 255] unsigned-only.
func ClassifyOperand(token string) (shape OperandShape, value int) {
	if m := registerToken.FindStringSubmatch(token); m != nil {
		reg, err := strconv.Atoi(m[1])
		if err != nil {
			shape = SHAPE_REGISTER_INVALID
			return
		}
		value = reg
		switch {
		case reg == 0:
			shape = SHAPE_REGISTER_ZERO
		case reg < 16:
			shape = SHAPE_REGISTER
		default:
			shape = SHAPE_REGISTER_INVALID
		}
		return
	}

	number, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		shape = SHAPE_UNKNOWN
		return
	}
	value = int(number)
	switch {
	case number < NUMBER_MIN || number > NUMBER_MAX:
		shape = SHAPE_NUMBER_RANGE
	case number < 0:
		shape = SHAPE_NUMBER_SIGNED
	case number > 127:
		shape = SHAPE_NUMBER_UNSIGNED
	default:
		shape = SHAPE_NUMBER
	}
	return
}

// validateOperand checks a token's shape against the declared slot type
// and returns the operand value.
func validateOperand(typ OperandType, token string) (op Operand, err error) {
	shape, value := ClassifyOperand(token)
	op = Operand{Type: typ, Value: value}

	switch typ {
	case OPERAND_REGISTER:
		switch shape {
		case SHAPE_REGISTER_ZERO, SHAPE_REGISTER:
			return
		case SHAPE_REGISTER_INVALID:
			err = ErrRegisterInvalid
		default:
			err = ErrRegisterExpected
		}
	case OPERAND_SIGNED:
		switch shape {
		case SHAPE_NUMBER, SHAPE_NUMBER_SIGNED:
			return
		case SHAPE_NUMBER_UNSIGNED:
			err = ErrNumberSigned
		case SHAPE_NUMBER_RANGE:
			err = ErrNumberRange
		case SHAPE_UNKNOWN:
			err = ErrParseNumber(token)
		default:
			err = ErrNumberExpected
		}
	case OPERAND_UNSIGNED:
		switch shape {
		case SHAPE_NUMBER, SHAPE_NUMBER_UNSIGNED:
			return
		case SHAPE_NUMBER_SIGNED:
			err = ErrNumberUnsigned
		case SHAPE_NUMBER_RANGE:
			err = ErrNumberRange
		case SHAPE_UNKNOWN:
			err = ErrParseNumber(token)
		default:
			err = ErrNumberExpected
		}
	}
	return
}

// Assembler is a single-pass assembler for HMMM source text. The whole
// program is rejected on the first malformed line; there is no partial
// output.
type Assembler struct {
	Verbose bool // If set, verbosely logs assembler actions.

	predefine map[string]string
}

// Predefine binds a name usable inside $( ... ) expressions.
func (asm *Assembler) Predefine(name string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// parenEval does compile-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string, lineno int) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"LINENO": starlark.MakeInt(lineno),
	}
	for key, str := range asm.predefine {
		number, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer predefines.
			continue
		}
		pred[key] = starlark.MakeInt(int(number))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

var parenExpr = regexp.MustCompile(`\$\([^)]*\)`)

// expandLine strips the comment, evaluates $() expressions, and splits
// the line into tokens on whitespace and commas.
func (asm *Assembler) expandLine(text string, lineno int) (tokens []string, err error) {
	line, _, _ := strings.Cut(text, "#")

	line = parenExpr.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2:len(str)-1], lineno)
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	tokens = strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})

	return
}

// Parse assembles an input stream into a compiled Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			prog = nil
		}
	}()

	var words []uint16
	var lines []int

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v", lineno, line)
		}

		var tokens []string
		tokens, err = asm.expandLine(line, lineno)
		if err != nil {
			return
		}
		if len(tokens) == 0 {
			continue
		}

		var word uint16
		word, err = asm.parseTokens(tokens, len(words))
		if err != nil {
			return
		}

		words = append(words, word)
		lines = append(lines, lineno)
	}
	if err = scanner.Err(); err != nil {
		return
	}

	prog = newProgram(words, lines)

	return
}

// parseTokens evaluates the tokens of one instruction line. The leading
// token must be the running instruction count; the mnemonic and each
// operand must fit the instruction's declared shape, with nothing left
// over.
func (asm *Assembler) parseTokens(tokens []string, index int) (word uint16, err error) {
	explicit, perr := strconv.Atoi(tokens[0])
	if perr != nil || explicit != index {
		err = ErrLineNumber
		return
	}
	tokens = tokens[1:]

	if len(tokens) == 0 {
		err = ErrMnemonicUnknown
		return
	}
	inst, ok := Lookup(tokens[0])
	if !ok {
		err = ErrMnemonicUnknown
		return
	}
	tokens = tokens[1:]

	var operands []Operand
	for _, typ := range inst.Operands {
		if typ == OPERAND_NONE {
			continue
		}
		if len(tokens) == 0 {
			err = ErrOperandMissing
			return
		}
		var op Operand
		op, err = validateOperand(typ, tokens[0])
		if err != nil {
			return
		}
		operands = append(operands, op)
		tokens = tokens[1:]
	}

	if len(tokens) != 0 {
		err = ErrOperandExtra
		return
	}

	word, err = inst.Encode(operands)

	return
}

// ParseBinary reads a binary listing (one 16-digit binary word per
// non-blank line) into a compiled Program.
func ParseBinary(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			prog = nil
		}
	}()

	var words []uint16
	var lines []int

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if strings.TrimSpace(line) == "" {
			continue
		}

		var word uint16
		word, err = ParseWord(line)
		if err != nil {
			return
		}

		words = append(words, word)
		lines = append(lines, lineno)
	}
	if err = scanner.Err(); err != nil {
		return
	}

	prog = newProgram(words, lines)

	return
}
