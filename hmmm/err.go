package hmmm

import (
	"errors"

	"github.com/CoolSpy3/hmmm-language-support-sub000/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrLineNumber       = errors.New(f("line number out of sequence"))
	ErrMnemonicUnknown  = errors.New(f("unknown instruction"))
	ErrOperandMissing   = errors.New(f("operand missing"))
	ErrOperandExtra     = errors.New(f("unexpected trailing operand"))
	ErrRegisterExpected = errors.New(f("register expected"))
	ErrRegisterInvalid  = errors.New(f("register out of range"))
	ErrNumberExpected   = errors.New(f("number expected"))
	ErrNumberRange      = errors.New(f("number out of range"))
	ErrNumberSigned     = errors.New(f("number must be in [-128, 127]"))
	ErrNumberUnsigned   = errors.New(f("number must be in [0, 255]"))

	// Decoder errors
	ErrWordLength   = errors.New(f("expected exactly 16 binary digits"))
	ErrOperandSlots = errors.New(f("numeric operand cannot occupy the third slot"))
)

// ErrWord is a 16-bit word that matches no instruction definition.
type ErrWord uint16

func (err ErrWord) Error() string {
	return f("0x%04x is not an instruction", uint16(err))
}

func (err ErrWord) Is(target error) bool {
	other, ok := target.(ErrWord)
	return ok && other == err
}

// ErrSyntax locates an assembler error on its source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
