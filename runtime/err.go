package runtime

import (
	"errors"

	"github.com/CoolSpy3/hmmm-language-support-sub000/translate"
)

var f = translate.From

var (
	ErrMode           = errors.New(f("unknown input mode"))
	ErrNotConfigured  = errors.New(f("no program configured"))
	ErrFrameNotFound  = errors.New(f("no such stack frame"))
	ErrAddressInvalid = errors.New(f("address outside memory"))
)
