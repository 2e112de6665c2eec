package runtime

// ExceptionKind classifies a runtime fault.
type ExceptionKind int

//go:generate go tool stringer -linecomment -type=ExceptionKind
const (
	EXC_INVALID_INSTRUCTION   = ExceptionKind(0) // invalid-instruction
	EXC_INVALID_MEMORY_ACCESS = ExceptionKind(1) // invalid-memory-access
	EXC_OUTSIDE_SEGMENT       = ExceptionKind(2) // execute-outside-segment
	EXC_DIVIDE_BY_ZERO        = ExceptionKind(3) // divide-by-zero
	EXC_CODE_SEGMENT_READ     = ExceptionKind(4) // code-segment-read
	EXC_CODE_SEGMENT_WRITE    = ExceptionKind(5) // code-segment-write
)

// Fatal reports whether the fault ends the program. Non-fatal kinds
// can only pause execution, and only when a matching exception
// breakpoint is armed.
func (kind ExceptionKind) Fatal() bool {
	switch kind {
	case EXC_CODE_SEGMENT_READ, EXC_CODE_SEGMENT_WRITE:
		return false
	}
	return true
}

// ExceptionKinds returns every kind, in declaration order.
func ExceptionKinds() []ExceptionKind {
	return []ExceptionKind{
		EXC_INVALID_INSTRUCTION,
		EXC_INVALID_MEMORY_ACCESS,
		EXC_OUTSIDE_SEGMENT,
		EXC_DIVIDE_BY_ZERO,
		EXC_CODE_SEGMENT_READ,
		EXC_CODE_SEGMENT_WRITE,
	}
}

// ExceptionKindNamed resolves a kind from its canonical name.
func ExceptionKindNamed(name string) (kind ExceptionKind, ok bool) {
	for _, kind = range ExceptionKinds() {
		if kind.String() == name {
			ok = true
			return
		}
	}
	return
}

// Exception is one raised fault: the kind, the address of the faulting
// instruction, and a kind-specific detail (offending address or word).
type Exception struct {
	Kind    ExceptionKind
	Address int
	Detail  int
}

// Description returns a user-facing account of the fault.
func (exc Exception) Description() string {
	switch exc.Kind {
	case EXC_INVALID_INSTRUCTION:
		return f("the word 0x%04x at address %d is not a valid instruction", exc.Detail, exc.Address)
	case EXC_INVALID_MEMORY_ACCESS:
		return f("instruction at address %d accessed invalid memory address %d", exc.Address, exc.Detail)
	case EXC_OUTSIDE_SEGMENT:
		return f("attempted to execute address %d, outside the program", exc.Detail)
	case EXC_DIVIDE_BY_ZERO:
		return f("division by zero at address %d", exc.Address)
	case EXC_CODE_SEGMENT_READ:
		return f("instruction at address %d read code-segment address %d", exc.Address, exc.Detail)
	case EXC_CODE_SEGMENT_WRITE:
		return f("instruction at address %d wrote code-segment address %d", exc.Address, exc.Detail)
	}
	return f("unknown fault at address %d", exc.Address)
}
