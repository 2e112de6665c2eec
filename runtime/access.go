package runtime

import (
	"github.com/CoolSpy3/hmmm-language-support-sub000/hmmm"
	"github.com/CoolSpy3/hmmm-language-support-sub000/machine"
)

// Access is one modeled register or memory access of an instruction,
// resolved against the current machine state.
type Access struct {
	Space   Space
	Address int
	Write   bool
}

// accesses lists the accesses a decoded instruction will perform, in
// the order they are validated. Register-indirect memory addresses are
// resolved from st before the instruction runs, so a pop below address
// zero or an indirect store past the top of memory is visible here.
func accesses(dec hmmm.Decoded, st *machine.State) (accs []Access) {
	regRead := func(reg int) {
		accs = append(accs, Access{SPACE_REGISTER, reg, false})
	}
	regWrite := func(reg int) {
		accs = append(accs, Access{SPACE_REGISTER, reg, true})
	}
	memRead := func(address int) {
		accs = append(accs, Access{SPACE_MEMORY, address, false})
	}
	memWrite := func(address int) {
		accs = append(accs, Access{SPACE_MEMORY, address, true})
	}

	switch dec.Name {
	case "add", "sub", "mul", "div", "mod":
		regRead(dec.Operand(1))
		regRead(dec.Operand(2))
		regWrite(dec.Operand(0))
	case "neg", "copy":
		regRead(dec.Operand(1))
		regWrite(dec.Operand(0))
	case "setn":
		regWrite(dec.Operand(0))
	case "addn":
		regRead(dec.Operand(0))
		regWrite(dec.Operand(0))
	case "loadn":
		memRead(dec.Operand(1))
		regWrite(dec.Operand(0))
	case "storen":
		regRead(dec.Operand(0))
		memWrite(dec.Operand(1))
	case "loadr":
		regRead(dec.Operand(1))
		memRead(int(st.Register(dec.Operand(1))))
		regWrite(dec.Operand(0))
	case "storer":
		regRead(dec.Operand(0))
		regRead(dec.Operand(1))
		memWrite(int(st.Register(dec.Operand(1))))
	case "popr":
		regRead(dec.Operand(1))
		memRead(int(st.Register(dec.Operand(1))) - 1)
		regWrite(dec.Operand(0))
		regWrite(dec.Operand(1))
	case "pushr":
		regRead(dec.Operand(0))
		regRead(dec.Operand(1))
		memWrite(int(st.Register(dec.Operand(1))))
		regWrite(dec.Operand(1))
	case "read":
		regWrite(dec.Operand(0))
	case "write", "jumpr", "jeqzn", "jnezn", "jgtzn", "jltzn":
		regRead(dec.Operand(0))
	case "calln":
		regWrite(dec.Operand(0))
	}
	// halt, nop and jumpn access nothing.
	return
}
