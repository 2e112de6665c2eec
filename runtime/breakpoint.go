package runtime

// Space is a data-breakpoint address space.
type Space int

//go:generate go tool stringer -linecomment -type=Space
const (
	SPACE_REGISTER = Space(0) // register
	SPACE_MEMORY   = Space(1) // memory
)

// Breakpoint is the result of arming an instruction breakpoint. An
// unverified breakpoint names a line that holds no instruction; it is
// never hit.
type Breakpoint struct {
	Id       int
	Verified bool
	Line     int
	Address  int
}

type dataKey struct {
	space   Space
	address int
}

// dataWatch tracks the read and write directions of one watched cell
// independently. A zero id means the direction is not watched.
type dataWatch struct {
	readId  int
	writeId int
}

func (rt *Runtime) nextId() (id int) {
	id = rt.nextBreakpointId
	rt.nextBreakpointId++
	return
}

// SetInstructionBreakpoints replaces the instruction breakpoint set
// with one breakpoint per given 1-based source line. Ids are fresh and
// never reused.
func (rt *Runtime) SetInstructionBreakpoints(lines []int) (bps []Breakpoint) {
	clear(rt.instructionBp)
	for _, line := range lines {
		bp := Breakpoint{Id: rt.nextId(), Line: line}
		if rt.program != nil {
			if address, ok := rt.program.InstructionForLine(line); ok {
				bp.Verified = true
				bp.Address = address
				rt.instructionBp[address] = bp.Id
			}
		}
		bps = append(bps, bp)
	}
	return
}

// SetDataBreakpoint arms a watch on one register or memory cell, for
// the requested access directions, and returns its id. Re-arming a
// cell replaces the requested directions and leaves the others alone.
func (rt *Runtime) SetDataBreakpoint(space Space, address int, onRead, onWrite bool) (id int) {
	id = rt.nextId()
	key := dataKey{space, address}
	watch := rt.dataBp[key]
	if onRead {
		watch.readId = id
	}
	if onWrite {
		watch.writeId = id
	}
	rt.dataBp[key] = watch
	return
}

// ClearInstructionBreakpoints removes every instruction breakpoint.
func (rt *Runtime) ClearInstructionBreakpoints() {
	clear(rt.instructionBp)
}

// ClearDataBreakpoints removes every data watch.
func (rt *Runtime) ClearDataBreakpoints() {
	clear(rt.dataBp)
}

// SetExceptionBreakpoints replaces the exception breakpoint set with
// one breakpoint per recognized kind name; unrecognized names are
// ignored. Arming a fatal kind turns its "program ends" outcome into a
// pause; the program still cannot continue past it.
func (rt *Runtime) SetExceptionBreakpoints(names []string) (ids []int) {
	clear(rt.exceptionBp)
	for _, name := range names {
		kind, ok := ExceptionKindNamed(name)
		if !ok {
			continue
		}
		id := rt.nextId()
		rt.exceptionBp[kind] = id
		ids = append(ids, id)
	}
	return
}

func (rt *Runtime) matchData(space Space, address int, write bool) (id int, ok bool) {
	watch, found := rt.dataBp[dataKey{space, address}]
	if !found {
		return
	}
	if write {
		id = watch.writeId
	} else {
		id = watch.readId
	}
	ok = id != 0
	return
}
