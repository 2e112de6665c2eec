package runtime

import (
	"github.com/CoolSpy3/hmmm-language-support-sub000/hmmm"
	"github.com/CoolSpy3/hmmm-language-support-sub000/machine"
)

// Frame is one call-stack entry: a full machine snapshot captured
// immediately before a control-transfer instruction executed, before
// any of its side effects.
type Frame struct {
	Address int // address of the control-transfer instruction
	Line    int // 1-based source line, 0 when unknown
	State   *machine.State
}

// TraceFrame is one entry of a stack trace, innermost first. Index -1
// is the live pseudo-frame for the current instruction pointer; stored
// frames count up from 0, newest first.
type TraceFrame struct {
	Index   int
	Address int
	Line    int
	Label   string
}

func (rt *Runtime) pushFrame(address int) {
	if len(rt.callStack) >= rt.config.StackLimit {
		if !rt.warnedStackDrop {
			rt.console(f("call stack limit %d reached; oldest frames will be dropped", rt.config.StackLimit))
			rt.warnedStackDrop = true
		}
		rt.callStack = append(rt.callStack[:0], rt.callStack[1:]...)
	}
	line := 0
	if rt.program != nil {
		line, _ = rt.program.LineFor(address)
	}
	rt.callStack = append(rt.callStack, Frame{
		Address: address,
		Line:    line,
		State:   rt.state.Snapshot(),
	})
}

// StackDepth returns the trace length, including the live pseudo-frame.
func (rt *Runtime) StackDepth() int {
	return len(rt.callStack) + 1
}

// StackTrace returns up to count trace frames starting at the given
// innermost-first position. A count of zero or less means all
// remaining frames.
func (rt *Runtime) StackTrace(start, count int) (frames []TraceFrame) {
	total := rt.StackDepth()
	if count <= 0 {
		count = total
	}
	for n := start; n < total && len(frames) < count; n++ {
		index := n - 1
		address := rt.state.Ip
		st := rt.state
		if index >= 0 {
			frame := rt.callStack[len(rt.callStack)-1-index]
			address = frame.Address
			st = frame.State
		}
		label := "invalid"
		if address >= 0 && address < machine.MEMORY_SIZE {
			if text, err := hmmm.Disassemble(st.MemoryAt(address)); err == nil {
				label = text
			}
		}
		line := 0
		if rt.program != nil {
			line, _ = rt.program.LineFor(address)
		}
		frames = append(frames, TraceFrame{
			Index:   index,
			Address: address,
			Line:    line,
			Label:   label,
		})
	}
	return
}

// StateAt returns the machine state of the given trace frame: the live
// state for index -1, or the stored snapshot of a call-stack frame.
// The returned state must not be modified.
func (rt *Runtime) StateAt(index int) (st *machine.State, err error) {
	if index == -1 {
		st = rt.state
		return
	}
	if index < 0 || index >= len(rt.callStack) {
		err = ErrFrameNotFound
		return
	}
	st = rt.callStack[len(rt.callStack)-1-index].State
	return
}

// RestartFrame rewinds the session to the snapshot of the given frame,
// discarding that frame and every newer one, and truncating the
// instruction log to match. Index -1 restarts the current instruction,
// which is a no-op on state. Either way the engine reports a stop so
// the collaborator refreshes its views.
func (rt *Runtime) RestartFrame(index int) (err error) {
	if index < -1 || index >= len(rt.callStack) {
		err = ErrFrameNotFound
		return
	}
	if index >= 0 {
		pos := len(rt.callStack) - 1 - index
		rt.state = rt.callStack[pos].State.Snapshot()
		rt.callStack = rt.callStack[:pos]
		rt.truncateLog(rt.state.LastExecuted)
		rt.fatalPending = false
		rt.lastException = nil
	}
	rt.stop(STOP_RESTART)
	return
}
