package runtime

// EventKind tags an engine event.
type EventKind int

//go:generate go tool stringer -linecomment -type=EventKind
const (
	EVENT_STOP   = EventKind(0) // stop
	EVENT_OUTPUT = EventKind(1) // output
	EVENT_INPUT  = EventKind(2) // input
	EVENT_END    = EventKind(3) // end
)

// StopReason refines an EVENT_STOP.
type StopReason int

//go:generate go tool stringer -linecomment -type=StopReason
const (
	STOP_STEP            = StopReason(0) // step
	STOP_BREAKPOINT      = StopReason(1) // breakpoint
	STOP_DATA_BREAKPOINT = StopReason(2) // data breakpoint
	STOP_EXCEPTION       = StopReason(3) // exception
	STOP_PAUSE           = StopReason(4) // pause
	STOP_GOTO            = StopReason(5) // goto
	STOP_RESTART         = StopReason(6) // restart
)

// Stream tags the destination of an EVENT_OUTPUT.
type Stream int

//go:generate go tool stringer -linecomment -type=Stream
const (
	STREAM_STDOUT  = Stream(0) // stdout
	STREAM_STDERR  = Stream(1) // stderr
	STREAM_CONSOLE = Stream(2) // console
)

// Event is one engine notification, delivered synchronously from the
// execution goroutine.
type Event struct {
	Kind EventKind

	// EVENT_STOP only.
	Reason        StopReason
	BreakpointIds []int

	// EVENT_OUTPUT only.
	Text   string
	Stream Stream
	Line   int // 1-based source line, 0 when unknown
}

func (rt *Runtime) emit(event Event) {
	if rt.OnEvent != nil {
		rt.OnEvent(event)
	}
}

func (rt *Runtime) stop(reason StopReason, ids ...int) {
	rt.phase = PHASE_PAUSED
	rt.emit(Event{Kind: EVENT_STOP, Reason: reason, BreakpointIds: ids})
}

func (rt *Runtime) output(text string, stream Stream, line int) {
	rt.emit(Event{Kind: EVENT_OUTPUT, Text: text, Stream: stream, Line: line})
}

func (rt *Runtime) console(text string) {
	rt.output(text, STREAM_CONSOLE, 0)
}

func (rt *Runtime) end() {
	rt.phase = PHASE_HALTED
	rt.emit(Event{Kind: EVENT_END})
}
