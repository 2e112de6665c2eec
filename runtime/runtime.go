package runtime

import (
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/CoolSpy3/hmmm-language-support-sub000/hmmm"
	"github.com/CoolSpy3/hmmm-language-support-sub000/internal"
	"github.com/CoolSpy3/hmmm-language-support-sub000/machine"
)

// Phase is the session lifecycle state.
type Phase int

//go:generate go tool stringer -linecomment -type=Phase
const (
	PHASE_READY          = Phase(0) // ready
	PHASE_RUNNING        = Phase(1) // running
	PHASE_PAUSED         = Phase(2) // paused
	PHASE_HALTED         = Phase(3) // halted
	PHASE_AWAITING_INPUT = Phase(4) // awaiting-input
)

// Mode selects the input format accepted by Configure.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_ASSEMBLY = Mode(0) // assembly
	MODE_BINARY   = Mode(1) // binary
)

const (
	STACK_LIMIT = 256
	LOG_LIMIT   = 8192
)

var _runtime_defines = map[string]string{
	"STACK_LIMIT": fmt.Sprintf("%d", STACK_LIMIT),
	"LOG_LIMIT":   fmt.Sprintf("%d", LOG_LIMIT),
}

// Config carries the per-session limits.
type Config struct {
	StackLimit int  // maximum stored call-stack depth
	LogLimit   int  // maximum instruction-log length
	Reverse    bool // record an instruction log for reverse execution
}

// DefaultConfig returns the stock limits with reverse execution on.
func DefaultConfig() Config {
	return Config{
		StackLimit: STACK_LIMIT,
		LogLimit:   LOG_LIMIT,
		Reverse:    true,
	}
}

// runParams is one run request: direction, single-step or free-running,
// and an optional mnemonic filter for single steps.
type runParams struct {
	reverse bool
	single  bool
	filter  string
}

// Runtime is one debug session.
type Runtime struct {
	Verbose bool
	OnEvent func(Event)

	config  Config
	program *hmmm.Program
	state   *machine.State
	phase   Phase

	pauseRequested atomic.Bool

	nextBreakpointId int
	instructionBp    map[int]int
	dataBp           map[dataKey]dataWatch
	exceptionBp      map[ExceptionKind]int

	callStack  []Frame
	logEntries []LogEntry
	nextLogId  int

	lastException *Exception
	fatalPending  bool

	// suppressAddr is the address of the last breakpoint or exception
	// stop; checks there are skipped until execution leaves it.
	suppressAddr int
	damped       map[ExceptionKind]int

	warnedStackDrop bool
	warnedLogDrop   bool

	readTarget int
	resumeRun  *runParams
}

// New returns an idle session. Non-positive limits fall back to the
// defaults.
func New(config Config) (rt *Runtime) {
	if config.StackLimit <= 0 {
		config.StackLimit = STACK_LIMIT
	}
	if config.LogLimit <= 0 {
		config.LogLimit = LOG_LIMIT
	}
	rt = &Runtime{
		config:           config,
		state:            machine.NewState(),
		nextBreakpointId: 1,
		instructionBp:    map[int]int{},
		dataBp:           map[dataKey]dataWatch{},
		exceptionBp:      map[ExceptionKind]int{},
		damped:           map[ExceptionKind]int{},
		suppressAddr:     -1,
	}
	return
}

// Defines returns the name/value pairs predefined for assembly-time
// $() expressions: the machine geometry plus the session limits.
func (rt *Runtime) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(machine.Defines(), maps.All(_runtime_defines))
}

// Configure parses the program, loads it at address 0, and leaves the
// session ready to run. Breakpoints survive reconfiguration; run
// history does not.
func (rt *Runtime) Configure(input io.Reader, mode Mode) (err error) {
	var program *hmmm.Program
	switch mode {
	case MODE_ASSEMBLY:
		asm := &hmmm.Assembler{Verbose: rt.Verbose}
		for name, value := range rt.Defines() {
			asm.Predefine(name, value)
		}
		program, err = asm.Parse(input)
	case MODE_BINARY:
		program, err = hmmm.ParseBinary(input)
	default:
		err = ErrMode
	}
	if err != nil {
		return
	}

	rt.program = program
	rt.state.Reset()
	rt.state.Load(program.Words)
	rt.phase = PHASE_READY
	rt.callStack = rt.callStack[:0]
	rt.logEntries = rt.logEntries[:0]
	rt.nextLogId = 0
	rt.lastException = nil
	rt.fatalPending = false
	rt.suppressAddr = -1
	clear(rt.damped)
	rt.warnedStackDrop = false
	rt.warnedLogDrop = false

	if rt.Verbose {
		log.Printf("configured %d instructions", program.Size())
	}
	return
}

// Phase returns the session lifecycle state.
func (rt *Runtime) Phase() Phase {
	return rt.phase
}

// Program returns the configured program, nil before Configure.
func (rt *Runtime) Program() *hmmm.Program {
	return rt.program
}

// State returns the live machine state. It must not be modified
// directly while the session is running.
func (rt *Runtime) State() *machine.State {
	return rt.state
}

// LastException describes the most recently raised fault.
func (rt *Runtime) LastException() (exc Exception, ok bool) {
	if rt.lastException != nil {
		exc = *rt.lastException
		ok = true
	}
	return
}

// Continue runs freely in the given direction until something stops
// execution.
func (rt *Runtime) Continue(reverse bool) {
	rt.run(runParams{reverse: reverse})
}

// Step executes one instruction in the given direction. A non-empty
// filter keeps stepping until an instruction with that mnemonic (alias
// forms accepted) has executed.
func (rt *Runtime) Step(reverse bool, filter string) {
	rt.run(runParams{reverse: reverse, single: true, filter: hmmm.Canonicalize(filter)})
}

// Pause asks a running session to stop between instructions. Safe to
// call from any goroutine.
func (rt *Runtime) Pause() {
	rt.pauseRequested.Store(true)
}

// Goto moves the instruction pointer without executing anything, then
// reports a stop.
func (rt *Runtime) Goto(address int) (err error) {
	if address < 0 || address >= machine.MEMORY_SIZE {
		err = ErrAddressInvalid
		return
	}
	rt.state.Ip = address
	rt.fatalPending = false
	rt.stop(STOP_GOTO)
	return
}

// Terminate ends the session regardless of phase.
func (rt *Runtime) Terminate() {
	if rt.phase != PHASE_HALTED {
		rt.end()
	}
}

func (rt *Runtime) run(params runParams) {
	switch rt.phase {
	case PHASE_HALTED, PHASE_AWAITING_INPUT, PHASE_RUNNING:
		return
	}
	if rt.program == nil {
		rt.console(ErrNotConfigured.Error())
		rt.end()
		return
	}

	rt.phase = PHASE_RUNNING
	for {
		if rt.pauseRequested.CompareAndSwap(true, false) {
			rt.stop(STOP_PAUSE)
			return
		}
		var yield bool
		if params.reverse {
			yield = rt.cycleReverse(params)
		} else {
			yield = rt.cycleForward(params)
		}
		if yield {
			return
		}
	}
}

// cycleForward runs one fetch-check-execute cycle. It returns true
// when control must go back to the caller: a stop was reported, the
// program ended, or input is awaited.
func (rt *Runtime) cycleForward(params runParams) (yield bool) {
	st := rt.state
	ip := st.Ip

	// Suppression and damping only survive while execution stays on
	// the address that caused the stop.
	if rt.suppressAddr != ip {
		rt.suppressAddr = -1
	}
	for kind, address := range rt.damped {
		if address != ip {
			delete(rt.damped, kind)
		}
	}

	if rt.fatalPending {
		// The fault was already reported as a stop; the program cannot
		// continue past it.
		rt.end()
		return true
	}

	if !rt.program.Contains(ip) {
		return rt.raise(Exception{EXC_OUTSIDE_SEGMENT, ip, ip})
	}

	if id, ok := rt.instructionBp[ip]; ok && rt.suppressAddr != ip {
		rt.suppressAddr = ip
		rt.stop(STOP_BREAKPOINT, id)
		return true
	}

	word := st.MemoryAt(ip)

	// The fetch itself is a memory read at ip; only data watches apply
	// to it, never the code-segment faults.
	var dataIds []int
	if rt.suppressAddr != ip {
		if id, ok := rt.matchData(SPACE_MEMORY, ip, false); ok {
			dataIds = append(dataIds, id)
		}
	}

	dec, decodeErr := hmmm.Decode(word)
	if decodeErr == nil {
		for _, acc := range accesses(dec, st) {
			if acc.Space == SPACE_MEMORY {
				if acc.Address < 0 || acc.Address >= machine.MEMORY_SIZE {
					return rt.raise(Exception{EXC_INVALID_MEMORY_ACCESS, ip, acc.Address})
				}
				if rt.program.Contains(acc.Address) && rt.suppressAddr != ip {
					kind := EXC_CODE_SEGMENT_READ
					if acc.Write {
						kind = EXC_CODE_SEGMENT_WRITE
					}
					if rt.raiseMaskable(Exception{kind, ip, acc.Address}) {
						return true
					}
				}
			}
			if rt.suppressAddr != ip {
				if id, ok := rt.matchData(acc.Space, acc.Address, acc.Write); ok {
					dataIds = append(dataIds, id)
				}
			}
		}
	}

	if len(dataIds) > 0 {
		rt.suppressAddr = ip
		rt.stop(STOP_DATA_BREAKPOINT, dedupe(dataIds)...)
		return true
	}

	if decodeErr != nil {
		return rt.raise(Exception{EXC_INVALID_INSTRUCTION, ip, int(word)})
	}

	return rt.execute(dec, params)
}

// execute performs a decoded instruction's side effects, advances the
// instruction pointer, and appends the undo record. All access
// validation already happened.
func (rt *Runtime) execute(dec hmmm.Decoded, params runParams) (yield bool) {
	st := rt.state
	ip := st.Ip
	nextIp := ip + 1

	var prior uint16
	hasPrior := false
	setReg := func(reg, value int) {
		prior = st.Register(reg)
		hasPrior = true
		st.SetRegister(reg, value)
	}
	setMem := func(address, value int) {
		prior = st.MemoryAt(address)
		hasPrior = true
		st.SetMemory(address, value)
	}
	signed := func(n int) int {
		return int(int16(st.Register(dec.Operand(n))))
	}

	transfer := false
	jump := func(target int) {
		// Snapshot before any side effect of this instruction.
		rt.pushFrame(ip)
		transfer = true
		nextIp = target
	}

	switch dec.Name {
	case "halt":
		rt.end()
		return true
	case "nop":
	case "read":
		rt.readTarget = dec.Operand(0)
		rt.resumeRun = &params
		rt.phase = PHASE_AWAITING_INPUT
		rt.emit(Event{Kind: EVENT_INPUT})
		return true
	case "write":
		line := 0
		if l, ok := rt.program.LineFor(ip); ok {
			line = l
		}
		rt.output(strconv.Itoa(signed(0)), STREAM_STDOUT, line)
	case "setn":
		setReg(dec.Operand(0), dec.Operand(1))
	case "addn":
		setReg(dec.Operand(0), signed(0)+dec.Operand(1))
	case "copy":
		setReg(dec.Operand(0), signed(1))
	case "add":
		setReg(dec.Operand(0), signed(1)+signed(2))
	case "sub":
		setReg(dec.Operand(0), signed(1)-signed(2))
	case "neg":
		setReg(dec.Operand(0), -signed(1))
	case "mul":
		setReg(dec.Operand(0), signed(1)*signed(2))
	case "div":
		if signed(2) == 0 {
			return rt.raise(Exception{EXC_DIVIDE_BY_ZERO, ip, 0})
		}
		setReg(dec.Operand(0), signed(1)/signed(2))
	case "mod":
		if signed(2) == 0 {
			return rt.raise(Exception{EXC_DIVIDE_BY_ZERO, ip, 0})
		}
		setReg(dec.Operand(0), signed(1)%signed(2))
	case "loadn":
		setReg(dec.Operand(0), int(st.MemoryAt(dec.Operand(1))))
	case "storen":
		setMem(dec.Operand(1), int(st.Register(dec.Operand(0))))
	case "loadr":
		setReg(dec.Operand(0), int(st.MemoryAt(int(st.Register(dec.Operand(1))))))
	case "storer":
		setMem(int(st.Register(dec.Operand(1))), int(st.Register(dec.Operand(0))))
	case "popr":
		sp := int(st.Register(dec.Operand(1))) - 1
		value := int(st.MemoryAt(sp))
		st.SetRegister(dec.Operand(1), sp)
		setReg(dec.Operand(0), value)
	case "pushr":
		sp := int(st.Register(dec.Operand(1)))
		setMem(sp, int(st.Register(dec.Operand(0))))
		st.SetRegister(dec.Operand(1), sp+1)
	case "jumpn":
		jump(dec.Operand(0))
	case "jumpr":
		jump(int(st.Register(dec.Operand(0))))
	case "calln":
		jump(dec.Operand(1))
		setReg(dec.Operand(0), ip+1)
	case "jeqzn":
		if signed(0) == 0 {
			jump(dec.Operand(1))
		}
	case "jnezn":
		if signed(0) != 0 {
			jump(dec.Operand(1))
		}
	case "jgtzn":
		if signed(0) > 0 {
			jump(dec.Operand(1))
		}
	case "jltzn":
		if signed(0) < 0 {
			jump(dec.Operand(1))
		}
	}

	if rt.Verbose {
		log.Printf("%3d: %v", ip, dec)
	}

	st.Ip = nextIp
	rt.appendLog(LogEntry{
		Address:     ip,
		Prior:       prior,
		HasPrior:    hasPrior,
		PushedFrame: transfer,
	})
	rt.suppressAddr = -1

	if params.single && (params.filter == "" || dec.Name == params.filter) {
		rt.stop(STOP_STEP)
		return true
	}
	return false
}

// cycleReverse pops the newest undo record, restores the machine to
// the moment just before that instruction ran, and applies the forward
// breakpoint and data-watch checks against the restored state.
func (rt *Runtime) cycleReverse(params runParams) (yield bool) {
	st := rt.state

	if len(rt.logEntries) == 0 {
		rt.stop(STOP_STEP)
		return true
	}

	entry := rt.logEntries[len(rt.logEntries)-1]
	rt.logEntries = rt.logEntries[:len(rt.logEntries)-1]
	rt.nextLogId = entry.Id
	st.Ip = entry.Address
	st.LastExecuted = entry.Id - 1
	rt.fatalPending = false

	if entry.PushedFrame {
		if len(rt.callStack) > 0 {
			rt.callStack = rt.callStack[:len(rt.callStack)-1]
		} else {
			rt.console(f("call stack underflow while stepping back over address %d", entry.Address))
		}
	}

	ip := entry.Address
	dec, decodeErr := hmmm.Decode(st.MemoryAt(ip))
	if decodeErr != nil {
		// Cannot happen unless the code segment was corrupted; there
		// is nothing left to restore.
		rt.console(f("cannot step back over address %d: not an instruction", ip))
	} else {
		rt.undo(dec, entry)
	}

	if rt.Verbose && decodeErr == nil {
		log.Printf("%3d: %v (reversed)", ip, dec)
	}

	if rt.suppressAddr != ip {
		rt.suppressAddr = -1
	}

	if id, ok := rt.instructionBp[ip]; ok && rt.suppressAddr != ip {
		rt.suppressAddr = ip
		rt.stop(STOP_BREAKPOINT, id)
		return true
	}

	var dataIds []int
	if rt.suppressAddr != ip {
		if id, ok := rt.matchData(SPACE_MEMORY, ip, false); ok {
			dataIds = append(dataIds, id)
		}
		if decodeErr == nil {
			for _, acc := range accesses(dec, st) {
				if id, ok := rt.matchData(acc.Space, acc.Address, acc.Write); ok {
					dataIds = append(dataIds, id)
				}
			}
		}
	}
	if len(dataIds) > 0 {
		rt.suppressAddr = ip
		rt.stop(STOP_DATA_BREAKPOINT, dedupe(dataIds)...)
		return true
	}

	rt.suppressAddr = -1

	if params.single && (params.filter == "" || (decodeErr == nil && dec.Name == params.filter)) {
		rt.stop(STOP_STEP)
		return true
	}
	return false
}

// undo reverses the side effects of one executed instruction. Control
// transfers and output leave nothing to restore; at most one register
// or memory cell takes its logged prior value, and stack pointer moves
// are reversed arithmetically.
func (rt *Runtime) undo(dec hmmm.Decoded, entry LogEntry) {
	st := rt.state
	switch dec.Name {
	case "setn", "addn", "copy", "add", "sub", "neg", "mul", "div",
		"mod", "loadn", "loadr", "read", "calln":
		if entry.HasPrior {
			st.SetRegister(dec.Operand(0), int(entry.Prior))
		}
	case "storen":
		st.SetMemory(dec.Operand(1), int(entry.Prior))
	case "storer":
		st.SetMemory(int(st.Register(dec.Operand(1))), int(entry.Prior))
	case "popr":
		if entry.HasPrior {
			st.SetRegister(dec.Operand(0), int(entry.Prior))
		}
		st.SetRegister(dec.Operand(1), int(st.Register(dec.Operand(1)))+1)
	case "pushr":
		sp := int(st.Register(dec.Operand(1))) - 1
		st.SetRegister(dec.Operand(1), sp)
		st.SetMemory(sp, int(entry.Prior))
	}
}

// raise reports a fatal fault. With a matching exception breakpoint
// armed the session pauses for inspection and ends on the next resume;
// otherwise it ends immediately.
func (rt *Runtime) raise(exc Exception) (yield bool) {
	rt.lastException = &exc
	line := 0
	if l, ok := rt.program.LineFor(exc.Address); ok {
		line = l
	}
	rt.output(exc.Description(), STREAM_STDERR, line)

	if id, ok := rt.exceptionBp[exc.Kind]; ok {
		rt.fatalPending = true
		rt.stop(STOP_EXCEPTION, id)
	} else {
		rt.end()
	}
	return true
}

// raiseMaskable reports a non-fatal fault. Without a matching
// exception breakpoint execution proceeds untouched. With one, the
// session pauses once per visit to the faulting address.
func (rt *Runtime) raiseMaskable(exc Exception) (stopped bool) {
	id, ok := rt.exceptionBp[exc.Kind]
	if !ok {
		return
	}
	if address, damped := rt.damped[exc.Kind]; damped && address == exc.Address {
		return
	}
	rt.damped[exc.Kind] = exc.Address
	rt.lastException = &exc
	rt.suppressAddr = exc.Address
	rt.stop(STOP_EXCEPTION, id)
	stopped = true
	return
}

// ProvideInput completes a pending read instruction and resumes the
// run that was interrupted by it. A non-numeric response ends the
// program, matching an end-of-input condition.
func (rt *Runtime) ProvideInput(text string) {
	if rt.phase != PHASE_AWAITING_INPUT {
		return
	}

	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		rt.end()
		return
	}

	st := rt.state
	ip := st.Ip
	prior := st.Register(rt.readTarget)
	st.SetRegister(rt.readTarget, value)
	st.Ip = ip + 1
	rt.appendLog(LogEntry{Address: ip, Prior: prior, HasPrior: true})
	rt.suppressAddr = -1

	params := runParams{}
	if rt.resumeRun != nil {
		params = *rt.resumeRun
		rt.resumeRun = nil
	}
	rt.phase = PHASE_PAUSED

	if params.single && (params.filter == "" || params.filter == "read") {
		rt.stop(STOP_STEP)
		return
	}
	rt.run(params)
}

func dedupe(ids []int) (out []int) {
	seen := map[int]bool{}
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return
}
