package runtime

// LogEntry is the minimal undo record for one executed instruction.
// The full pre-state is recoverable by re-decoding the word at Address
// in the restored machine: at most one register or memory cell carries
// a value the instruction destroyed, and that value is Prior. Stack
// pointer moves (popr, pushr) are reversed arithmetically.
type LogEntry struct {
	Id          int
	Address     int
	Prior       uint16
	HasPrior    bool
	PushedFrame bool
}

func (rt *Runtime) appendLog(entry LogEntry) {
	entry.Id = rt.nextLogId
	rt.nextLogId++
	rt.state.LastExecuted = entry.Id

	if !rt.config.Reverse {
		return
	}
	if len(rt.logEntries) >= rt.config.LogLimit {
		if !rt.warnedLogDrop {
			rt.console(f("instruction log limit %d reached; oldest entries will be dropped and stepping back past them will not be possible", rt.config.LogLimit))
			rt.warnedLogDrop = true
		}
		rt.logEntries = append(rt.logEntries[:0], rt.logEntries[1:]...)
	}
	rt.logEntries = append(rt.logEntries, entry)
}

// truncateLog discards entries newer than lastId, realigning the log
// with a restored snapshot.
func (rt *Runtime) truncateLog(lastId int) {
	for len(rt.logEntries) > 0 && rt.logEntries[len(rt.logEntries)-1].Id > lastId {
		rt.logEntries = rt.logEntries[:len(rt.logEntries)-1]
	}
	rt.nextLogId = lastId + 1
}
