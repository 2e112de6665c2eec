// Package runtime implements the HMMM execution engine and its debug
// control layer.
//
// A Runtime owns one debug session: the compiled program, the live
// machine state, breakpoint tables, the call stack, and the instruction
// log that enables reverse execution. Execution is single-threaded and
// cooperative; "continue" is an unbounded chain of single steps that
// yields control back to the caller on a pause, breakpoint, exception,
// halt, or input wait. A concurrent Pause request is observed between
// instructions, never mid-instruction.
//
// The engine reports progress through a tagged Event delivered
// synchronously to an optional callback; it has no dependency on any
// editor wire protocol.
package runtime
