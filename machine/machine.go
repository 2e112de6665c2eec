// Package machine models the HMMM machine state: the instruction
// pointer, 16 registers, and 256 words of unified memory.
//
// Register 0 always reads as zero and silently rejects writes. All
// register and memory writes truncate to 16 bits. Memory writes record
// the address in the modified set, which exists for display and
// diagnostics only and carries no execution semantics.
package machine

import (
	"fmt"
	"iter"
	"maps"
)

const (
	NUM_REGISTERS = 16  // r0..r15; r0 hardwired to zero.
	MEMORY_SIZE   = 256 // Unified code/data memory, in words.
)

var _machine_defines = map[string]string{
	"NUM_REGISTERS": fmt.Sprintf("%d", NUM_REGISTERS),
	"MEMORY_SIZE":   fmt.Sprintf("%d", MEMORY_SIZE),
}

// Defines returns the machine constants as assembler predefines.
func Defines() iter.Seq2[string, string] {
	return maps.All(_machine_defines)
}

// State is a complete HMMM machine state. The live state of a session
// is mutated in place by every executed instruction; Snapshot produces
// frozen deep copies for call-stack frames and frame restart.
type State struct {
	Ip        int
	Registers [NUM_REGISTERS]uint16
	Memory    [MEMORY_SIZE]uint16

	// Modified holds every memory address written since the last reset.
	Modified map[int]bool

	// LastExecuted is the id of the most recently executed instruction
	// log entry, -1 before any instruction runs. Frame restart uses it
	// to truncate the log.
	LastExecuted int
}

// NewState creates a zeroed machine state.
func NewState() (st *State) {
	st = &State{
		Modified:     map[int]bool{},
		LastExecuted: -1,
	}
	return
}

// Reset returns the state to power-on: everything zero, nothing
// modified, no instruction executed.
func (st *State) Reset() {
	st.Ip = 0
	clear(st.Registers[:])
	clear(st.Memory[:])
	st.Modified = map[int]bool{}
	st.LastExecuted = -1
}

// Register reads a register. Register 0 always reads as zero.
func (st *State) Register(reg int) uint16 {
	if reg == 0 {
		return 0
	}
	return st.Registers[reg]
}

// SetRegister writes a register, truncating the value to 16 bits.
// Writes to register 0 are silently ignored.
func (st *State) SetRegister(reg int, value int) {
	if reg == 0 {
		return
	}
	st.Registers[reg] = uint16(value)
}

// MemoryAt reads a memory cell. The caller is responsible for range
// checking; execution validates every address before touching it.
func (st *State) MemoryAt(addr int) uint16 {
	return st.Memory[addr]
}

// SetMemory writes a memory cell, truncating the value to 16 bits and
// recording the address as modified.
func (st *State) SetMemory(addr int, value int) {
	st.Memory[addr] = uint16(value)
	st.Modified[addr] = true
}

// Load copies a program image into the bottom of memory.
func (st *State) Load(words []uint16) {
	copy(st.Memory[:], words)
}

// Snapshot produces an independent deep copy of the state. Later
// mutation of the live state never changes a captured snapshot.
func (st *State) Snapshot() (snap *State) {
	snap = &State{}
	*snap = *st
	snap.Modified = maps.Clone(st.Modified)
	return
}

// Equal reports bit-identical equality of two states, ignoring the
// display-only modified set.
func (st *State) Equal(other *State) bool {
	return st.Ip == other.Ip &&
		st.Registers == other.Registers &&
		st.Memory == other.Memory
}
