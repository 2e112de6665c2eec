package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterZero(t *testing.T) {
	assert := assert.New(t)

	st := NewState()
	st.SetRegister(0, 42)
	assert.Equal(uint16(0), st.Register(0))

	// Even a direct array write reads back as zero.
	st.Registers[0] = 42
	assert.Equal(uint16(0), st.Register(0))
}

func TestRegisterWrap(t *testing.T) {
	assert := assert.New(t)

	st := NewState()

	table := [](struct {
		name  string
		value int
		want  uint16
	}){
		{"plain", 42, 42},
		{"max", 65535, 65535},
		{"wrap", 65536, 0},
		{"over", 65537, 1},
		{"negative", -1, 0xffff},
		{"negative-wrap", -65537, 0xffff},
	}

	for _, entry := range table {
		st.SetRegister(1, entry.value)
		assert.Equal(entry.want, st.Register(1), entry.name)
	}
}

func TestMemoryModified(t *testing.T) {
	assert := assert.New(t)

	st := NewState()
	assert.Empty(st.Modified)

	st.SetMemory(10, 0x1234)
	assert.Equal(uint16(0x1234), st.MemoryAt(10))
	assert.True(st.Modified[10])
	assert.False(st.Modified[11])
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	st := NewState()
	st.Load([]uint16{0x1105, 0x0000})
	assert.Equal(uint16(0x1105), st.MemoryAt(0))
	assert.Equal(uint16(0x0000), st.MemoryAt(1))

	// Loading is not a tracked modification.
	assert.Empty(st.Modified)
}

func TestSnapshot(t *testing.T) {
	assert := assert.New(t)

	st := NewState()
	st.Ip = 3
	st.SetRegister(1, 7)
	st.SetMemory(10, 99)
	st.LastExecuted = 5

	snap := st.Snapshot()
	assert.True(st.Equal(snap))

	// The snapshot is independent of the live state.
	st.SetRegister(1, 8)
	st.SetMemory(10, 100)
	assert.Equal(uint16(7), snap.Register(1))
	assert.Equal(uint16(99), snap.MemoryAt(10))
	assert.False(st.Equal(snap))
}

func TestEqualIgnoresModified(t *testing.T) {
	assert := assert.New(t)

	a := NewState()
	b := NewState()
	assert.True(a.Equal(b))

	// Writing a cell's existing value changes only the Modified set.
	a.SetMemory(10, 0)
	assert.True(a.Equal(b))

	a.Ip = 1
	assert.False(a.Equal(b))
}

func TestReset(t *testing.T) {
	assert := assert.New(t)

	st := NewState()
	st.Ip = 5
	st.SetRegister(1, 7)
	st.SetMemory(10, 99)
	st.LastExecuted = 3

	st.Reset()
	assert.True(st.Equal(NewState()))
	assert.Equal(-1, st.LastExecuted)
	assert.Empty(st.Modified)
}
