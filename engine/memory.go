package engine

import (
	"github.com/tetratelabs/wazero/api"

	wasishim "github.com/wippyai/wasi-shim"
	"github.com/wippyai/wasi-shim/errors"
)

// Memory adapts wazero linear memory to the wasishim.Memory accessor.
// Every access is validated against the memory's current size; the guest may
// have grown its memory between host calls.
type Memory struct {
	mem api.Memory
}

// WrapMemory wraps a wazero memory. Returns nil if mem is nil.
func WrapMemory(mem api.Memory) *Memory {
	if mem == nil {
		return nil
	}
	return &Memory{mem: mem}
}

// Read returns a view of guest memory aliasing the underlying buffer.
// Writes through the view are visible to the guest.
func (m *Memory) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, errors.OutOfBounds(offset, length, m.mem.Size())
	}
	return data, nil
}

func (m *Memory) Write(offset uint32, data []byte) error {
	if !m.mem.Write(offset, data) {
		return errors.OutOfBounds(offset, uint32(len(data)), m.mem.Size())
	}
	return nil
}

func (m *Memory) ReadU32(offset uint32) (uint32, error) {
	val, ok := m.mem.ReadUint32Le(offset)
	if !ok {
		return 0, errors.OutOfBounds(offset, 4, m.mem.Size())
	}
	return val, nil
}

func (m *Memory) WriteU32(offset uint32, value uint32) error {
	if !m.mem.WriteUint32Le(offset, value) {
		return errors.OutOfBounds(offset, 4, m.mem.Size())
	}
	return nil
}

// Size returns the current memory size in bytes.
func (m *Memory) Size() uint32 {
	return m.mem.Size()
}

// Compile-time check that Memory implements wasishim.Memory and MemorySizer
var _ wasishim.Memory = (*Memory)(nil)
var _ wasishim.MemorySizer = (*Memory)(nil)
