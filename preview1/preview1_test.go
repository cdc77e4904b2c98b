package preview1

import (
	"encoding/binary"

	wasishim "github.com/wippyai/wasi-shim"
	"github.com/wippyai/wasi-shim/errors"
)

// fakeMemory is a guest linear memory backed by a plain byte slice. Read
// returns views aliasing the backing array, matching the engine adapter's
// contract. It counts mutations so tests can assert a handler never wrote.
type fakeMemory struct {
	data   []byte
	writes int
}

func newFakeMemory(size int) *fakeMemory {
	return &fakeMemory{data: make([]byte, size)}
}

func (m *fakeMemory) inBounds(offset, length uint32) bool {
	return uint64(offset)+uint64(length) <= uint64(len(m.data))
}

func (m *fakeMemory) Read(offset uint32, length uint32) ([]byte, error) {
	if !m.inBounds(offset, length) {
		return nil, errors.OutOfBounds(offset, length, uint32(len(m.data)))
	}
	return m.data[offset : offset+length], nil
}

func (m *fakeMemory) Write(offset uint32, data []byte) error {
	if !m.inBounds(offset, uint32(len(data))) {
		return errors.OutOfBounds(offset, uint32(len(data)), uint32(len(m.data)))
	}
	m.writes++
	copy(m.data[offset:], data)
	return nil
}

func (m *fakeMemory) ReadU32(offset uint32) (uint32, error) {
	if !m.inBounds(offset, 4) {
		return 0, errors.OutOfBounds(offset, 4, uint32(len(m.data)))
	}
	return binary.LittleEndian.Uint32(m.data[offset:]), nil
}

func (m *fakeMemory) WriteU32(offset uint32, value uint32) error {
	if !m.inBounds(offset, 4) {
		return errors.OutOfBounds(offset, 4, uint32(len(m.data)))
	}
	m.writes++
	binary.LittleEndian.PutUint32(m.data[offset:], value)
	return nil
}

var _ wasishim.Memory = (*fakeMemory)(nil)

// putIOVec writes one encoded iovec at offset.
func (m *fakeMemory) putIOVec(offset, ptr, length uint32) {
	binary.LittleEndian.PutUint32(m.data[offset:], ptr)
	binary.LittleEndian.PutUint32(m.data[offset+4:], length)
}
