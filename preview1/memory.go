package preview1

import (
	"encoding/binary"
	"math"

	wasishim "github.com/wippyai/wasi-shim"
	"github.com/wippyai/wasi-shim/errors"
)

// IOVec is a guest-memory-resident (buffer offset, buffer length) pair.
// The buffer it points at is not validated until it is dereferenced by the
// handler that consumes it.
type IOVec struct {
	Ptr uint32
	Len uint32
}

// iovecSize is the encoded size of one iovec: two little-endian u32 fields.
const iovecSize = 8

// readIOVecs reads a contiguous iovec array out of guest memory. Only the
// array itself is bounds-checked here; each element's buffer is resolved
// lazily at the point of use.
func readIOVecs(mem wasishim.Memory, ptr, count uint32) ([]IOVec, error) {
	total := uint64(count) * iovecSize
	if total > math.MaxUint32 {
		return nil, errors.New(errors.PhaseHost, errors.KindOutOfBounds).
			Detail("iovec array of %d entries overflows address space", count).
			Build()
	}

	raw, err := mem.Read(ptr, uint32(total))
	if err != nil {
		return nil, err
	}

	iovs := make([]IOVec, count)
	for i := range iovs {
		iovs[i] = IOVec{
			Ptr: binary.LittleEndian.Uint32(raw[i*iovecSize:]),
			Len: binary.LittleEndian.Uint32(raw[i*iovecSize+4:]),
		}
	}
	return iovs, nil
}

// resolveBuffers dereferences each iovec into a view of guest memory. The
// views alias guest memory: filling them is how fd_read delivers data, and
// fd_write consumes them in place without copying.
func resolveBuffers(mem wasishim.Memory, iovs []IOVec) ([][]byte, error) {
	bufs := make([][]byte, len(iovs))
	for i, iov := range iovs {
		if iov.Len == 0 {
			bufs[i] = nil
			continue
		}
		buf, err := mem.Read(iov.Ptr, iov.Len)
		if err != nil {
			return nil, err
		}
		bufs[i] = buf
	}
	return bufs, nil
}
