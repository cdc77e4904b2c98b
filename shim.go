package wasishim

// Memory is bounds-checked access to a guest's linear memory. Offsets are
// relative to the start of the memory and all accesses are validated against
// the current memory size at the point of use.
//
// Read returns a view that aliases guest memory: writes through the returned
// slice are visible to the guest. The view is only valid until the guest next
// runs, since guest code may grow its memory.
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
	ReadU32(offset uint32) (uint32, error)
	WriteU32(offset uint32, value uint32) error
}

// MemorySizer provides the current size of guest linear memory in bytes.
type MemorySizer interface {
	Size() uint32
}
