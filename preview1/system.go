package preview1

// PrestatDir tags a prestat record as a preopened directory. It is the only
// prestat variant preview1 defines.
const PrestatDir uint8 = 0

// Prestat describes a preopened capability handle as reported by
// fd_prestat_get. NameLen is the byte length of the preopen's path, which a
// guest would pass as the buffer size for a later fd_prestat_dir_name call.
type Prestat struct {
	Tag     uint8
	NameLen uint32
}

// System is the syscall-emulation collaborator behind the host-call handlers.
// It owns the actual file descriptor, environment, and lifecycle semantics;
// the handlers only marshal between guest memory and these operations.
//
// Buffer slices passed to FdRead and FdWrite alias guest memory and are only
// valid for the duration of the call.
//
// Implementations return errnos from the preview1 space and must not panic on
// hostile input: an unknown fd is ErrnoBadf, not a crash.
type System interface {
	// Init prepares the system interface for a run with the given process
	// arguments. It is called once, before any guest code executes.
	Init(args []string) Errno

	// FdRead reads into bufs in order and returns the total bytes read.
	FdRead(fd uint32, bufs [][]byte) (uint32, Errno)

	// FdWrite writes bufs in order and returns the total bytes written.
	FdWrite(fd uint32, bufs [][]byte) (uint32, Errno)

	// FdPrestatGet reports whether fd is a preopened directory handle.
	FdPrestatGet(fd uint32) (Prestat, Errno)

	// EnvironSizes reports the number of environment variables and the total
	// byte size needed to store them, including one NUL terminator per entry.
	EnvironSizes() (count uint32, bufSize uint32, errno Errno)

	// Terminate notifies the system of a guest-requested exit. It must not
	// block; control never returns to the guest afterwards.
	Terminate(code uint32)

	// Close releases any resources held by the system interface.
	Close() error
}
