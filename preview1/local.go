package preview1

import (
	"io"
	"os"
)

// Standard preview1 file descriptor assignments. Preopened directories are
// numbered from FdPreopenStart upwards.
const (
	FdStdin  uint32 = 0
	FdStdout uint32 = 1
	FdStderr uint32 = 2

	FdPreopenStart uint32 = 3
)

// LocalSystem implements System against the host process: stdio streams,
// the process environment, and a fixed list of preopened directory names.
// Use option functions to substitute any of these, which the CLI does for
// flags and tests do for captured buffers.
type LocalSystem struct {
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	environ  []string
	preopens []string
	args     []string

	initialized bool
	exitCode    uint32
	exited      bool
}

// LocalOption configures a LocalSystem.
type LocalOption func(*LocalSystem)

// WithStdin substitutes the stream behind fd 0.
func WithStdin(r io.Reader) LocalOption {
	return func(s *LocalSystem) { s.stdin = r }
}

// WithStdout substitutes the stream behind fd 1.
func WithStdout(w io.Writer) LocalOption {
	return func(s *LocalSystem) { s.stdout = w }
}

// WithStderr substitutes the stream behind fd 2.
func WithStderr(w io.Writer) LocalOption {
	return func(s *LocalSystem) { s.stderr = w }
}

// WithEnviron sets the environment as "KEY=VALUE" entries, replacing the
// inherited process environment.
func WithEnviron(environ []string) LocalOption {
	return func(s *LocalSystem) { s.environ = environ }
}

// WithPreopens sets the preopened directory paths, assigned file descriptors
// from FdPreopenStart in order.
func WithPreopens(paths []string) LocalOption {
	return func(s *LocalSystem) { s.preopens = paths }
}

// NewLocalSystem creates a host-backed system interface. By default it uses
// the process stdio streams, inherits the process environment, and has no
// preopens.
func NewLocalSystem(opts ...LocalOption) *LocalSystem {
	s := &LocalSystem{
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		environ: os.Environ(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LocalSystem) Init(args []string) Errno {
	s.args = append([]string(nil), args...)
	s.initialized = true
	return ErrnoSuccess
}

// Args returns the process arguments recorded by Init.
func (s *LocalSystem) Args() []string {
	return s.args
}

func (s *LocalSystem) FdRead(fd uint32, bufs [][]byte) (uint32, Errno) {
	if !s.initialized {
		return 0, ErrnoInval
	}
	if fd != FdStdin {
		return 0, ErrnoBadf
	}

	var total uint32
	for _, buf := range bufs {
		if len(buf) == 0 {
			continue
		}
		n, err := s.stdin.Read(buf)
		total += uint32(n)
		if err == io.EOF {
			return total, ErrnoSuccess
		}
		if err != nil {
			return total, ErrnoIo
		}
		// Short read: report what we have, like readv.
		if n < len(buf) {
			return total, ErrnoSuccess
		}
	}
	return total, ErrnoSuccess
}

func (s *LocalSystem) FdWrite(fd uint32, bufs [][]byte) (uint32, Errno) {
	if !s.initialized {
		return 0, ErrnoInval
	}

	var w io.Writer
	switch fd {
	case FdStdout:
		w = s.stdout
	case FdStderr:
		w = s.stderr
	default:
		return 0, ErrnoBadf
	}

	var total uint32
	for _, buf := range bufs {
		n, err := w.Write(buf)
		total += uint32(n)
		if err != nil {
			return total, ErrnoIo
		}
	}
	return total, ErrnoSuccess
}

func (s *LocalSystem) FdPrestatGet(fd uint32) (Prestat, Errno) {
	if fd < FdPreopenStart {
		return Prestat{}, ErrnoBadf
	}
	idx := fd - FdPreopenStart
	if uint64(idx) >= uint64(len(s.preopens)) {
		return Prestat{}, ErrnoBadf
	}
	return Prestat{
		Tag:     PrestatDir,
		NameLen: uint32(len(s.preopens[idx])),
	}, ErrnoSuccess
}

func (s *LocalSystem) EnvironSizes() (uint32, uint32, Errno) {
	var bufSize uint32
	for _, kv := range s.environ {
		bufSize += uint32(len(kv)) + 1 // NUL terminator per entry
	}
	return uint32(len(s.environ)), bufSize, ErrnoSuccess
}

func (s *LocalSystem) Terminate(code uint32) {
	s.exitCode = code
	s.exited = true
}

// Exited reports whether the guest requested termination, and with what code.
func (s *LocalSystem) Exited() (uint32, bool) {
	return s.exitCode, s.exited
}

func (s *LocalSystem) Close() error {
	// The streams are borrowed from the host process, nothing to release.
	return nil
}

var _ System = (*LocalSystem)(nil)
