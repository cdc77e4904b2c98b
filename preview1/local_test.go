package preview1

import (
	"bytes"
	"strings"
	"testing"
)

func initLocal(t *testing.T, opts ...LocalOption) *LocalSystem {
	t.Helper()
	s := NewLocalSystem(opts...)
	if errno := s.Init([]string{"prog.wasm", "arg1"}); errno != ErrnoSuccess {
		t.Fatalf("Init: %s", errno)
	}
	return s
}

func TestLocalSystem_Init(t *testing.T) {
	s := NewLocalSystem()
	if errno := s.Init([]string{"a", "b"}); errno != ErrnoSuccess {
		t.Fatalf("Init: %s", errno)
	}
	if got := s.Args(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Args() = %v", got)
	}
}

func TestLocalSystem_RequiresInit(t *testing.T) {
	s := NewLocalSystem(WithStdout(&bytes.Buffer{}))
	if _, errno := s.FdWrite(FdStdout, [][]byte{[]byte("x")}); errno == ErrnoSuccess {
		t.Error("FdWrite before Init succeeded")
	}
}

func TestLocalSystem_FdWrite(t *testing.T) {
	var stdout, stderr bytes.Buffer
	s := initLocal(t, WithStdout(&stdout), WithStderr(&stderr))

	n, errno := s.FdWrite(FdStdout, [][]byte{[]byte("out"), []byte("put")})
	if errno != ErrnoSuccess || n != 6 {
		t.Fatalf("FdWrite stdout = (%d, %s)", n, errno)
	}
	n, errno = s.FdWrite(FdStderr, [][]byte{[]byte("err")})
	if errno != ErrnoSuccess || n != 3 {
		t.Fatalf("FdWrite stderr = (%d, %s)", n, errno)
	}

	if stdout.String() != "output" || stderr.String() != "err" {
		t.Errorf("streams = %q / %q", stdout.String(), stderr.String())
	}

	if _, errno := s.FdWrite(FdStdin, nil); errno != ErrnoBadf {
		t.Errorf("write to stdin: %s, want badf", errno)
	}
}

func TestLocalSystem_FdRead(t *testing.T) {
	s := initLocal(t, WithStdin(strings.NewReader("hello")))

	buf := make([]byte, 3)
	n, errno := s.FdRead(FdStdin, [][]byte{buf})
	if errno != ErrnoSuccess || n != 3 || string(buf) != "hel" {
		t.Fatalf("first read = (%d, %s, %q)", n, errno, buf)
	}

	rest := make([]byte, 8)
	n, errno = s.FdRead(FdStdin, [][]byte{rest})
	if errno != ErrnoSuccess || n != 2 || string(rest[:n]) != "lo" {
		t.Fatalf("second read = (%d, %s, %q)", n, errno, rest[:n])
	}

	// EOF reads zero bytes with success, preview1 convention.
	n, errno = s.FdRead(FdStdin, [][]byte{make([]byte, 4)})
	if errno != ErrnoSuccess || n != 0 {
		t.Fatalf("read at EOF = (%d, %s)", n, errno)
	}

	if _, errno := s.FdRead(FdStdout, nil); errno != ErrnoBadf {
		t.Errorf("read from stdout: %s, want badf", errno)
	}
}

func TestLocalSystem_Prestat(t *testing.T) {
	s := initLocal(t, WithPreopens([]string{"/data", "/tmp/work"}))

	prestat, errno := s.FdPrestatGet(FdPreopenStart + 1)
	if errno != ErrnoSuccess {
		t.Fatalf("FdPrestatGet: %s", errno)
	}
	if prestat.Tag != PrestatDir || prestat.NameLen != uint32(len("/tmp/work")) {
		t.Errorf("prestat = %+v", prestat)
	}

	if _, errno := s.FdPrestatGet(FdPreopenStart + 2); errno != ErrnoBadf {
		t.Errorf("past end: %s, want badf", errno)
	}
	if _, errno := s.FdPrestatGet(FdStdout); errno != ErrnoBadf {
		t.Errorf("stdio fd: %s, want badf", errno)
	}
}

func TestLocalSystem_EnvironSizes(t *testing.T) {
	tests := []struct {
		name    string
		environ []string
		count   uint32
		size    uint32
	}{
		{"empty", nil, 0, 0},
		{"one", []string{"K=V"}, 1, 4},
		{"several", []string{"A=1", "BB=22", "CCC=333"}, 3, 4 + 6 + 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := initLocal(t, WithEnviron(tt.environ))
			count, size, errno := s.EnvironSizes()
			if errno != ErrnoSuccess {
				t.Fatalf("EnvironSizes: %s", errno)
			}
			if count != tt.count || size != tt.size {
				t.Errorf("sizes = (%d, %d), want (%d, %d)", count, size, tt.count, tt.size)
			}
		})
	}
}

func TestLocalSystem_Terminate(t *testing.T) {
	s := initLocal(t)
	if _, ok := s.Exited(); ok {
		t.Fatal("fresh system reports exited")
	}
	s.Terminate(42)
	if code, ok := s.Exited(); !ok || code != 42 {
		t.Errorf("Exited() = (%d, %v)", code, ok)
	}
}
