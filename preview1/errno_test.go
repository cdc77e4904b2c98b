package preview1

import (
	"strings"
	"testing"
)

func TestErrno_String(t *testing.T) {
	tests := []struct {
		errno Errno
		name  string
		msg   string
	}{
		{ErrnoSuccess, "success", "no error occurred"},
		{ErrnoBadf, "badf", "bad file descriptor"},
		{ErrnoFault, "fault", "bad address"},
		{ErrnoNosys, "nosys", "function not supported"},
		{ErrnoNotcapable, "notcapable", "capabilities insufficient"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.errno.Name(); got != tt.name {
				t.Errorf("Name() = %q, want %q", got, tt.name)
			}
			if got := tt.errno.String(); !strings.Contains(got, tt.msg) {
				t.Errorf("String() = %q, want substring %q", got, tt.msg)
			}
		})
	}
}

func TestErrno_FullTable(t *testing.T) {
	// Every errno in the preview1 space has a distinct name and a message.
	seen := make(map[string]Errno)
	for e := ErrnoSuccess; e <= ErrnoNotcapable; e++ {
		name := e.Name()
		if name == "" || strings.HasPrefix(name, "errno(") {
			t.Errorf("errno %d has no name", e)
		}
		if prev, dup := seen[name]; dup {
			t.Errorf("errno %d and %d share name %q", prev, e, name)
		}
		seen[name] = e
		if !strings.Contains(e.String(), ": ") {
			t.Errorf("errno %d has no message: %q", e, e.String())
		}
	}
}

func TestErrno_Unknown(t *testing.T) {
	e := Errno(9999)
	if got := e.Name(); got != "errno(9999)" {
		t.Errorf("Name() = %q", got)
	}
	if got := e.String(); !strings.Contains(got, "unknown error") {
		t.Errorf("String() = %q", got)
	}
}
