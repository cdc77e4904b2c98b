package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseInstantiate,
				Kind:   KindBadSignature,
				Export: "_start",
				Detail: "entry function must take no parameters",
			},
			contains: []string{"[instantiate]", "bad_signature", "_start", "no parameters"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseHost,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[host]", "out_of_bounds"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseParse,
				Kind:   KindMalformedBinary,
				Detail: "decode module",
				Cause:  errors.New("unexpected end of binary"),
			},
			contains: []string{"[parse]", "malformed_binary", "decode module", "caused by", "unexpected end"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Malformed("decode module", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find cause through wrapping")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := MissingExport("_start")

	if !errors.Is(err, &Error{Phase: PhaseInstantiate, Kind: KindMissingExport}) {
		t.Error("Is should match same phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseRun, Kind: KindMissingExport}) {
		t.Error("Is should not match different phase")
	}
	if errors.Is(err, &Error{Phase: PhaseInstantiate, Kind: KindBadSignature}) {
		t.Error("Is should not match different kind")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseInstantiate, KindBadSignature).
		Export("_start").
		Detail("unexpected %d results", 1).
		Build()

	if err.Phase != PhaseInstantiate || err.Kind != KindBadSignature {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.Export != "_start" {
		t.Errorf("unexpected export: %q", err.Export)
	}
	if err.Detail != "unexpected 1 results" {
		t.Errorf("unexpected detail: %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want Kind
	}{
		{"load", Load("read file", errors.New("no such file")), KindInvalidInput},
		{"malformed", Malformed("decode", nil), KindMalformedBinary},
		{"instantiation", Instantiation(errors.New("unknown import")), KindMissingImport},
		{"missing export", MissingExport("memory"), KindMissingExport},
		{"bad signature", BadSignature("_start", "has results"), KindBadSignature},
		{"memory limit", MemoryLimit(256, nil), KindMemoryLimit},
		{"out of bounds", OutOfBounds(65530, 16, 65536), KindOutOfBounds},
		{"not initialized", NotInitialized("system interface"), KindNotInitialized},
		{"trap", Trap(errors.New("unreachable")), KindTrap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.want {
				t.Errorf("kind = %s, want %s", tt.err.Kind, tt.want)
			}
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}
