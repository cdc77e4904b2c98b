package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the module lifecycle the error occurred
type Phase string

const (
	PhaseLoad        Phase = "load"        // reading the binary
	PhaseInit        Phase = "init"        // system interface setup
	PhaseParse       Phase = "parse"       // binary decoding and validation
	PhaseInstantiate Phase = "instantiate" // import resolution and memory binding
	PhaseRun         Phase = "run"         // guest execution
	PhaseHost        Phase = "host"        // host-call marshaling
)

// Kind categorizes the error
type Kind string

const (
	KindMalformedBinary Kind = "malformed_binary"
	KindMissingImport   Kind = "missing_import"
	KindMissingExport   Kind = "missing_export"
	KindBadSignature    Kind = "bad_signature"
	KindMemoryLimit     Kind = "memory_limit"
	KindOutOfBounds     Kind = "out_of_bounds"
	KindNotInitialized  Kind = "not_initialized"
	KindInvalidInput    Kind = "invalid_input"
	KindTrap            Kind = "trap"
)

// Error is the structured error type used throughout the shim
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Export string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Export != "" {
		b.WriteString(" at export ")
		b.WriteString(e.Export)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Export sets the export name the error refers to
func (b *Builder) Export(name string) *Builder {
	b.err.Export = name
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Load creates a binary loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidInput,
		Detail: detail,
		Cause:  cause,
	}
}

// Malformed creates a malformed-binary error
func Malformed(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindMalformedBinary,
		Detail: detail,
		Cause:  cause,
	}
}

// Instantiation creates an instantiation error
func Instantiation(cause error) *Error {
	return &Error{
		Phase:  PhaseInstantiate,
		Kind:   KindMissingImport,
		Detail: "instantiate module",
		Cause:  cause,
	}
}

// MissingExport creates a missing-export error
func MissingExport(name string) *Error {
	return &Error{
		Phase:  PhaseInstantiate,
		Kind:   KindMissingExport,
		Export: name,
		Detail: fmt.Sprintf("export %q not found", name),
	}
}

// BadSignature creates a structural-contract error for a wrongly typed export
func BadSignature(name, detail string) *Error {
	return &Error{
		Phase:  PhaseInstantiate,
		Kind:   KindBadSignature,
		Export: name,
		Detail: detail,
	}
}

// MemoryLimit creates a memory-limit error
func MemoryLimit(pages uint32, cause error) *Error {
	return &Error{
		Phase:  PhaseInstantiate,
		Kind:   KindMemoryLimit,
		Detail: fmt.Sprintf("guest memory exceeds limit of %d pages", pages),
		Cause:  cause,
	}
}

// OutOfBounds creates an out-of-bounds memory access error
func OutOfBounds(offset, length, size uint32) *Error {
	return &Error{
		Phase:  PhaseHost,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("access at offset %d length %d exceeds memory size %d", offset, length, size),
	}
}

// NotInitialized creates a not-initialized error for a missing collaborator
func NotInitialized(component string) *Error {
	return &Error{
		Phase:  PhaseInit,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Trap wraps an abnormal interpreter termination
func Trap(cause error) *Error {
	return &Error{
		Phase:  PhaseRun,
		Kind:   KindTrap,
		Detail: "execution aborted with WebAssembly trap",
		Cause:  cause,
	}
}
