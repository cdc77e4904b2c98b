package preview1

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	wazerosys "github.com/tetratelabs/wazero/sys"
	"go.uber.org/zap"

	wasishim "github.com/wippyai/wasi-shim"
	"github.com/wippyai/wasi-shim/engine"
	"github.com/wippyai/wasi-shim/errors"
)

// Namespace is the import module name guests use for preview1 system calls.
const Namespace = "wasi_snapshot_preview1"

// Structural contract every command module must satisfy before it runs.
const (
	// EntryFunction is the exported entry point, by convention a function
	// taking no parameters and returning no result.
	EntryFunction = "_start"

	// MemoryExport is the name the guest must export its linear memory under.
	MemoryExport = "memory"
)

// HandlerFunc marshals one host call. It receives the guest's memory accessor
// (nil when the calling module exports none) and the raw argument/result value
// stack, typed per the call's declared signature. Handlers with a result write
// it to stack[0] before returning.
type HandlerFunc func(ctx context.Context, mem wasishim.Memory, stack []uint64)

// HostCall describes one entry of the host-call table: its identity within
// the namespace, its value-type signature, and its handler. Descriptors are
// immutable once the table is built.
type HostCall struct {
	Namespace string
	Name      string
	Params    []api.ValueType
	Results   []api.ValueType
	Fn        HandlerFunc
}

// Module binds the host-call table to a System collaborator. The collaborator
// is an explicit dependency handed to every handler, never ambient state.
type Module struct {
	sys System
}

// NewModule creates the preview1 host module around sys.
func NewModule(sys System) *Module {
	return &Module{sys: sys}
}

var (
	i32    = api.ValueTypeI32
	result = []api.ValueType{api.ValueTypeI32}
)

// HostCalls returns the fixed host-call table. The table is built once at
// startup and is never mutated after the guest module is instantiated.
func (m *Module) HostCalls() []HostCall {
	return []HostCall{
		{Namespace, "proc_exit", []api.ValueType{i32}, nil, m.procExit},
		{Namespace, "fd_read", []api.ValueType{i32, i32, i32, i32}, result, m.fdRead},
		{Namespace, "fd_write", []api.ValueType{i32, i32, i32, i32}, result, m.fdWrite},
		{Namespace, "fd_prestat_get", []api.ValueType{i32, i32}, result, m.fdPrestatGet},
		{Namespace, "fd_prestat_dir_name", []api.ValueType{i32, i32, i32}, result, m.returnNosys},
		{Namespace, "environ_sizes_get", []api.ValueType{i32, i32}, result, m.environSizesGet},
		{Namespace, "environ_get", []api.ValueType{i32, i32}, result, m.returnNosys},
	}
}

// Instantiate registers the host-call table with the runtime so that guest
// imports resolve against it by exact (namespace, name) match.
func (m *Module) Instantiate(ctx context.Context, r wazero.Runtime) (api.Module, error) {
	if m.sys == nil {
		return nil, errors.NotInitialized("system interface")
	}

	builder := r.NewHostModuleBuilder(Namespace)
	seen := make(map[string]struct{})
	for _, call := range m.HostCalls() {
		if _, dup := seen[call.Name]; dup {
			return nil, errors.New(errors.PhaseHost, errors.KindInvalidInput).
				Detail("duplicate host call %q", call.Name).
				Build()
		}
		seen[call.Name] = struct{}{}

		builder = builder.NewFunctionBuilder().
			WithGoModuleFunction(goFunc(call.Fn), call.Params, call.Results).
			Export(call.Name)
		engine.Logger().Debug("host call registered",
			zap.String("namespace", call.Namespace),
			zap.String("name", call.Name))
	}
	return builder.Instantiate(ctx)
}

// goFunc adapts a HandlerFunc to wazero's raw host-function shape, resolving
// the calling module's memory fresh on every invocation.
func goFunc(fn HandlerFunc) api.GoModuleFunc {
	return func(ctx context.Context, mod api.Module, stack []uint64) {
		var mem wasishim.Memory
		if wrapped := engine.WrapMemory(mod.Memory()); wrapped != nil {
			mem = wrapped
		}
		fn(ctx, mem, stack)
	}
}

// procExit terminates execution with the guest-supplied exit code. It never
// returns control to the guest: the exit unwinds the interpreter as a
// process-exit outcome, which the runner treats as a distinct terminal
// transition rather than a trap.
func (m *Module) procExit(_ context.Context, _ wasishim.Memory, stack []uint64) {
	code := uint32(stack[0])
	m.sys.Terminate(code)
	panic(wazerosys.NewExitError(code))
}

// returnNosys is the fallback for capabilities this embedding does not
// implement. It performs no I/O and never writes through output pointers.
func (m *Module) returnNosys(_ context.Context, _ wasishim.Memory, stack []uint64) {
	stack[0] = uint64(ErrnoNosys)
}

func (m *Module) fdRead(_ context.Context, mem wasishim.Memory, stack []uint64) {
	fd := uint32(stack[0])
	iovPtr := uint32(stack[1])
	iovCnt := uint32(stack[2])
	nreadPtr := uint32(stack[3])

	bufs, ok := m.resolveIOVecArray(mem, iovPtr, iovCnt, stack)
	if !ok {
		return
	}

	n, errno := m.sys.FdRead(fd, bufs)
	if errno == ErrnoSuccess {
		if err := mem.WriteU32(nreadPtr, n); err != nil {
			stack[0] = uint64(ErrnoFault)
			return
		}
	}
	stack[0] = uint64(errno)
}

func (m *Module) fdWrite(_ context.Context, mem wasishim.Memory, stack []uint64) {
	fd := uint32(stack[0])
	iovPtr := uint32(stack[1])
	iovCnt := uint32(stack[2])
	nwrittenPtr := uint32(stack[3])

	bufs, ok := m.resolveIOVecArray(mem, iovPtr, iovCnt, stack)
	if !ok {
		return
	}

	n, errno := m.sys.FdWrite(fd, bufs)
	if errno == ErrnoSuccess {
		if err := mem.WriteU32(nwrittenPtr, n); err != nil {
			stack[0] = uint64(ErrnoFault)
			return
		}
	}
	stack[0] = uint64(errno)
}

func (m *Module) fdPrestatGet(_ context.Context, mem wasishim.Memory, stack []uint64) {
	fd := uint32(stack[0])
	prestatPtr := uint32(stack[1])

	if mem == nil {
		stack[0] = uint64(ErrnoFault)
		return
	}

	prestat, errno := m.sys.FdPrestatGet(fd)
	if errno == ErrnoSuccess {
		if mem.WriteU32(prestatPtr, uint32(prestat.Tag)) != nil ||
			mem.WriteU32(prestatPtr+4, prestat.NameLen) != nil {
			stack[0] = uint64(ErrnoFault)
			return
		}
	}
	stack[0] = uint64(errno)
}

func (m *Module) environSizesGet(_ context.Context, mem wasishim.Memory, stack []uint64) {
	countPtr := uint32(stack[0])
	bufSizePtr := uint32(stack[1])

	if mem == nil {
		stack[0] = uint64(ErrnoFault)
		return
	}

	count, bufSize, errno := m.sys.EnvironSizes()
	if errno == ErrnoSuccess {
		if mem.WriteU32(countPtr, count) != nil ||
			mem.WriteU32(bufSizePtr, bufSize) != nil {
			stack[0] = uint64(ErrnoFault)
			return
		}
	}
	stack[0] = uint64(errno)
}

// resolveIOVecArray reads and dereferences an iovec array, writing ErrnoFault
// to the result slot on any accessor failure. The bool reports success.
func (m *Module) resolveIOVecArray(mem wasishim.Memory, ptr, count uint32, stack []uint64) ([][]byte, bool) {
	if mem == nil {
		stack[0] = uint64(ErrnoFault)
		return nil, false
	}
	iovs, err := readIOVecs(mem, ptr, count)
	if err != nil {
		stack[0] = uint64(ErrnoFault)
		return nil, false
	}
	bufs, err := resolveBuffers(mem, iovs)
	if err != nil {
		stack[0] = uint64(ErrnoFault)
		return nil, false
	}
	return bufs, true
}
