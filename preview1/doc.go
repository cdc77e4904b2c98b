// Package preview1 implements the WASI preview1 host-call surface of the shim.
//
// The package defines the fixed host-call table for the
// wasi_snapshot_preview1 namespace, the marshaling handlers that move typed
// arguments and results across the guest memory boundary, the full preview1
// errno space, and the System interface the handlers delegate actual I/O and
// environment semantics to.
//
// # Host-Call Protocol
//
// Every handler other than proc_exit and the ENOSYS stubs follows the same
// four-step protocol:
//
//  1. Extract scalar arguments from the raw value stack. The interpreter has
//     already checked them against the declared signature.
//  2. Resolve pointer-bearing arguments to host-usable buffers through the
//     bounds-checked memory accessor.
//  3. Invoke exactly one operation on the System collaborator.
//  4. Write byte counts or result structures back at the caller-supplied
//     output offsets and return the errno as the call's single result.
//
// proc_exit never returns to the guest: it unwinds the interpreter with the
// guest's exit code as a process-exit outcome. The two stub calls,
// fd_prestat_dir_name and environ_get, unconditionally return ErrnoNosys and
// never write through their output pointers; they keep ABI compatibility with
// guests that probe for the full preview1 surface.
//
// # System Collaborator
//
// The shim does not implement filesystem or environment semantics. Handlers
// forward resolved buffers to a System implementation handed to NewModule;
// LocalSystem is the host-process-backed implementation used by the CLI.
package preview1
