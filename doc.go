// Package wasishim implements a WASI preview1 host-call shim for running
// sandboxed WebAssembly command modules.
//
// The shim sits between two trust domains: an untrusted guest module that can
// only address its own linear memory by integer offsets, and the host process
// that owns real file descriptors, environment state, and process lifecycle.
// Every host call reads typed arguments out of guest memory, validates that
// all accesses stay within bounds, performs the host operation, writes the
// results back at guest-supplied offsets, and returns a WASI errno to the
// guest. A malicious or buggy guest can fail its own run but never corrupt
// host state.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	wasishim/            Root package with the Memory accessor interfaces
//	├── runner/          Module runner state machine and Run entry point
//	├── engine/          Low-level wazero integration (parse, instantiate, execute)
//	├── preview1/        WASI preview1 host-call table, handlers, and errno space
//	├── errors/          Structured error types for diagnostics
//	└── cmd/run/         CLI that loads a module, runs it, and maps the outcome
//	                     to a process exit status
//
// # Quick Start
//
// Run a WASI command module from Go:
//
//	sys := preview1.NewLocalSystem()
//	defer sys.Close()
//
//	r := runner.New(runner.Config{System: sys})
//	outcome, err := r.Run(ctx, wasmBytes, os.Args[1:])
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Exit(outcome.ExitStatus())
//
// # Host Calls
//
// The supported system-call surface is the fixed preview1 subset a minimal
// command module needs: proc_exit, fd_read, fd_write, fd_prestat_get,
// environ_sizes_get, plus permanent ENOSYS stubs for fd_prestat_dir_name and
// environ_get. The table is built once at startup and never mutated after the
// guest module is instantiated.
//
// # Memory Model
//
// Guest linear memory is exclusively owned by its module instance. The shim
// never assumes the memory size is static across calls: every access is
// re-checked against the current size, and an out-of-range access is a hard
// error, never an undefined read or write.
package wasishim
