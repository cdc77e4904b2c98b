// Package runner drives a WebAssembly command module through its lifecycle:
//
//	Loaded → Parsed → Instantiated → Running → {Completed, Trapped, Rejected}
//
// Before any guest code runs, the runner enforces the environment's
// structural contract: the module must export a nullary "_start" entry
// function and a linear memory named "memory", and every import must resolve
// against the preview1 host-call table. Violations reject the module with no
// partial execution and no observable side effects.
//
// A run has exactly one outcome: normal completion, a guest-requested exit
// carrying an exit code, or a trap. A trap terminates the whole run and is
// reported as an execution failure, never as a host crash.
package runner
