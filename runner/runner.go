package runner

import (
	"context"
	stderrors "errors"

	wazerosys "github.com/tetratelabs/wazero/sys"
	"go.uber.org/zap"

	"github.com/wippyai/wasi-shim/engine"
	"github.com/wippyai/wasi-shim/errors"
	"github.com/wippyai/wasi-shim/preview1"
)

// Config holds configuration for a Runner.
type Config struct {
	// System is the syscall-emulation collaborator handed to every host call.
	// Nil means a default LocalSystem backed by the host process.
	System preview1.System

	// MaxMemoryPages caps guest memory in 64 KiB pages.
	// 0 means engine.DefaultMaxMemoryPages.
	MaxMemoryPages uint32

	// Logger receives state-transition diagnostics. Nil means no logging.
	Logger *zap.Logger
}

// Runner executes one command module at a time. It is not safe for concurrent
// use; create one Runner per run or synchronize externally.
type Runner struct {
	cfg   Config
	log   *zap.Logger
	state State
}

// New creates a runner with the given configuration.
func New(cfg Config) *Runner {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{cfg: cfg, log: log}
}

// State returns the lifecycle stage the last Run reached.
func (r *Runner) State() State {
	return r.state
}

func (r *Runner) transition(s State) {
	r.log.Debug("state transition",
		zap.Stringer("from", r.state),
		zap.Stringer("to", s))
	r.state = s
}

func (r *Runner) reject(err error) (Outcome, error) {
	r.transition(StateRejected)
	return Outcome{}, err
}

// Run drives binary from raw bytes to a terminal outcome. args are the guest
// process arguments, argv[0] included. Structural-contract violations and
// malformed binaries reject the module before any guest code runs; a non-nil
// error with Outcome.Kind == OutcomeTrapped reports an execution failure.
func (r *Runner) Run(ctx context.Context, binary []byte, args []string) (Outcome, error) {
	r.state = StateLoaded

	system := r.cfg.System
	if system == nil {
		system = preview1.NewLocalSystem()
		defer system.Close()
	}

	if errno := system.Init(args); errno != preview1.ErrnoSuccess {
		return r.reject(errors.New(errors.PhaseInit, errors.KindNotInitialized).
			Detail("failed to initialise system interface: %s", errno).
			Build())
	}

	eng := engine.New(ctx, &engine.Config{MaxMemoryPages: r.cfg.MaxMemoryPages})
	defer eng.Close(ctx)

	// The host-call table must exist before import resolution.
	if _, err := preview1.NewModule(system).Instantiate(ctx, eng.Runtime()); err != nil {
		return r.reject(err)
	}

	compiled, err := eng.Compile(ctx, binary)
	if err != nil {
		return r.reject(err)
	}
	r.transition(StateParsed)

	instance, err := eng.Instantiate(ctx, compiled)
	if err != nil {
		return r.reject(err)
	}
	r.transition(StateInstantiated)

	entry := instance.ExportedFunction(preview1.EntryFunction)
	if entry == nil {
		return r.reject(errors.MissingExport(preview1.EntryFunction))
	}
	def := entry.Definition()
	if len(def.ParamTypes()) != 0 || len(def.ResultTypes()) != 0 {
		return r.reject(errors.BadSignature(preview1.EntryFunction,
			"entry function must take no parameters and return no result"))
	}
	if instance.ExportedMemory(preview1.MemoryExport) == nil {
		return r.reject(errors.MissingExport(preview1.MemoryExport))
	}

	r.transition(StateRunning)
	_, err = entry.Call(ctx)

	switch {
	case err == nil:
		r.transition(StateCompleted)
		return Outcome{Kind: OutcomeCompleted}, nil

	default:
		var exitErr *wazerosys.ExitError
		if stderrors.As(err, &exitErr) {
			// Guest-requested exit bypasses the normal return-value check.
			r.transition(StateCompleted)
			r.log.Debug("guest requested exit", zap.Uint32("code", exitErr.ExitCode()))
			return Outcome{Kind: OutcomeExited, ExitCode: exitErr.ExitCode()}, nil
		}

		r.transition(StateTrapped)
		trap := errors.Trap(err)
		return Outcome{Kind: OutcomeTrapped, Trap: trap}, trap
	}
}
