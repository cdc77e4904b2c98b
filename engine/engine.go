package engine

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/wasi-shim/errors"
)

// DefaultMaxMemoryPages is the default limit on guest linear memory,
// in 64 KiB pages. 256 pages is 16 MiB.
const DefaultMaxMemoryPages = 256

// Config holds configuration for engine creation
type Config struct {
	// MaxMemoryPages caps guest memory per instance in pages (64KB each).
	// 0 means DefaultMaxMemoryPages.
	MaxMemoryPages uint32
}

// Engine owns a wazero runtime configured for single-module command runs.
type Engine struct {
	runtime  wazero.Runtime
	maxPages uint32
}

// New creates an engine with the given configuration.
func New(ctx context.Context, cfg *Config) *Engine {
	maxPages := uint32(DefaultMaxMemoryPages)
	if cfg != nil && cfg.MaxMemoryPages > 0 {
		maxPages = cfg.MaxMemoryPages
	}

	runtimeCfg := wazero.NewRuntimeConfig().WithMemoryLimitPages(maxPages)
	return &Engine{
		runtime:  wazero.NewRuntimeWithConfig(ctx, runtimeCfg),
		maxPages: maxPages,
	}
}

// Runtime exposes the underlying wazero runtime for host-module registration.
func (e *Engine) Runtime() wazero.Runtime {
	return e.runtime
}

// MaxMemoryPages returns the configured guest memory limit.
func (e *Engine) MaxMemoryPages() uint32 {
	return e.maxPages
}

// Compile decodes and validates a wasm binary.
// A malformed binary is reported as a parse-phase error.
func (e *Engine) Compile(ctx context.Context, wasm []byte) (wazero.CompiledModule, error) {
	compiled, err := e.runtime.CompileModule(ctx, wasm)
	if err != nil {
		return nil, errors.Malformed("decode module", err)
	}
	Logger().Debug("module compiled",
		zap.Int("binary_size", len(wasm)),
		zap.Int("exports", len(compiled.ExportedFunctions())))
	return compiled, nil
}

// Instantiate binds the compiled module's imports against previously
// instantiated host modules and creates its linear memory. Import resolution
// failures and memory-limit violations both surface here.
func (e *Engine) Instantiate(ctx context.Context, compiled wazero.CompiledModule) (api.Module, error) {
	cfg := wazero.NewModuleConfig().
		WithName("").
		WithStartFunctions() // entry invocation is the runner's job
	mod, err := e.runtime.InstantiateModule(ctx, compiled, cfg)
	if err != nil {
		return nil, errors.Instantiation(err)
	}
	return mod, nil
}

// Close releases all engine resources, including any live instances.
func (e *Engine) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}
