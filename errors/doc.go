// Package errors provides structured error types for the wasi-shim library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries a human-readable detail and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseInstantiate, errors.KindBadSignature).
//		Export("_start").
//		Detail("entry function must take no parameters and return no result").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MissingExport("_start")
//	err := errors.Malformed("decode module", cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
