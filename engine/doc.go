// Package engine wraps the wazero runtime behind the small surface the shim
// needs: compile a binary, instantiate it against registered host modules,
// look up exports, and adapt wazero linear memory to the wasishim.Memory
// accessor interface.
//
// The engine enforces the embedding's maximum guest memory size at
// instantiation time; a module declaring more pages than the limit fails to
// instantiate.
package engine
