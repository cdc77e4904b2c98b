package main

import (
	"os"

	"github.com/wippyai/wasi-shim/errors"
)

// loadFile reads a module binary, distinguishing the common failure modes so
// the diagnostic names the actual problem.
func loadFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Load("file does not exist: "+path, nil)
		}
		return nil, errors.Load("failed to stat file: "+path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, errors.Load("not a file: "+path, nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load("failed to open file: "+path, err)
	}
	return data, nil
}
