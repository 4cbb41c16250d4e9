//go:build !unix

package main

import "os"

// redirectStdio swaps os.Stdout and os.Stderr for the file at path. Output the
// runtime writes to the original handles, panics included, is not captured.
func redirectStdio(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	os.Stdout = f
	os.Stderr = f
	return f, nil
}
