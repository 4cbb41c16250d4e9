//go:build unix

package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// redirectStdio points the process's stdout and stderr descriptors at the
// file at path. The runtime writes panics to descriptor 2, so they land in
// the file too. The returned file is closed by the caller on exit.
func redirectStdio(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	if err := dupOnto(f, os.Stdout, os.Stderr); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

// dupOnto makes every target descriptor refer to log.
func dupOnto(log *os.File, targets ...*os.File) error {
	for _, t := range targets {
		if err := unix.Dup2(int(log.Fd()), int(t.Fd())); err != nil {
			return fmt.Errorf("dup %s onto %s: %w", log.Name(), t.Name(), err)
		}
	}
	return nil
}
