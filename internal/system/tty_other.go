//go:build !linux

package system

import "errors"

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// Console is a no-op outside Linux.
type Console struct {
	Paths  []string
	Logger logger
}

func NewConsole(l logger) *Console { return &Console{Logger: l} }

func (c *Console) EnterGraphics() error {
	return errors.New("console graphics mode not supported on this platform")
}

func (c *Console) Restore() error { return nil }
