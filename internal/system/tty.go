//go:build linux

package system

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

const (
	escHideCursor = "\x1b[?25l"
	escShowCursor = "\x1b[?25h"
)

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// Console switches the active virtual terminal into graphics mode while the
// framebuffer is in use, so the text console and its cursor do not draw over
// the frame.
type Console struct {
	// Paths are tried in order; the first one that accepts the ioctl wins.
	Paths  []string
	Logger logger

	graphics bool
}

// NewConsole targets the active VT, /dev/tty, falling back to /dev/tty0.
func NewConsole(l logger) *Console {
	return &Console{Paths: []string{"/dev/tty", "/dev/tty0"}, Logger: l}
}

// EnterGraphics switches to KD_GRAPHICS and hides the cursor.
func (c *Console) EnterGraphics() error {
	if err := c.setMode(kdGraphics); err != nil {
		c.errorf("KD_GRAPHICS failed: %v", err)
		return err
	}
	c.graphics = true
	c.infof("KD_GRAPHICS set")
	if err := c.write(escHideCursor); err != nil {
		c.errorf("hide cursor failed: %v", err)
	}
	return nil
}

// Restore shows the cursor and returns to KD_TEXT. It does nothing unless
// EnterGraphics succeeded.
func (c *Console) Restore() error {
	if !c.graphics {
		return nil
	}
	if err := c.write(escShowCursor); err != nil {
		c.errorf("show cursor failed: %v", err)
	}
	if err := c.setMode(kdText); err != nil {
		c.errorf("KD_TEXT failed: %v", err)
		return err
	}
	c.graphics = false
	c.infof("KD_TEXT set")
	return nil
}

func (c *Console) setMode(mode int) error {
	var lastErr error
	for _, p := range c.Paths {
		fd, err := unix.Open(p, unix.O_RDONLY|unix.O_CLOEXEC, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		_ = unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("KDSETMODE %d on %s: %w", mode, p, err)
			continue
		}
		return nil
	}
	if lastErr != nil {
		return lastErr
	}
	return fmt.Errorf("KDSETMODE %d: no console path configured", mode)
}

func (c *Console) write(s string) error {
	var lastErr error
	for _, p := range c.Paths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		_ = f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return fmt.Errorf("write VT failed: %v", lastErr)
	}
	return fmt.Errorf("write VT failed: no console path configured")
}

func (c *Console) infof(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Infof("tty", format, args...)
	}
}

func (c *Console) errorf(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Errorf("tty", format, args...)
	}
}
