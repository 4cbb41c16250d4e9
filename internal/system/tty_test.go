//go:build linux

package system

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{ infos, errors []string }

func (l *testLogger) Infof(component, format string, args ...interface{}) {
	l.infos = append(l.infos, component+": "+fmt.Sprintf(format, args...))
}

func (l *testLogger) Errorf(component, format string, args ...interface{}) {
	l.errors = append(l.errors, component+": "+fmt.Sprintf(format, args...))
}

func TestConsoleWithoutTTY(t *testing.T) {
	l := &testLogger{}
	c := &Console{Paths: []string{filepath.Join(t.TempDir(), "tty-missing")}, Logger: l}

	assert.Error(t, c.EnterGraphics())
	assert.Len(t, l.errors, 1)
	assert.NoError(t, c.Restore(), "restore is a no-op when graphics mode was never entered")
	assert.Len(t, l.errors, 1)
}

func TestConsoleNotATerminal(t *testing.T) {
	// A regular file accepts the open but rejects KDSETMODE.
	path := filepath.Join(t.TempDir(), "tty")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	c := &Console{Paths: []string{path}}
	assert.Error(t, c.EnterGraphics())

	c = &Console{}
	assert.EqualError(t, c.setMode(kdText), "KDSETMODE 0: no console path configured")
}
