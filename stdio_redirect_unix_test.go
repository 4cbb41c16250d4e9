//go:build unix

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDupOnto(t *testing.T) {
	dir := t.TempDir()
	log, err := os.OpenFile(filepath.Join(dir, "stdio.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	defer log.Close()

	out, err := os.Create(filepath.Join(dir, "stdout"))
	require.NoError(t, err)
	defer out.Close()
	errOut, err := os.Create(filepath.Join(dir, "stderr"))
	require.NoError(t, err)
	defer errOut.Close()

	require.NoError(t, dupOnto(log, out, errOut))
	_, err = out.WriteString("frame presented\n")
	require.NoError(t, err)
	_, err = errOut.WriteString("panic: boom\n")
	require.NoError(t, err)

	got, err := os.ReadFile(log.Name())
	require.NoError(t, err)
	assert.Equal(t, "frame presented\npanic: boom\n", string(got))

	for _, name := range []string{"stdout", "stderr"} {
		b, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Empty(t, b, "%s file bypassed", name)
	}
}

func TestRedirectStdioBadPath(t *testing.T) {
	f, err := redirectStdio(filepath.Join(t.TempDir(), "missing", "stdio.log"))
	assert.Error(t, err)
	assert.Nil(t, f)
}
