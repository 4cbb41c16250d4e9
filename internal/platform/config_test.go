package platform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigFromEnv(t *testing.T) {
	for _, env := range []string{EnvFramebuffer, EnvInput, EnvPollInterval, EnvGraphicsMode, EnvStdioLog} {
		t.Setenv(env, "")
	}
	cfg, err := DefaultConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "/dev/fb0", cfg.FramebufferPath)
	assert.Equal(t, "/dev/input/event0", cfg.InputPath)

	t.Setenv(EnvFramebuffer, "/dev/fb1")
	t.Setenv(EnvInput, "/dev/input/event3")
	t.Setenv(EnvPollInterval, "25ms")
	t.Setenv(EnvGraphicsMode, "false")
	t.Setenv(EnvStdioLog, "/var/log/fbpge.log")
	cfg, err = DefaultConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		FramebufferPath: "/dev/fb1",
		InputPath:       "/dev/input/event3",
		PollInterval:    25 * time.Millisecond,
		GraphicsMode:    false,
		StdioLogPath:    "/var/log/fbpge.log",
	}, cfg)
}

func TestDefaultConfigFromEnvInvalid(t *testing.T) {
	tests := []struct {
		env, value string
	}{
		{EnvPollInterval, "soon"},
		{EnvPollInterval, "0s"},
		{EnvPollInterval, "-5ms"},
		{EnvGraphicsMode, "maybe"},
	}
	for _, test := range tests {
		t.Run(test.env+"="+test.value, func(t *testing.T) {
			t.Setenv(test.env, test.value)
			_, err := DefaultConfigFromEnv()
			assert.ErrorContains(t, err, test.env)
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "graphics-ready", GraphicsReady.String())
	assert.Equal(t, "terminated", Terminated.String())
	assert.Equal(t, "uninitialized", Uninitialized.String())
}
