package platform

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rook-computer/fbpge/internal/framebuffer"
	"github.com/rook-computer/fbpge/internal/input"
)

const (
	EnvFramebuffer  = "PGEFB_FRAMEBUFFER"
	EnvInput        = "PGEFB_INPUT"
	EnvPollInterval = "PGEFB_POLL_INTERVAL"
	EnvGraphicsMode = "PGEFB_GRAPHICS_MODE"
	EnvStdioLog     = "PGEFB_STDIO_LOG"
)

// DefaultPollInterval is the event loop sleep between input drains.
const DefaultPollInterval = 10 * time.Millisecond

// Config selects the devices the platform drives.
type Config struct {
	FramebufferPath string
	InputPath       string

	// PollInterval is slept after every input drain in StartSystemEventLoop.
	PollInterval time.Duration

	// GraphicsMode switches the console to KD_GRAPHICS while running.
	GraphicsMode bool

	// StdioLogPath receives stdout and stderr, panics included, when set.
	// The console is unreadable while it is in graphics mode.
	StdioLogPath string
}

func DefaultConfig() Config {
	return Config{
		FramebufferPath: framebuffer.DefaultDevice,
		InputPath:       input.DefaultDevice,
		PollInterval:    DefaultPollInterval,
		GraphicsMode:    true,
	}
}

// DefaultConfigFromEnv returns DefaultConfig overridden by the PGEFB_*
// environment variables.
func DefaultConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if v := os.Getenv(EnvFramebuffer); v != "" {
		cfg.FramebufferPath = v
	}
	if v := os.Getenv(EnvInput); v != "" {
		cfg.InputPath = v
	}
	if raw := os.Getenv(EnvPollInterval); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a duration (got %q): %w", EnvPollInterval, raw, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("%s must be positive (got %q)", EnvPollInterval, raw)
		}
		cfg.PollInterval = d
	}
	cfg.StdioLogPath = os.Getenv(EnvStdioLog)
	if raw := os.Getenv(EnvGraphicsMode); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvGraphicsMode, raw, err)
		}
		cfg.GraphicsMode = b
	}
	return cfg, nil
}
