package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rook-computer/fbpge/internal/app"
	"github.com/rook-computer/fbpge/internal/platform"
	"github.com/rook-computer/fbpge/internal/render"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred closes happen before exit.
func run(args []string) int {
	cfg, err := platform.DefaultConfigFromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		return 2
	}

	// Flags
	flags := flag.NewFlagSet("fbpge", flag.ContinueOnError)
	debug := flags.Bool("debug", false, "enable debug logging to ./fbpge-debug.log")
	flags.StringVar(&cfg.StdioLogPath, "stdio-log", cfg.StdioLogPath, "redirect stdout+stderr (including panics) to this file ("+platform.EnvStdioLog+")")
	flags.StringVar(&cfg.FramebufferPath, "fb", cfg.FramebufferPath, "framebuffer device ("+platform.EnvFramebuffer+")")
	flags.StringVar(&cfg.InputPath, "input", cfg.InputPath, "evdev keyboard device ("+platform.EnvInput+")")
	flags.DurationVar(&cfg.PollInterval, "poll", cfg.PollInterval, "input poll interval ("+platform.EnvPollInterval+")")
	flags.BoolVar(&cfg.GraphicsMode, "graphics-mode", cfg.GraphicsMode, "switch the console to graphics mode while running ("+platform.EnvGraphicsMode+")")
	width := flags.Int("width", 320, "screen width in pixels")
	height := flags.Int("height", 240, "screen height in pixels")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if cfg.StdioLogPath != "" {
		f, err := redirectStdio(cfg.StdioLogPath)
		if err != nil {
			fmt.Println("stdio log redirect error:", err)
		} else {
			defer f.Close()
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./fbpge-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	a := app.New("Linux Framebuffer Example", &demo{})
	a.Logger = logger
	if err := a.Construct(*width, *height); err != nil {
		logger.Errorf("main", "construct: %v", err)
		fmt.Println("construct error:", err)
		return 2
	}

	renderer := render.NewFBRenderer()
	renderer.Logger = logger
	p := platform.New(cfg, a, renderer)
	p.Logger = logger
	a.Renderer = renderer
	a.Platform = p

	if err := a.Start(); err != nil {
		logger.Errorf("main", "app error: %v", err)
		fmt.Println("app error:", err)
		return 1
	}
	return 0
}
