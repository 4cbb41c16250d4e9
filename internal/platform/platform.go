// Package platform is the driver facade: it owns the framebuffer surface and
// the keyboard poller and walks them through the engine lifecycle.
package platform

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"time"

	goerrors "github.com/go-errors/errors"

	"github.com/rook-computer/fbpge/internal/framebuffer"
	"github.com/rook-computer/fbpge/internal/input"
	"github.com/rook-computer/fbpge/internal/keys"
	"github.com/rook-computer/fbpge/internal/render"
	"github.com/rook-computer/fbpge/internal/system"
)

// ErrLifecycle is returned when a lifecycle call arrives in the wrong state.
var ErrLifecycle = errors.New("platform: call out of lifecycle order")

// Platform is the system side of the driver, called by the engine.
type Platform interface {
	ApplicationStartUp() error
	ApplicationCleanUp() error
	ThreadStartUp() error
	ThreadCleanUp() error
	CreateGraphics(fullScreen, vsync bool, viewPos, viewSize image.Point) error

	// CreateWindowPane reports the size the engine must use; the request is
	// not honoured because the device cannot be resized.
	CreateWindowPane(pos, size image.Point, fullScreen bool) (image.Point, error)
	SetWindowTitle(title string) error

	// StartSystemEventLoop pumps input until the host stops running.
	StartSystemEventLoop() error
	HandleSystemEvent() error

	Surface() framebuffer.Surface
	ScreenSize() (width, height int)
}

// Host is what the platform needs from the engine.
type Host interface {
	IsRunning() bool
	UpdateWindowSize(width, height int)
	UpdateKeyState(k keys.Key, pressed bool)
}

type logger interface {
	Infof(string, string, ...interface{})
	Warnf(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

type console interface {
	EnterGraphics() error
	Restore() error
}

// FBPlatform drives a Linux framebuffer and an evdev keyboard.
type FBPlatform struct {
	Config   Config
	Host     Host
	Renderer render.Renderer
	Logger   logger

	// TitleOut receives window title notifications; defaults to os.Stdout.
	TitleOut io.Writer

	// OpenSurface and OpenInput default to framebuffer.Open and input.Open.
	OpenSurface func(path string) (framebuffer.Surface, error)
	OpenInput   func(path string, l input.Logger) *input.Poller

	state   State
	surface framebuffer.Surface
	width   int
	height  int
	poller  *input.Poller
	console console
}

func New(cfg Config, host Host, renderer render.Renderer) *FBPlatform {
	return &FBPlatform{Config: cfg, Host: host, Renderer: renderer}
}

// State is the current lifecycle state.
func (p *FBPlatform) State() State { return p.state }

func (p *FBPlatform) Surface() framebuffer.Surface { return p.surface }

func (p *FBPlatform) ScreenSize() (width, height int) { return p.width, p.height }

// ApplicationStartUp opens the framebuffer, failing startup if it cannot be
// mapped, then the keyboard, which only degrades input if it cannot be opened.
func (p *FBPlatform) ApplicationStartUp() error {
	if p.state != Uninitialized {
		return fmt.Errorf("%w: application start-up in state %s", ErrLifecycle, p.state)
	}

	open := p.OpenSurface
	if open == nil {
		open = framebuffer.Open
	}
	s, err := open(p.Config.FramebufferPath)
	if err != nil {
		p.errorf("framebuffer %s unavailable: %v", p.Config.FramebufferPath, err)
		return goerrors.WrapPrefix(err, "platform start-up", 0)
	}
	bounds := s.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		_ = s.Close()
		return goerrors.WrapPrefix(framebuffer.ErrNoGeometry, "platform start-up", 0)
	}
	p.surface = s
	p.width, p.height = bounds.Dx(), bounds.Dy()
	p.infof("framebuffer %s open, %dx%d", p.Config.FramebufferPath, p.width, p.height)

	openInput := p.OpenInput
	if openInput == nil {
		openInput = input.Open
	}
	var il input.Logger
	if p.Logger != nil {
		il = p.Logger
	}
	p.poller = openInput(p.Config.InputPath, il)

	if p.Config.GraphicsMode {
		var cl interface {
			Infof(string, string, ...interface{})
			Errorf(string, string, ...interface{})
		}
		if p.Logger != nil {
			cl = p.Logger
		}
		c := system.NewConsole(cl)
		if err := c.EnterGraphics(); err == nil {
			p.console = c
		}
	}

	p.state = Started
	return nil
}

// ApplicationCleanUp releases the keyboard and the framebuffer. It may be
// called from any state.
func (p *FBPlatform) ApplicationCleanUp() error {
	if p.state == Terminated {
		return nil
	}
	var errs []error
	if p.poller != nil {
		errs = append(errs, p.poller.Close())
		p.poller = nil
	}
	if p.surface != nil {
		errs = append(errs, p.surface.Close())
		p.surface = nil
	}
	if p.console != nil {
		errs = append(errs, p.console.Restore())
		p.console = nil
	}
	p.state = Terminated
	p.infof("terminated")
	return errors.Join(errs...)
}

func (p *FBPlatform) ThreadStartUp() error {
	if p.state != Started {
		return fmt.Errorf("%w: thread start-up in state %s", ErrLifecycle, p.state)
	}
	p.state = Running
	return nil
}

// ThreadCleanUp destroys the renderer device; the surface stays with the
// platform until ApplicationCleanUp.
func (p *FBPlatform) ThreadCleanUp() error {
	if p.Renderer != nil {
		if err := p.Renderer.DestroyDevice(); err != nil {
			return err
		}
	}
	if p.state == Running || p.state == GraphicsReady {
		p.state = Stopped
	}
	return nil
}

func (p *FBPlatform) CreateGraphics(fullScreen, vsync bool, viewPos, viewSize image.Point) error {
	if p.state != Running {
		return fmt.Errorf("%w: create graphics in state %s", ErrLifecycle, p.state)
	}
	if p.Renderer != nil {
		if err := p.Renderer.CreateDevice(p, fullScreen, vsync); err != nil {
			return err
		}
		p.Renderer.UpdateViewport(viewPos, viewSize)
		p.Renderer.PrepareDevice()
	}
	p.state = GraphicsReady
	return nil
}

func (p *FBPlatform) CreateWindowPane(pos, size image.Point, fullScreen bool) (image.Point, error) {
	if p.surface == nil {
		return image.Point{}, fmt.Errorf("%w: no framebuffer in state %s", ErrLifecycle, p.state)
	}
	if size != (image.Point{X: p.width, Y: p.height}) {
		p.infof("window size %s requested, using framebuffer size %dx%d", size, p.width, p.height)
	}
	if p.Host != nil {
		p.Host.UpdateWindowSize(p.width, p.height)
	}
	return image.Pt(p.width, p.height), nil
}

// SetWindowTitle writes the title to TitleOut; there is no window to show it.
func (p *FBPlatform) SetWindowTitle(title string) error {
	w := p.TitleOut
	if w == nil {
		w = os.Stdout
	}
	_, err := fmt.Fprintf(w, "PGE Framebuffer: %s\n", title)
	return err
}

// StartSystemEventLoop drains the keyboard, sleeps for the poll interval and
// returns once the host no longer runs.
func (p *FBPlatform) StartSystemEventLoop() error {
	interval := p.Config.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	for {
		if err := p.HandleSystemEvent(); err != nil {
			return err
		}
		time.Sleep(interval)
		if p.Host == nil || !p.Host.IsRunning() {
			return nil
		}
	}
}

// HandleSystemEvent forwards every pending key transition to the host.
func (p *FBPlatform) HandleSystemEvent() error {
	if p.poller == nil || p.Host == nil {
		return nil
	}
	p.poller.Poll(func(e input.Event) {
		p.Host.UpdateKeyState(e.Key, e.Pressed)
	})
	return nil
}

func (p *FBPlatform) infof(format string, args ...interface{}) {
	if p.Logger != nil {
		p.Logger.Infof("platform", format, args...)
	}
}

func (p *FBPlatform) errorf(format string, args ...interface{}) {
	if p.Logger != nil {
		p.Logger.Errorf("platform", format, args...)
	}
}

var (
	_ Platform              = (*FBPlatform)(nil)
	_ render.DeviceProvider = (*FBPlatform)(nil)
)
