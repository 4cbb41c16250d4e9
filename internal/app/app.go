// Package app is a minimal pixel game engine host. It owns the draw target
// and the key table and runs a Game against a platform and a renderer.
package app

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rook-computer/fbpge/internal/keys"
	"github.com/rook-computer/fbpge/internal/pixel"
	"github.com/rook-computer/fbpge/internal/platform"
	"github.com/rook-computer/fbpge/internal/render"
)

// ErrNotConstructed is returned by Start before a successful Construct.
var ErrNotConstructed = errors.New("app: Construct must be called before Start")

// Game is implemented by the program running inside the engine.
type Game interface {
	OnUserCreate(a *App) error
	// OnUserUpdate draws one frame; returning false stops the engine.
	OnUserUpdate(a *App, elapsed time.Duration) bool
}

// Destroyer is optionally implemented by a Game. Returning false from
// OnUserDestroy keeps the engine running.
type Destroyer interface {
	OnUserDestroy(a *App) bool
}

// HWButton is the state of a key for the current frame.
type HWButton struct {
	Pressed  bool // went down this frame
	Released bool // went up this frame
	Held     bool
}

type App struct {
	Name     string
	Game     Game
	Platform platform.Platform
	Renderer render.Renderer
	Logger   Logger

	target *pixel.Sprite
	layers []render.LayerQuad
	decals []render.DecalInstance
	text   textFaces

	running atomic.Bool

	mu         sync.Mutex
	windowSize image.Point
	keyNew     [keys.Count]bool

	keyOld   [keys.Count]bool
	keyboard [keys.Count]HWButton
}

func New(name string, game Game) *App {
	return &App{Name: name, Game: game, Logger: NoopLogger{}}
}

// Construct allocates the draw target.
func (a *App) Construct(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("app: invalid screen size %dx%d", width, height)
	}
	a.target = pixel.NewSprite(width, height)
	return nil
}

// Start runs the engine until the game stops or the event loop fails. The
// system event loop runs on the calling goroutine, the game on its own.
func (a *App) Start() error {
	if a.target == nil {
		return ErrNotConstructed
	}
	if a.Logger == nil {
		a.Logger = NoopLogger{}
	}
	if a.Renderer == nil {
		r := render.NewFBRenderer()
		r.Logger = a.Logger
		a.Renderer = r
	}
	if a.Platform == nil {
		p := platform.New(platform.DefaultConfig(), a, a.Renderer)
		p.Logger = a.Logger
		a.Platform = p
	}

	if err := a.Platform.ApplicationStartUp(); err != nil {
		a.Logger.Errorf("app", "start-up failed: %v", err)
		return errors.Join(err, a.Platform.ApplicationCleanUp())
	}
	if err := a.Platform.SetWindowTitle(a.Name); err != nil {
		a.Logger.Warnf("app", "set title failed: %v", err)
	}
	size, err := a.Platform.CreateWindowPane(image.Pt(30, 30), a.ScreenSize(), false)
	if err != nil {
		return errors.Join(err, a.Platform.ApplicationCleanUp())
	}
	a.Logger.Infof("app", "window %s, screen %s", size, a.ScreenSize())

	a.running.Store(true)
	var (
		wg        sync.WaitGroup
		engineErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		engineErr = a.engineThread()
	}()

	loopErr := a.Platform.StartSystemEventLoop()
	a.running.Store(false)
	wg.Wait()

	if engineErr != nil {
		a.Logger.Errorf("app", "engine stopped: %v", engineErr)
	}
	return errors.Join(engineErr, loopErr, a.Platform.ApplicationCleanUp())
}

// Stop asks the engine to finish the current frame and exit.
func (a *App) Stop() { a.running.Store(false) }

func (a *App) engineThread() (err error) {
	defer a.running.Store(false)

	if err = a.Platform.ThreadStartUp(); err != nil {
		return err
	}
	defer func() {
		if cerr := a.Platform.ThreadCleanUp(); err == nil {
			err = cerr
		}
	}()

	if err = a.Platform.CreateGraphics(true, false, image.Point{}, a.ScreenSize()); err != nil {
		return err
	}
	if a.Game != nil {
		if err = a.Game.OnUserCreate(a); err != nil {
			return fmt.Errorf("app: user create: %w", err)
		}
	}

	last := time.Now()
	for a.running.Load() {
		now := time.Now()
		elapsed := now.Sub(last)
		last = now

		a.updateKeys()
		a.layers = a.layers[:0]
		a.decals = a.decals[:0]
		if a.Game != nil && !a.Game.OnUserUpdate(a, elapsed) {
			if d, ok := a.Game.(Destroyer); !ok || d.OnUserDestroy(a) {
				a.running.Store(false)
			}
		}
		if err = a.Renderer.Present(a.frame()); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) frame() render.Frame {
	return render.Frame{Target: a.target, Layers: a.layers, Decals: a.decals}
}

// IsRunning is polled by the system event loop.
func (a *App) IsRunning() bool { return a.running.Load() }

// UpdateWindowSize records the size reported by the platform.
func (a *App) UpdateWindowSize(width, height int) {
	a.mu.Lock()
	a.windowSize = image.Pt(width, height)
	a.mu.Unlock()
}

// UpdateKeyState records a key transition from the event loop.
func (a *App) UpdateKeyState(k keys.Key, pressed bool) {
	if k <= keys.None || int(k) >= keys.Count {
		return
	}
	a.mu.Lock()
	a.keyNew[k] = pressed
	a.mu.Unlock()
}

func (a *App) updateKeys() {
	a.mu.Lock()
	cur := a.keyNew
	a.mu.Unlock()

	for i := range cur {
		b := &a.keyboard[i]
		b.Pressed, b.Released = false, false
		if cur[i] != a.keyOld[i] {
			if cur[i] {
				b.Pressed = !b.Held
				b.Held = true
			} else {
				b.Released = true
				b.Held = false
			}
		}
		a.keyOld[i] = cur[i]
	}
}

// GetKey returns the state of k for the current frame.
func (a *App) GetKey(k keys.Key) HWButton {
	if k < 0 || int(k) >= keys.Count {
		return HWButton{}
	}
	return a.keyboard[k]
}

// WindowSize is the size reported by the platform.
func (a *App) WindowSize() image.Point {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.windowSize
}

// ScreenSize is the size of the draw target.
func (a *App) ScreenSize() image.Point {
	if a.target == nil {
		return image.Point{}
	}
	return image.Pt(a.target.Width, a.target.Height)
}

// DrawTarget is the sprite presented every frame.
func (a *App) DrawTarget() *pixel.Sprite { return a.target }

var _ platform.Host = (*App)(nil)
