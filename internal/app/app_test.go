package app

import (
	"bytes"
	"errors"
	"image"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/fbpge/internal/framebuffer"
	"github.com/rook-computer/fbpge/internal/input"
	"github.com/rook-computer/fbpge/internal/keys"
	"github.com/rook-computer/fbpge/internal/pixel"
	"github.com/rook-computer/fbpge/internal/platform"
	"github.com/rook-computer/fbpge/internal/render"
)

type testGame struct {
	created bool
	frames  int
	maxRun  int
	draw    func(a *App, frame int)
}

func (g *testGame) OnUserCreate(a *App) error {
	g.created = true
	return nil
}

func (g *testGame) OnUserUpdate(a *App, elapsed time.Duration) bool {
	g.frames++
	if g.draw != nil {
		g.draw(a, g.frames)
	}
	return g.frames < g.maxRun
}

func newTestPlatform(a *App, dev framebuffer.Surface) *platform.FBPlatform {
	cfg := platform.DefaultConfig()
	cfg.GraphicsMode = false
	cfg.PollInterval = time.Millisecond
	p := platform.New(cfg, a, a.Renderer)
	p.TitleOut = &bytes.Buffer{}
	p.OpenSurface = func(string) (framebuffer.Surface, error) { return dev, nil }
	p.OpenInput = func(string, input.Logger) *input.Poller { return input.NewPoller(nil) }
	return p
}

func TestStartPresentsFrames(t *testing.T) {
	dev := framebuffer.NewBuffer(8, 6, pixel.FormatBGRA)
	game := &testGame{maxRun: 3, draw: func(a *App, frame int) {
		a.Clear(pixel.Cyan)
		a.Draw(1, 1, pixel.Red)
		a.Draw(frame, 4, pixel.White)
	}}
	a := New("test", game)
	require.NoError(t, a.Construct(8, 6))
	a.Renderer = render.NewFBRenderer()
	p := newTestPlatform(a, dev)
	a.Platform = p

	require.NoError(t, a.Start())

	assert.True(t, game.created)
	assert.Equal(t, 3, game.frames)
	assert.False(t, a.IsRunning())
	assert.Equal(t, platform.Terminated, p.State())
	assert.Equal(t, image.Pt(8, 6), a.WindowSize())

	at := func(x, y int) pixel.Pixel {
		return pixel.FormatBGRA.Decode(dev.Pix[dev.PixOffset(x, y):])
	}
	assert.Equal(t, pixel.Cyan, at(0, 0))
	assert.Equal(t, pixel.Red, at(1, 1))
	assert.Equal(t, pixel.White, at(3, 4), "last frame is on screen")
	assert.Equal(t, pixel.Cyan, at(1, 4), "earlier frames are overdrawn")
	assert.Equal(t, "PGE Framebuffer: test\n", p.TitleOut.(*bytes.Buffer).String())
}

func TestStartRequiresConstruct(t *testing.T) {
	a := New("test", &testGame{})
	assert.ErrorIs(t, a.Start(), ErrNotConstructed)
	assert.Error(t, a.Construct(0, 10))
}

func TestStartFailsWithoutFramebuffer(t *testing.T) {
	game := &testGame{maxRun: 1}
	a := New("test", game)
	require.NoError(t, a.Construct(4, 4))
	a.Renderer = render.NoopRenderer{}
	p := newTestPlatform(a, nil)
	errOpen := errors.New("no framebuffer")
	p.OpenSurface = func(string) (framebuffer.Surface, error) { return nil, errOpen }
	a.Platform = p

	assert.ErrorIs(t, a.Start(), errOpen)
	assert.False(t, game.created)
	assert.Equal(t, platform.Terminated, p.State())
}

type failingGame struct{ testGame }

func (failingGame) OnUserCreate(*App) error { return errors.New("no assets") }

func TestStartUserCreateFails(t *testing.T) {
	g := &failingGame{}
	a := New("test", g)
	require.NoError(t, a.Construct(4, 4))
	a.Renderer = render.NoopRenderer{}
	p := newTestPlatform(a, framebuffer.NewBuffer(4, 4, pixel.FormatBGRA))
	a.Platform = p

	err := a.Start()
	assert.ErrorContains(t, err, "no assets")
	assert.Zero(t, g.frames)
	assert.Equal(t, platform.Terminated, p.State())
}

type vetoGame struct {
	testGame
	vetoes int
}

func (g *vetoGame) OnUserDestroy(*App) bool {
	g.vetoes++
	return g.vetoes > 1
}

func TestDestroyerVetoesShutdown(t *testing.T) {
	g := &vetoGame{testGame: testGame{maxRun: 1}}
	a := New("test", g)
	require.NoError(t, a.Construct(2, 2))
	a.Renderer = render.NoopRenderer{}
	a.Platform = newTestPlatform(a, framebuffer.NewBuffer(2, 2, pixel.FormatBGRA))

	require.NoError(t, a.Start())
	assert.Equal(t, 2, g.frames)
	assert.Equal(t, 2, g.vetoes)
}

func TestKeyEdges(t *testing.T) {
	a := New("test", nil)

	a.UpdateKeyState(keys.Space, true)
	a.updateKeys()
	assert.Equal(t, HWButton{Pressed: true, Held: true}, a.GetKey(keys.Space))

	a.updateKeys()
	assert.Equal(t, HWButton{Held: true}, a.GetKey(keys.Space), "pressed lasts one frame")

	a.UpdateKeyState(keys.Space, true)
	a.updateKeys()
	assert.Equal(t, HWButton{Held: true}, a.GetKey(keys.Space), "auto-repeat")

	a.UpdateKeyState(keys.Space, false)
	a.updateKeys()
	assert.Equal(t, HWButton{Released: true}, a.GetKey(keys.Space))

	a.updateKeys()
	assert.Equal(t, HWButton{}, a.GetKey(keys.Space))

	// A tap inside one frame is not seen.
	a.UpdateKeyState(keys.A, true)
	a.UpdateKeyState(keys.A, false)
	a.updateKeys()
	assert.Equal(t, HWButton{}, a.GetKey(keys.A))

	assert.NotPanics(t, func() {
		a.UpdateKeyState(keys.Key(-1), true)
		a.UpdateKeyState(keys.Key(keys.Count), true)
		a.UpdateKeyState(keys.None, true)
	})
	assert.Equal(t, HWButton{}, a.GetKey(keys.Key(keys.Count+5)))
	a.updateKeys()
	assert.Equal(t, HWButton{}, a.GetKey(keys.None))
}

func TestKeyStateFromEventLoop(t *testing.T) {
	a := New("test", nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(k keys.Key) {
			defer wg.Done()
			a.UpdateKeyState(k, true)
		}(keys.A + keys.Key(i))
	}
	wg.Wait()
	a.updateKeys()
	for i := 0; i < 8; i++ {
		assert.True(t, a.GetKey(keys.A+keys.Key(i)).Pressed)
	}
}

func TestLoggers(t *testing.T) {
	var buf bytes.Buffer
	l := NewFileLogger(&buf)
	l.Infof("platform", "open %s", "/dev/fb0")
	l.Warnf("input", "disabled")
	l.Errorf("render", "code %d", 7)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Regexp(t, `^\S+ \[INFO\] platform: open /dev/fb0$`, lines[0])
	assert.Regexp(t, `^\S+ \[WARN\] input: disabled$`, lines[1])
	assert.Regexp(t, `^\S+ \[ERROR\] render: code 7$`, lines[2])

	_, err := time.Parse(time.RFC3339, strings.Fields(lines[0])[0])
	assert.NoError(t, err)

	assert.NotPanics(t, func() { NoopLogger{}.Warnf("x", "y") })
}
