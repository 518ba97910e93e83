package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/soocke/radial-select-go/domain/selection"
	"github.com/soocke/radial-select-go/ui/shader"
)

// Game is the host loop: ebiten calls Update once per tick to poll input and
// Draw once per frame to push the ring's draw parameters.
type Game struct {
	c        *AppContainer
	input    InputSource
	window   WindowControl
	recentre bool
	width    int
	height   int
	frames   int
}

// NewGame returns a Game sized to the configured window until the first Layout.
// With CenterOnCursor set and no backdrop pinning the window, the first tick
// moves the window under the pointer. window may be nil.
func NewGame(c *AppContainer, input InputSource, window WindowControl) *Game {
	return &Game{
		c:        c,
		input:    input,
		window:   window,
		recentre: window != nil && c.Config.CenterOnCursor && c.BackdropArea.Empty(),
		width:    c.Config.WindowSize,
		height:   c.Config.WindowSize,
	}
}

func (g *Game) Update() error {
	m := g.c.Machine
	if m.Done() {
		return ebiten.Termination
	}
	if g.recentre {
		g.recentre = false
		x, y := g.input.CursorPosition()
		recentre(g.window, x, y)
		if g.c.Logger != nil {
			g.c.Logger.Debug("window centred on cursor", "cursor_x", x, "cursor_y", y)
		}
	}
	vp := selection.Viewport{Width: g.width, Height: g.height}
	m.Dispatch(PollBatch(g.input, g.c.QuitKey, vp, g.c.Logger))
	g.c.Stats.Tick(time.Now())
	if m.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.frames == 0 && g.c.Logger != nil {
		var info ebiten.DebugInfo
		ebiten.ReadDebugInfo(&info)
		g.c.Logger.Info("graphics ready", "library", fmt.Sprint(info.GraphicsLibrary))
	}
	g.frames++

	if g.c.Backdrop != nil {
		screen.DrawImage(g.c.Backdrop, nil)
	}
	x, y := g.input.CursorPosition()
	f := g.c.Sync.Frame(float64(x), float64(y), g.width, g.height)
	if g.c.Shader != nil {
		shader.Draw(screen, g.c.Shader, f)
	}
	g.c.Labels.Draw(screen, g.width, g.height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the interaction ends.
func Run(c *AppContainer) (selection.Outcome, error) {
	configureWindow(c.Config, c.Logger)
	win := ebitenWindow{}
	pinWindow(win, c.BackdropArea, deviceScale())
	g := NewGame(c, NewEbitenInput(), win)
	err := ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{ScreenTransparent: c.Config.Transparent})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return selection.None, fmt.Errorf("run: %w", err)
	}
	outcome := c.Machine.Outcome()
	if c.Machine.QuitRequested() && c.Machine.State() != selection.StateCommitted && c.Logger != nil {
		c.Logger.Info("selection dismissed", "outcome", outcome.String())
	}
	return outcome, nil
}

func deviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}
