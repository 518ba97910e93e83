package app

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/soocke/radial-select-go/capture"
	"github.com/soocke/radial-select-go/config"
	"github.com/soocke/radial-select-go/debug"
	"github.com/soocke/radial-select-go/domain/geometry"
	"github.com/soocke/radial-select-go/domain/selection"
	"github.com/soocke/radial-select-go/ui/render"
	"github.com/soocke/radial-select-go/ui/shader"
)

// AppContainer assembles the state machine, synchronizer and graphics resources.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Menu     geometry.Menu
	Machine  *selection.Machine
	Sync     *render.Synchronizer
	Shader   *ebiten.Shader
	Labels   *LabelDrawer
	Backdrop *ebiten.Image
	Stats    *debug.FrameStats
	QuitKey  ebiten.Key

	// Screen rectangle the backdrop was captured from. Empty without a backdrop.
	BackdropArea image.Rectangle
}

// Grabber captures the desktop pixels inside a screen rectangle.
type Grabber func(area image.Rectangle) (*image.RGBA, error)

// BuildContainer constructs all components. Shader compilation failure is
// fatal; backdrop and label problems only degrade the window.
func BuildContainer(cfg *config.Config, logger *slog.Logger) (*AppContainer, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	c := &AppContainer{Config: cfg, Logger: logger, Menu: cfg.Menu(), QuitKey: ParseKey(cfg.QuitKey)}
	c.Machine = selection.NewMachine(c.Menu, logger)
	c.Machine.AddListener(commitLogger(logger, cfg.Segments))
	c.Sync = render.NewSynchronizer(c.Menu, palette)

	c.Shader, err = shader.Ring()
	if err != nil {
		return nil, err
	}

	if cfg.Backdrop {
		area, img, ok := grabBackdrop(cfg.WindowSize, globalCursor, capture.ScreenRect, capture.Backdrop, logger)
		if ok {
			c.Backdrop = ebiten.NewImageFromImage(img)
			c.BackdropArea = area
		}
	}
	if len(cfg.Labels) > 0 {
		if c.Labels, err = NewLabelDrawer(cfg); err != nil {
			logger.Warn("labels disabled", "error", err)
		}
	}
	if cfg.Debug {
		c.Stats = debug.NewFrameStats(time.Second, logger, func() (float64, float64) {
			return ebiten.ActualFPS(), ebiten.ActualTPS()
		})
	}
	return c, nil
}

// commitLogger reports the committed selection once at Info.
func commitLogger(logger *slog.Logger, segments int) selection.Listener {
	return func(prev, next selection.State, o selection.Outcome) {
		logger.Info("selection committed", "from", prev.String(), "to", next.String(),
			"outcome", o.String(), "code", o.Code(segments))
	}
}

// grabBackdrop picks the window rectangle and captures the desktop inside it.
// The window must later be pinned to the returned area.
func grabBackdrop(size int, cursor CursorLocator, screen ScreenLocator, grab Grabber, logger *slog.Logger) (image.Rectangle, *image.RGBA, bool) {
	area, ok := Placement(size, cursor, screen, logger)
	if !ok {
		if logger != nil {
			logger.Warn("backdrop disabled: window position unknown")
		}
		return image.Rectangle{}, nil, false
	}
	img, err := grab(area)
	if err != nil {
		if logger != nil {
			logger.Warn("backdrop disabled", "error", err)
		}
		return image.Rectangle{}, nil, false
	}
	return area, img, true
}
