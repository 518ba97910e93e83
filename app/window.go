package app

import (
	"image"
	"log/slog"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/soocke/radial-select-go/config"
)

const windowTitle = "Selector"

// CursorLocator returns the global pointer position in screen pixels.
type CursorLocator func() (x, y int, ok bool)

// ScreenLocator returns the bounds of the screen the window opens on.
type ScreenLocator func() (image.Rectangle, error)

// WindowControl is the part of the provider's window API used for positioning.
// Coordinates are in device-independent pixels.
type WindowControl interface {
	Position() (x, y int)
	Size() (w, h int)
	SetPosition(x, y int)
}

type ebitenWindow struct{}

func (ebitenWindow) Position() (int, int)  { return ebiten.WindowPosition() }
func (ebitenWindow) Size() (int, int)      { return ebiten.WindowSize() }
func (ebitenWindow) SetPosition(x, y int) { ebiten.SetWindowPosition(x, y) }

// Placement returns the square screen rectangle centred on the global pointer,
// or on the screen when the pointer position is unknown. ok is false when
// neither source is available.
func Placement(size int, cursor CursorLocator, screen ScreenLocator, logger *slog.Logger) (image.Rectangle, bool) {
	if cursor != nil {
		if x, y, ok := cursor(); ok {
			return centredRect(image.Pt(x, y), size), true
		}
	}
	if logger != nil {
		logger.Warn("global cursor position unavailable, using screen centre")
	}
	if screen != nil {
		r, err := screen()
		if err == nil && !r.Empty() {
			mid := image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
			return centredRect(mid, size), true
		}
		if err != nil && logger != nil {
			logger.Warn("screen bounds unavailable", "error", err)
		}
	}
	return image.Rectangle{}, false
}

func centredRect(c image.Point, size int) image.Rectangle {
	tl := image.Pt(c.X-size/2, c.Y-size/2)
	return image.Rectangle{Min: tl, Max: tl.Add(image.Pt(size, size))}
}

// transparencySupported reports whether the provider can honor a transparent
// framebuffer on this platform.
func transparencySupported(goos string) bool {
	switch goos {
	case "android", "ios", "js":
		return false
	}
	return true
}

// recentre moves win so that the pointer, given relative to the window, sits
// at the window centre.
func recentre(win WindowControl, cursorX, cursorY int) {
	wx, wy := win.Position()
	w, h := win.Size()
	win.SetPosition(wx+cursorX-w/2, wy+cursorY-h/2)
}

// pinWindow moves win onto area, given in physical pixels with scale physical
// pixels per device-independent pixel. It does nothing for an empty area.
func pinWindow(win WindowControl, area image.Rectangle, scale float64) bool {
	if area.Empty() {
		return false
	}
	if scale <= 0 {
		scale = 1
	}
	win.SetPosition(int(float64(area.Min.X)/scale), int(float64(area.Min.Y)/scale))
	return true
}

// configureWindow applies window hints before the loop starts.
func configureWindow(cfg *config.Config, logger *slog.Logger) {
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(cfg.WindowSize, cfg.WindowSize)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowFloating(cfg.Floating)
	ebiten.SetWindowDecorated(cfg.Decorated)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(true)
	if cfg.Transparent && !transparencySupported(runtime.GOOS) && logger != nil {
		logger.Warn("could not create transparent window", "os", runtime.GOOS)
	}
}
