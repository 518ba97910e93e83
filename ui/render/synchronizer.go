package render

import (
	"github.com/soocke/radial-select-go/config"
	"github.com/soocke/radial-select-go/domain/geometry"
)

// Frame is the per-frame draw parameter set handed to the ring shader.
// It is rebuilt from the live cursor sample every frame.
type Frame struct {
	Width, Height int
	Mouse         geometry.Point
	Menu          geometry.Menu
	Active        geometry.Result
	Palette       config.Palette
}

// ActiveCode is the ActiveSegment uniform value.
func (f Frame) ActiveCode() int { return f.Active.Code(f.Menu.Segments) }

// Uniforms returns f keyed by the shader's uniform names.
func (f Frame) Uniforms() map[string]any {
	return map[string]any{
		"ViewportSize":    []float32{float32(f.Width), float32(f.Height)},
		"MousePos":        []float32{float32(f.Mouse.X), float32(f.Mouse.Y)},
		"Segments":        float32(f.Menu.Segments),
		"ActiveSegment":   float32(f.ActiveCode()),
		"InnerRadius":     float32(f.Menu.InnerRadius),
		"OuterRadius":     float32(f.Menu.OuterRadius),
		"BorderWidth":     float32(f.Menu.BorderWidth),
		"ActiveColor":     f.Palette.Active.Slice(),
		"InactiveColor":   f.Palette.Inactive.Slice(),
		"BackgroundColor": f.Palette.Background.Slice(),
	}
}

// Synchronizer recomputes the active segment for the current pointer sample.
// Classification itself lives in geometry; this only re-invokes it.
type Synchronizer struct {
	menu    geometry.Menu
	palette config.Palette
}

// NewSynchronizer builds a Synchronizer for a fixed menu and palette.
func NewSynchronizer(menu geometry.Menu, palette config.Palette) *Synchronizer {
	return &Synchronizer{menu: menu, palette: palette}
}

// Frame classifies the cursor for a width x height viewport.
func (s *Synchronizer) Frame(cursorX, cursorY float64, width, height int) Frame {
	p := geometry.Normalize(cursorX, cursorY, width, height)
	return Frame{
		Width:   width,
		Height:  height,
		Mouse:   p,
		Menu:    s.menu,
		Active:  geometry.Classify(geometry.ToPolar(p), s.menu),
		Palette: s.palette,
	}
}
