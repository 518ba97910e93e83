package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/soocke/radial-select-go/config"
	"github.com/soocke/radial-select-go/domain/geometry"
	"github.com/soocke/radial-select-go/ui/render"
)

// writeSnapshot renders the ring with the pointer resting on segment 0 using
// the CPU reference of the shader and writes it as PNG.
func writeSnapshot(cfg *config.Config, path string) error {
	palette, err := cfg.Palette()
	if err != nil {
		return err
	}
	m := cfg.Menu()
	size := cfg.WindowSize
	p := geometry.FromPolar(geometry.Polar{Radius: (m.InnerRadius + m.OuterRadius) / 2, Angle: geometry.WedgeMid(0, m.Segments)})
	x, y := geometry.Denormalize(p, size, size)
	img := render.Rasterize(render.NewSynchronizer(m, palette).Frame(x, y, size, size))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}
