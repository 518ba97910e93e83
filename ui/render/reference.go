package render

import (
	"image"
	"math"

	"github.com/soocke/radial-select-go/config"
	"github.com/soocke/radial-select-go/domain/geometry"
)

// Shade is the CPU form of assets/ring.kage: the color of the pixel whose
// centre is at (x, y) for frame f. Both read the same Frame values.
func Shade(x, y float64, f Frame) config.RGBA {
	uv := geometry.Normalize(x, y, f.Width, f.Height)
	p := geometry.ToPolar(uv)
	m := f.Menu

	c := f.Palette.Inactive
	if geometry.Classify(p, m).Code(m.Segments) == f.ActiveCode() {
		c = f.Palette.Active
	}
	if OnBorder(p, m) || p.Radius < m.InnerRadius+m.BorderWidth || m.Outside(p) {
		c = f.Palette.Background
	}
	if p.Radius < m.InnerRadius {
		if f.Mouse.Radius() < m.InnerRadius {
			c = f.Palette.Active
		} else {
			c = f.Palette.Inactive
		}
	}
	return c
}

// OnBorder reports whether p is within half a border width of a wedge boundary ray.
func OnBorder(p geometry.Polar, m geometry.Menu) bool {
	step := m.WedgeWidth()
	edge := math.Floor(p.Angle/step+0.5) * step
	d := p.Radius * math.Sin(p.Angle-edge)
	return math.Abs(d) < m.BorderWidth/2 && p.Radius*math.Cos(p.Angle-edge) > 0
}

// Rasterize renders f into a new image with the CPU reference.
func Rasterize(f Frame) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			dst.SetNRGBA(x, y, Shade(float64(x)+0.5, float64(y)+0.5, f).NRGBA())
		}
	}
	return dst
}
