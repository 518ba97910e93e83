package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA is a straight-alpha color with channels in [0,1].
type RGBA [4]float32

// Slice returns the channels as a vec4 uniform value.
func (c RGBA) Slice() []float32 { return []float32{c[0], c[1], c[2], c[3]} }

// NRGBA converts c to an 8-bit straight-alpha color.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: to8(c[3])}
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Palette is the set of ring colors.
type Palette struct {
	Active     RGBA
	Inactive   RGBA
	Background RGBA
}

var errBadColor = errors.New("invalid color")

// ParseColor accepts "#RRGGBB", "#RRGGBBAA" or an SVG 1.1 color name.
func ParseColor(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGBA{}, fmt.Errorf("%w: empty", errBadColor)
	}
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return RGBA{}, fmt.Errorf("%w: unknown name %q", errBadColor, s)
		}
		return fromNRGBA(color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}), nil
	}
	hex := s[1:]
	switch len(hex) {
	case 6:
		hex += "ff"
	case 8:
	default:
		return RGBA{}, fmt.Errorf("%w: %q", errBadColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q", errBadColor, s)
	}
	return fromNRGBA(color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}), nil
}

func fromNRGBA(c color.NRGBA) RGBA {
	return RGBA{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}
