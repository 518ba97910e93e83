package app

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/soocke/radial-select-go/config"
	"github.com/soocke/radial-select-go/domain/geometry"
	"github.com/soocke/radial-select-go/ui/render"
)

// LabelDrawer draws the configured wedge labels over the ring.
type LabelDrawer struct {
	face   *text.GoTextFace
	color  color.NRGBA
	menu   geometry.Menu
	labels []string
}

// NewLabelDrawer loads the label font. An error means labels are disabled.
func NewLabelDrawer(cfg *config.Config) (*LabelDrawer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("label font: %w", err)
	}
	c, err := config.ParseColor(cfg.LabelColor)
	if err != nil {
		return nil, fmt.Errorf("label_color: %w", err)
	}
	return &LabelDrawer{
		face:   &text.GoTextFace{Source: src, Size: cfg.LabelSize},
		color:  c.NRGBA(),
		menu:   cfg.Menu(),
		labels: cfg.Labels,
	}, nil
}

// Draw renders each label centred on its wedge for a width x height viewport.
func (d *LabelDrawer) Draw(dst *ebiten.Image, width, height int) {
	if d == nil {
		return
	}
	for _, l := range render.LayoutLabels(d.menu, d.labels, width, height) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(l.X, l.Y)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(d.color)
		text.Draw(dst, l.Text, d.face, op)
	}
}
