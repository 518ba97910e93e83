package render

import "github.com/soocke/radial-select-go/domain/geometry"

// Label is a piece of text anchored (centred) at a pixel position.
type Label struct {
	Segment int
	Text    string
	X, Y    float64
}

// LayoutLabels places each non-empty label on its wedge's bisector at the
// ring's mid radius. Labels beyond the segment count are dropped.
func LayoutLabels(m geometry.Menu, labels []string, width, height int) []Label {
	if len(labels) == 0 || m.Segments < 1 {
		return nil
	}
	mid := (m.InnerRadius + m.OuterRadius) / 2
	out := make([]Label, 0, len(labels))
	for i, text := range labels {
		if i >= m.Segments {
			break
		}
		if text == "" {
			continue
		}
		p := geometry.FromPolar(geometry.Polar{Radius: mid, Angle: geometry.WedgeMid(i, m.Segments)})
		x, y := geometry.Denormalize(p, width, height)
		out = append(out, Label{Segment: i, Text: text, X: x, Y: y})
	}
	return out
}
