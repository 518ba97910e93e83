package geometry

import (
	"fmt"
	"math"
)

// Menu holds the ring geometry shared by the decision path and the shader.
// Radii and border width are in normalized viewport units.
type Menu struct {
	Segments    int
	InnerRadius float64
	OuterRadius float64
	BorderWidth float64
}

// DefaultMenu returns the stock ten-segment ring.
func DefaultMenu() Menu {
	return Menu{Segments: 10, InnerRadius: 0.1, OuterRadius: 0.4, BorderWidth: 0.01}
}

// Outside reports whether p lies on or beyond the outer ring boundary.
func (m Menu) Outside(p Polar) bool { return p.Radius >= m.OuterRadius }

// WedgeWidth is the angular size of one segment.
func (m Menu) WedgeWidth() float64 { return 2 * math.Pi / float64(m.segments()) }

func (m Menu) segments() int {
	if m.Segments < 1 {
		return 1
	}
	return m.Segments
}

// Result is a classifier answer: a segment index or the centre dead zone.
// The zero value is Segment(0).
type Result struct {
	index  int
	center bool
}

// Segment returns the Result for wedge i.
func Segment(i int) Result { return Result{index: i} }

// Center is the Result for a pointer inside the inner radius.
var Center = Result{center: true}

// IsCenter reports whether r is the dead zone.
func (r Result) IsCenter() bool { return r.center }

// Index returns the wedge index; ok is false for Center.
func (r Result) Index() (int, bool) {
	if r.center {
		return 0, false
	}
	return r.index, true
}

// Code encodes r for the shader uniform: the wedge index, or segments for Center.
func (r Result) Code(segments int) int {
	if r.center {
		return segments
	}
	return r.index
}

func (r Result) String() string {
	if r.center {
		return "center"
	}
	return fmt.Sprintf("segment(%d)", r.index)
}

// Classify partitions polar space into Center and equal counter-clockwise
// wedges, wedge 0 starting at angle 0. It has no state and never returns an
// index outside [0, Segments).
func Classify(p Polar, m Menu) Result {
	if p.Radius < m.InnerRadius {
		return Center
	}
	return Segment(WedgeIndex(p.Angle, m.segments()))
}

// WedgeIndex is floor(angle / 2π * n) clamped into [0, n).
func WedgeIndex(angle float64, n int) int {
	if n < 1 {
		n = 1
	}
	if math.IsNaN(angle) || angle < 0 {
		return 0
	}
	i := int(math.Floor(angle / (2 * math.Pi) * float64(n)))
	if i >= n {
		return n - 1
	}
	if i < 0 {
		return 0
	}
	return i
}

// WedgeMid returns the bisecting angle of wedge i out of n.
func WedgeMid(i, n int) float64 {
	if n < 1 {
		n = 1
	}
	return (float64(i) + 0.5) * 2 * math.Pi / float64(n)
}
