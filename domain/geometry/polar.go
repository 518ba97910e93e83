package geometry

import "math"

// Point is a viewport position normalized to [-0.5, 0.5] on both axes with
// the origin at the viewport centre, x growing rightward and y growing upward.
type Point struct {
	X, Y float64
}

// Polar is a Point in polar form. Angle is counter-clockwise from +x in [0, 2π).
type Polar struct {
	Radius float64
	Angle  float64
}

// Normalize maps a cursor pixel position (top-left origin, y down) into a
// centred, y-up Point. A zero-sized viewport maps to the origin.
func Normalize(cursorX, cursorY float64, width, height int) Point {
	if width <= 0 || height <= 0 {
		return Point{}
	}
	return Point{
		X: cursorX/float64(width) - 0.5,
		Y: -(cursorY/float64(height) - 0.5),
	}
}

// Radius returns the Euclidean norm of p.
func (p Point) Radius() float64 { return math.Sqrt(p.X*p.X + p.Y*p.Y) }

// ToPolar converts p using the arccos/sign-branch form that the ring shader
// also evaluates. The origin has no direction; its angle is 0.
func ToPolar(p Point) Polar {
	r := p.Radius()
	if r == 0 {
		return Polar{}
	}
	var phi float64
	if p.Y < 0 {
		phi = math.Pi + math.Acos(clampUnit(-p.X/r))
	} else {
		phi = math.Acos(clampUnit(p.X / r))
	}
	if phi >= 2*math.Pi {
		phi -= 2 * math.Pi
	}
	return Polar{Radius: r, Angle: phi}
}

// PolarFromCursor is Normalize followed by ToPolar.
func PolarFromCursor(cursorX, cursorY float64, width, height int) Polar {
	return ToPolar(Normalize(cursorX, cursorY, width, height))
}

// FromPolar is the inverse of ToPolar.
func FromPolar(p Polar) Point {
	return Point{X: p.Radius * math.Cos(p.Angle), Y: p.Radius * math.Sin(p.Angle)}
}

// Denormalize maps p back to pixel coordinates in a width x height viewport.
func Denormalize(p Point, width, height int) (float64, float64) {
	return (p.X + 0.5) * float64(width), (0.5 - p.Y) * float64(height)
}

// clampUnit keeps rounding noise (|x/r| slightly above 1) out of Acos.
func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
