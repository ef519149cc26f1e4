// Package face maps the animation progress value onto facial geometry.
// Everything here is a pure function of progress; selection only decides
// whether a mouth exists at all.
package face

import (
	"fmt"
	"math"
)

// Rest positions of the three expressions.
const (
	PosFrown   = 0.0
	PosNeutral = 1.0
	PosSmile   = 2.0
)

// Eye travel in pixels of the eye row.
const EyeTravel = 10.0

// Mouth geometry inside a 32x32 viewbox. Y grows downward.
const (
	ViewBox    = 32.0
	MouthLeft  = 5.0
	MouthRight = 27.0
	MouthTop   = 6.0  // control point for a frown
	MouthBase  = 16.0 // endpoints and the neutral control point
	MouthLow   = 26.0 // control point for a smile
)

var positions = []float64{PosFrown, PosNeutral, PosSmile}

// Interpolate maps x through the piecewise-linear function defined by the
// control points (in[i], out[i]). Outside [in[0], in[last]] it holds the
// boundary value. in must be ascending and the same length as out.
func Interpolate(x float64, in, out []float64) float64 {
	if len(in) < 2 || len(in) != len(out) {
		panic(fmt.Sprintf("face: interpolate needs matching ranges of at least 2 points, got %d and %d", len(in), len(out)))
	}
	if math.IsNaN(x) || x <= in[0] {
		return out[0]
	}
	last := len(in) - 1
	if x >= in[last] {
		return out[last]
	}
	for i := 1; i <= last; i++ {
		if x > in[i] {
			continue
		}
		span := in[i] - in[i-1]
		if span == 0 {
			return out[i]
		}
		t := (x - in[i-1]) / span
		return out[i-1] + t*(out[i]-out[i-1])
	}
	return out[last]
}

// EyeOffsets returns the horizontal displacement of each eye.
func EyeOffsets(p float64) (left, right float64) {
	left = Interpolate(p, positions, []float64{-EyeTravel, 0, EyeTravel})
	right = Interpolate(p, positions, []float64{EyeTravel, 0, -EyeTravel})
	return left, right
}

// Point is a 2D coordinate in viewbox units.
type Point struct {
	X, Y float64
}

// Curve is a quadratic Bezier from Start through Control to End.
type Curve struct {
	Start, Control, End Point
}

// Mouth returns the mouth curve for progress p.
func Mouth(p float64) Curve {
	y := Interpolate(p, positions, []float64{MouthTop, MouthBase, MouthLow})
	return Curve{
		Start:   Point{MouthLeft, MouthBase},
		Control: Point{(MouthLeft + MouthRight) / 2, y},
		End:     Point{MouthRight, MouthBase},
	}
}

// Point evaluates the curve at t in [0, 1].
func (c Curve) Point(t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*c.Start.X + 2*u*t*c.Control.X + t*t*c.End.X,
		Y: u*u*c.Start.Y + 2*u*t*c.Control.Y + t*t*c.End.Y,
	}
}

// Sample returns n+1 evenly spaced points from Start to End.
func (c Curve) Sample(n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		pts = append(pts, c.Point(float64(i)/float64(n)))
	}
	return pts
}

// Path renders the curve as an SVG path.
func (c Curve) Path() string {
	return fmt.Sprintf("M%g,%g Q%g,%g %g,%g",
		c.Start.X, c.Start.Y, c.Control.X, c.Control.Y, c.End.X, c.End.Y)
}

// Expression names a rest state.
type Expression int

const (
	Frown Expression = iota
	Neutral
	Smile
)

func (e Expression) String() string {
	switch e {
	case Frown:
		return "frown"
	case Smile:
		return "smile"
	default:
		return "neutral"
	}
}

// ExpressionAt returns the rest state nearest to p.
func ExpressionAt(p float64) Expression {
	switch {
	case p <= (PosFrown+PosNeutral)/2:
		return Frown
	case p >= (PosNeutral+PosSmile)/2:
		return Smile
	default:
		return Neutral
	}
}

// Geometry is everything needed to draw one frame of the face.
type Geometry struct {
	Progress  float64
	LeftEye   float64
	RightEye  float64
	Mouth     Curve
	ShowMouth bool
}

// Snapshot computes the face geometry for progress p. Mouth is left zero
// when showMouth is false.
func Snapshot(p float64, showMouth bool) Geometry {
	g := Geometry{Progress: p, ShowMouth: showMouth}
	g.LeftEye, g.RightEye = EyeOffsets(p)
	if showMouth {
		g.Mouth = Mouth(p)
	}
	return g
}
