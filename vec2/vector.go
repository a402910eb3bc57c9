// Package vec2 provides a single-precision 2D vector value type.
//
// Methods on *Vector2D mutate the receiver in place. The free functions
// Sum, Difference, Product, Quotient and Scaled are the pure equivalents
// and leave their operands untouched. No operation panics or returns an
// error: division by zero and similar cases produce IEEE-754 Inf or NaN.
package vec2

import (
	"math"
	"strconv"
)

// normalizeThreshold is float32(1e-5) widened to float64 and cut to 15
// significant digits, so it sits just below float32(1e-5). Vectors whose
// magnitude does not exceed it normalize to zero.
const normalizeThreshold = 9.99999974737875e-06

// Vector2D is a simple 2D vector. Any pair of floats, NaN and Inf included,
// is a valid state.
type Vector2D struct{ X, Y float32 }

func New(x, y float32) Vector2D { return Vector2D{X: x, Y: y} }

// Copy returns an independent copy of v.
func Copy(v Vector2D) Vector2D { return Vector2D{X: v.X, Y: v.Y} }

func (v *Vector2D) SetX(x float32) { v.X = x }
func (v *Vector2D) SetY(y float32) { v.Y = y }

func (v *Vector2D) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// SetVector copies the current components of o into v.
func (v *Vector2D) SetVector(o Vector2D) {
	v.X = o.X
	v.Y = o.Y
}

func (v *Vector2D) Add(rhs Vector2D) {
	v.X += rhs.X
	v.Y += rhs.Y
}

func (v *Vector2D) Subtract(rhs Vector2D) {
	v.X -= rhs.X
	v.Y -= rhs.Y
}

// Multiply scales v component-wise by rhs.
func (v *Vector2D) Multiply(rhs Vector2D) {
	v.X *= rhs.X
	v.Y *= rhs.Y
}

// Divide divides v component-wise by rhs. A zero component in rhs yields
// ±Inf, or NaN when the matching component of v is also zero.
func (v *Vector2D) Divide(rhs Vector2D) {
	v.X /= rhs.X
	v.Y /= rhs.Y
}

func (v *Vector2D) SetScale(s float32) {
	v.X *= s
	v.Y *= s
}

// SetScaleVector is Multiply under the name used for scaling.
func (v *Vector2D) SetScaleVector(s Vector2D) {
	v.X *= s.X
	v.Y *= s.Y
}

// Equals reports exact component equality. There is no tolerance.
func (v Vector2D) Equals(rhs Vector2D) bool {
	return v.X == rhs.X && v.Y == rhs.Y
}

// SquaredMagnitude returns x² + y² in single precision.
func (v Vector2D) SquaredMagnitude() float32 {
	// Explicit conversions keep each square rounded to float32 before the
	// sum, so the compiler cannot fuse them into an FMA.
	return float32(v.X*v.X) + float32(v.Y*v.Y)
}

func (v Vector2D) Magnitude() float32 {
	return float32(math.Sqrt(float64(v.SquaredMagnitude())))
}

// Normalize scales v to unit length, or sets it to zero when its magnitude
// is too small to divide by.
func (v *Vector2D) Normalize() {
	m := v.Magnitude()
	if float64(m) > normalizeThreshold {
		v.X /= m
		v.Y /= m
		return
	}
	v.SetVector(Zero())
}

// Normalized returns a normalized copy of v.
func (v Vector2D) Normalized() Vector2D {
	n := Copy(v)
	n.Normalize()
	return n
}

// Perp returns v rotated 90° counter-clockwise.
func (v Vector2D) Perp() Vector2D { return Vector2D{X: -v.Y, Y: v.X} }

func (v Vector2D) String() string {
	return "(" + formatComponent(v.X) + ", " + formatComponent(v.Y) + ")"
}

func formatComponent(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
