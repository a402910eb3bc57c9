package vec2

import "math"

// Directions. Each call returns a fresh value, so mutating one never
// affects another caller.

func Zero() Vector2D  { return Vector2D{X: 0, Y: 0} }
func One() Vector2D   { return Vector2D{X: 1, Y: 1} }
func Left() Vector2D  { return Vector2D{X: -1, Y: 0} }
func Right() Vector2D { return Vector2D{X: 1, Y: 0} }
func Up() Vector2D    { return Vector2D{X: 0, Y: 1} }
func Down() Vector2D  { return Vector2D{X: 0, Y: -1} }

// Sum returns a + b.
func Sum(a, b Vector2D) Vector2D {
	a.Add(b)
	return a
}

// Difference returns a - b.
func Difference(a, b Vector2D) Vector2D {
	a.Subtract(b)
	return a
}

// Product returns the component-wise product of a and b.
func Product(a, b Vector2D) Vector2D {
	a.Multiply(b)
	return a
}

// Quotient returns the component-wise quotient a / b with IEEE-754
// division semantics.
func Quotient(a, b Vector2D) Vector2D {
	a.Divide(b)
	return a
}

// Scaled returns v multiplied by s.
func Scaled(v Vector2D, s float32) Vector2D {
	v.SetScale(s)
	return v
}

// Lerp interpolates from a to b. t is clamped to [0, 1]; a NaN t fails both
// comparisons and is used as is, which makes the result NaN.
func Lerp(a, b Vector2D, t float32) Vector2D {
	if float64(t) < 0 {
		t = 0
	}
	if float64(t) > 1 {
		t = 1
	}
	return Vector2D{
		X: a.X + float32((b.X-a.X)*t),
		Y: a.Y + float32((b.Y-a.Y)*t),
	}
}

// Dot returns the dot product, accumulated in float64.
func Dot(lhs, rhs Vector2D) float32 {
	return float32(float64(lhs.X)*float64(rhs.X) + float64(lhs.Y)*float64(rhs.Y))
}

// Distance returns the Euclidean distance between a and b, computed in
// float64 and narrowed.
func Distance(a, b Vector2D) float32 {
	dx := float64(b.X) - float64(a.X)
	dy := float64(b.Y) - float64(a.Y)
	return float32(math.Sqrt(float64(dx*dx) + float64(dy*dy)))
}
