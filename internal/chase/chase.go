// Package chase moves a point toward a target at bounded speed.
package chase

import "vector2d/vec2"

// Step advances pos toward target by at most maxStep. It returns the new
// position and whether target was reached; a position within maxStep snaps
// onto the target so it never overshoots.
func Step(pos, target vec2.Vector2D, maxStep float32) (vec2.Vector2D, bool) {
	if vec2.Distance(pos, target) <= maxStep {
		return target, true
	}
	dir := vec2.Difference(target, pos).Normalized()
	dir.SetScale(maxStep)
	pos.Add(dir)
	return pos, false
}

// Heading returns the unit direction from pos to target, or zero when the
// two are too close to define one.
func Heading(pos, target vec2.Vector2D) vec2.Vector2D {
	return vec2.Difference(target, pos).Normalized()
}

// Farthest returns the candidate farthest from p. It returns p itself when
// there are no candidates.
func Farthest(p vec2.Vector2D, candidates ...vec2.Vector2D) vec2.Vector2D {
	best, bestDist := p, float32(-1)
	for _, c := range candidates {
		if d := vec2.Distance(p, c); d > bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
