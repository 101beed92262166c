package tetra

import "gonum.org/v1/gonum/spatial/r3"

// Refiner locates a point on the segment [p1, p2] whose field value is
// close to iso. Refiners never evaluate the field outside the segment.
type Refiner func(p1, p2 r3.Vec, f Field, iso float64) r3.Vec

// RefineMidpoint returns the segment midpoint. Adequate when the field
// is assumed linear along the edge.
func RefineMidpoint(p1, p2 r3.Vec, f Field, iso float64) r3.Vec {
	return r3.Scale(0.5, r3.Add(p1, p2))
}

// RefineBisect locates the iso crossing with a fixed 8-iteration
// binary search, resolving it to 1/256 of the edge length. If the
// segment does not bracket iso the result collapses toward one
// endpoint.
func RefineBisect(p1, p2 r3.Vec, f Field, iso float64) r3.Vec {
	left, right := p1, p2
	if f.Evaluate(left) > f.Evaluate(right) {
		left, right = right, left
	}
	center := left
	for i := 0; i < 8; i++ {
		center = RefineMidpoint(left, right, f, iso)
		if f.Evaluate(center) < iso {
			left = center
		} else {
			right = center
		}
	}
	return center
}
