// Package tetra extracts triangulated iso-surfaces from scalar fields
// sampled over a regular 3D grid using marching tetrahedra.
//
// The caller supplies a Field and a Domain describing the sampling
// region, resolution and iso-value. MarchTetrahedra walks the grid,
// splits every cell into five tetrahedra and emits triangles where the
// field crosses the iso-value as a Mesh of raw (unshared) vertices.
package tetra

import "gonum.org/v1/gonum/spatial/r3"

// Field is the interface to a scalar field defined over 3D space.
type Field interface {
	// Evaluate returns the field value at point p.
	Evaluate(p r3.Vec) float64
}

// FieldFunc adapts a plain function to the Field interface.
type FieldFunc func(p r3.Vec) float64

// Evaluate implements Field.
func (f FieldFunc) Evaluate(p r3.Vec) float64 { return f(p) }

// Force is a point source. Its contribution to the field at p is
// Force divided by the distance from Position to p.
type Force struct {
	Position r3.Vec
	Force    float64
}

// Forces is a scalar field summing the contributions of point sources.
// The field is undefined at the exact source positions.
type Forces []Force

// Evaluate implements Field.
func (forces Forces) Evaluate(p r3.Vec) float64 {
	total := 0.0
	for _, f := range forces {
		total += f.Force / r3.Norm(r3.Sub(p, f.Position))
	}
	return total
}
