// Package render emits extracted meshes in consumable formats: a
// Blender python script, binary STL and binary glTF.
package render

import (
	"github.com/jeroenbakker-atmind/marching-tetrahedra/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer is a source of triangles read in the manner of io.Reader.
// ReadTriangles returns io.EOF once all triangles have been read.
type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}

// Triangle3 is a 3D triangle defined by its three vertices.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the unit normal implied by the vertex winding order.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Degenerate returns true if two of the triangle's vertices coincide
// within tol.
func (t Triangle3) Degenerate(tol float64) bool {
	return d3.EqualWithin(t.V[0], t.V[1], tol) ||
		d3.EqualWithin(t.V[1], t.V[2], tol) ||
		d3.EqualWithin(t.V[2], t.V[0], tol)
}
