package render

import (
	"math"

	tetra "github.com/jeroenbakker-atmind/marching-tetrahedra"
	"github.com/jeroenbakker-atmind/marching-tetrahedra/internal/d3"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	_ tetra.Field      = kdField{}
	_ kdtree.Interface = kdTriangles{}
	_ kdtree.Bounder   = kdTriangles{}
)

// NewKDField wraps an extracted mesh as a scalar field measuring the
// signed pseudo-distance to the surface: negative outside, positive
// inside (following the triangle normals). Backed by a kd-tree over
// triangle centroids, so lookups stay cheap on large meshes.
func NewKDField(m *tetra.Mesh) tetra.Field {
	mykd := make(kdTriangles, 0, len(m.Faces))
	for _, f := range m.Faces {
		mykd = append(mykd, kdTriangle{V: [3]r3.Vec{
			m.Verts[f.V1],
			m.Verts[f.V2],
			m.Verts[f.V3],
		}})
	}
	tree := kdtree.New(mykd, true)
	return kdField{tree: *tree}
}

type kdField struct {
	tree kdtree.Tree
}

// Evaluate implements tetra.Field.
func (s kdField) Evaluate(v r3.Vec) float64 {
	const eps = 1e-3
	triangle := s.nearest(v)
	minDist := math.MaxFloat64
	closest := r3.Vec{}
	for i := 0; i < 3; i++ {
		vDist := r3.Norm(r3.Sub(v, triangle.V[i]))
		if vDist < minDist {
			closest = triangle.V[i]
			minDist = vDist
		}
	}
	if minDist < eps {
		return 0
	}
	pointDir := r3.Sub(v, closest)
	n := triangle.Normal()
	alpha := math.Acos(r3.Cos(n, pointDir))
	// Points on the normal side of the nearest triangle are outside.
	return math.Copysign(minDist, alpha-math.Pi/2)
}

// nearest returns the triangle whose centroid is closest to v.
func (s kdField) nearest(v r3.Vec) kdTriangle {
	got, _ := s.tree.Nearest(kdTriangle{V: [3]r3.Vec{v, v, v}})
	return got.(kdTriangle)
}

type kdTriangles []kdTriangle

type kdTriangle Triangle3

func (k kdTriangles) Index(i int) kdtree.Comparable { return k[i] }

// Len returns the length of the list.
func (k kdTriangles) Len() int { return len(k) }

// Pivot partitions the list based on the dimension specified.
func (k kdTriangles) Pivot(d kdtree.Dim) int {
	p := kdPlane{dim: int(d), triangles: k}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// Slice returns a slice of the list using zero-based half open
// indexing equivalent to built-in slice indexing.
func (k kdTriangles) Slice(start, end int) kdtree.Interface {
	return k[start:end]
}

func (k kdTriangles) Bounds() *kdtree.Bounding {
	max := r3.Vec{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64}
	min := r3.Vec{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64}
	for _, tri := range k {
		tbounds := tri.Bounds()
		tmin := tbounds.Min.(kdTriangle)
		tmax := tbounds.Max.(kdTriangle)
		min = d3.MinElem(min, tmin.V[0])
		max = d3.MaxElem(max, tmax.V[0])
	}
	return &kdtree.Bounding{
		Min: kdTriangle{V: [3]r3.Vec{min, min, min}},
		Max: kdTriangle{V: [3]r3.Vec{max, max, max}},
	}
}

// Compare returns the signed distance of a from the plane passing
// through b and perpendicular to the dimension d.
func (a kdTriangle) Compare(b kdtree.Comparable, d kdtree.Dim) float64 {
	return kdComp(a, b.(kdTriangle), int(d))
}

// Dims returns the number of dimensions described in the Comparable.
func (k kdTriangle) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between the receiver
// and the parameter.
func (a kdTriangle) Distance(b kdtree.Comparable) float64 {
	return kdDist(a, b.(kdTriangle))
}

func (a kdTriangle) Bounds() *kdtree.Bounding {
	min := d3.MinElem(a.V[2], d3.MinElem(a.V[0], a.V[1]))
	max := d3.MaxElem(a.V[2], d3.MaxElem(a.V[0], a.V[1]))
	return &kdtree.Bounding{
		Min: kdTriangle{V: [3]r3.Vec{min, min, min}},
		Max: kdTriangle{V: [3]r3.Vec{max, max, max}},
	}
}

func (a kdTriangle) Normal() r3.Vec {
	return Triangle3(a).Normal()
}

// c = a.dim - b.dim over the triangle centroids.
func kdComp(a, b kdTriangle, dim int) (c float64) {
	switch dim {
	case 0:
		c = (a.V[0].X + a.V[1].X + a.V[2].X) - (b.V[0].X + b.V[1].X + b.V[2].X)
	case 1:
		c = (a.V[0].Y + a.V[1].Y + a.V[2].Y) - (b.V[0].Y + b.V[1].Y + b.V[2].Y)
	case 2:
		c = (a.V[0].Z + a.V[1].Z + a.V[2].Z) - (b.V[0].Z + b.V[1].Z + b.V[2].Z)
	}
	return c / 3
}

// returns euclidean squared norm distance between triangle centroids.
func kdDist(a, b kdTriangle) float64 {
	return r3.Norm2(r3.Sub(kdCentroid(a), kdCentroid(b)))
}

func kdCentroid(a kdTriangle) r3.Vec {
	v := r3.Vec{
		X: a.V[0].X + a.V[1].X + a.V[2].X,
		Y: a.V[0].Y + a.V[1].Y + a.V[2].Y,
		Z: a.V[0].Z + a.V[1].Z + a.V[2].Z,
	}
	return r3.Scale(1./3., v)
}

type kdPlane struct {
	dim       int
	triangles kdTriangles
}

func (p kdPlane) Less(i, j int) bool {
	return kdComp(p.triangles[i], p.triangles[j], p.dim) < 0
}
func (p kdPlane) Swap(i, j int) {
	p.triangles[i], p.triangles[j] = p.triangles[j], p.triangles[i]
}
func (p kdPlane) Len() int {
	return len(p.triangles)
}
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.triangles = p.triangles[start:end]
	return p
}
