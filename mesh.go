package tetra

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Face is a triangle given by three vertex indices. The index order
// carries the outward sense of the surface.
type Face struct {
	V1, V2, V3 int
}

// Edge joins two vertices by index.
type Edge struct {
	V1, V2 int
}

// Mesh is a triangle soup plus the boundary edges of each face.
// Vertices are not shared between faces: every face owns three freshly
// appended vertices, so len(Verts) == 3*len(Faces) == len(Edges).
type Mesh struct {
	Verts []r3.Vec
	Edges []Edge
	Faces []Face
}

// Hash returns a content hash of the mesh. Meshes produced by
// identical marches hash identically.
func (m *Mesh) Hash() uint64 {
	h := xxhash.New()
	var b [8]byte
	putF := func(f float64) {
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		h.Write(b[:])
	}
	putI := func(i int) {
		binary.LittleEndian.PutUint64(b[:], uint64(i))
		h.Write(b[:])
	}
	for _, v := range m.Verts {
		putF(v.X)
		putF(v.Y)
		putF(v.Z)
	}
	for _, e := range m.Edges {
		putI(e.V1)
		putI(e.V2)
	}
	for _, f := range m.Faces {
		putI(f.V1)
		putI(f.V2)
		putI(f.V3)
	}
	return h.Sum64()
}
