package render

import (
	"io"

	tetra "github.com/jeroenbakker-atmind/marching-tetrahedra"
	"gonum.org/v1/gonum/spatial/r3"
)

// NewMeshRenderer returns a Renderer streaming the oriented triangles
// of an extracted mesh.
func NewMeshRenderer(m *tetra.Mesh) Renderer {
	return &meshRenderer{mesh: m}
}

type meshRenderer struct {
	mesh *tetra.Mesh
	next int // next face to stream
}

// ReadTriangles writes the mesh's triangles into the argument buffer.
// Returns the number of triangles written and io.EOF once the mesh is
// exhausted.
func (mr *meshRenderer) ReadTriangles(dst []Triangle3) (int, error) {
	if len(dst) == 0 {
		panic("cannot write to empty triangle slice")
	}
	faces := mr.mesh.Faces
	if mr.next >= len(faces) {
		return 0, io.EOF
	}
	n := 0
	for n < len(dst) && mr.next < len(faces) {
		face := faces[mr.next]
		dst[n] = Triangle3{V: [3]r3.Vec{
			mr.mesh.Verts[face.V1],
			mr.mesh.Verts[face.V2],
			mr.mesh.Verts[face.V3],
		}}
		n++
		mr.next++
	}
	return n, nil
}

// RenderAll reads the full contents of a Renderer and returns the
// slice read. It does not return error on io.EOF.
func RenderAll(r Renderer) ([]Triangle3, error) {
	var err error
	var nt int
	result := make([]Triangle3, 0, 1<<12)
	buf := make([]Triangle3, 1024)
	for {
		nt, err = r.ReadTriangles(buf)
		if err != nil {
			break
		}
		result = append(result, buf[:nt]...)
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}
