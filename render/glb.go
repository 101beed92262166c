package render

import (
	tetra "github.com/jeroenbakker-atmind/marching-tetrahedra"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"gonum.org/v1/gonum/spatial/r3"
)

// CreateGLB writes the mesh as a binary glTF file holding a single
// scene object called name. Normals are flat per face; since the
// marcher never shares vertices between faces each vertex carries its
// face normal without conflicts.
func CreateGLB(path, name string, m *tetra.Mesh) error {
	positions := make([][3]float32, len(m.Verts))
	for i, v := range m.Verts {
		positions[i] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
	}

	indices := make([]uint32, 0, 3*len(m.Faces))
	normals := make([][3]float32, len(positions))
	for _, f := range m.Faces {
		indices = append(indices, uint32(f.V1), uint32(f.V2), uint32(f.V3))
		n := Triangle3{V: [3]r3.Vec{m.Verts[f.V1], m.Verts[f.V2], m.Verts[f.V3]}}.Normal()
		n32 := [3]float32{float32(n.X), float32(n.Y), float32(n.Z)}
		normals[f.V1] = n32
		normals[f.V2] = n32
		normals[f.V3] = n32
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "marching-tetrahedra"

	posAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	indicesAccessor := modeler.WriteIndices(doc, indices)

	prim := &gltf.Primitive{
		Attributes: map[string]int{
			gltf.POSITION: posAccessor,
			gltf.NORMAL:   normalAccessor,
		},
		Indices: gltf.Index(indicesAccessor),
	}

	pbr := &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float64{1, 1, 1, 1},
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(1),
	}
	doc.Materials = []*gltf.Material{{PBRMetallicRoughness: pbr, AlphaMode: gltf.AlphaOpaque}}
	prim.Material = gltf.Index(0)

	doc.Meshes = []*gltf.Mesh{{Name: name, Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Name: name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	return gltf.SaveBinary(doc, path)
}
