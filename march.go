package tetra

import "gonum.org/v1/gonum/spatial/r3"

// MarchTetrahedra extracts the iso-surface of f over the domain,
// appends the resulting mesh to d.Meshes and returns it. Every cell is
// split into five tetrahedra; a tetrahedron crossed by the surface
// contributes one or two triangles whose vertices the refiner places
// on the crossing edges. The marcher is total: any finite input yields
// a mesh, and non-finite field values propagate into vertex positions
// without halting extraction.
func (d *Domain) MarchTetrahedra(f Field, refine Refiner) *Mesh {
	mesh := &Mesh{}
	sweep := d.vertexGridSize()
	if d.ClampSweep {
		sweep = V3i{d.Nx, d.Ny, d.Nz}
	}
	var (
		positions [8]r3.Vec
		inside    [8]bool
	)
	for x := 0; x < sweep[0]; x++ {
		for y := 0; y < sweep[1]; y++ {
			for z := 0; z < sweep[2]; z++ {
				cell := V3i{x, y, z}
				offsets, gridInverse := cellVertOffsets(cell)
				for i, offset := range offsets {
					positions[i] = d.VertexPosition(cell.Add(offset))
					inside[i] = f.Evaluate(positions[i]) > d.Iso
				}
				for _, tet := range cellToTets {
					d.marchTet(mesh, f, refine, &positions, &inside, tet, gridInverse)
				}
			}
		}
	}
	d.Meshes = append(d.Meshes, mesh)
	return mesh
}

// marchTet classifies one tetrahedron and appends its triangles to the
// mesh.
func (d *Domain) marchTet(mesh *Mesh, f Field, refine Refiner, positions *[8]r3.Vec, inside *[8]bool, tet [4]int, gridInverse bool) {
	mask := 0
	for i, corner := range tet {
		if inside[corner] {
			mask |= 1 << i
		}
	}
	compressed := mask
	if mask > 7 {
		compressed = 15 - mask
	}
	inverted := (mask > 7) != gridInverse

	pattern := &vmaskToTriEdges[compressed]
	for face := 0; face < 2; face++ {
		e1, e2, e3 := pattern[face*3], pattern[face*3+1], pattern[face*3+2]
		if e1 == -1 {
			// No faces left to add for this tetrahedron.
			break
		}
		base := len(mesh.Verts)
		if inverted {
			// Swapping the second and third vertex reverses the
			// winding for the inverse vert masks.
			mesh.Faces = append(mesh.Faces, Face{V1: base, V2: base + 2, V3: base + 1})
		} else {
			mesh.Faces = append(mesh.Faces, Face{V1: base, V2: base + 1, V3: base + 2})
		}
		mesh.Edges = append(mesh.Edges,
			Edge{V1: base, V2: base + 1},
			Edge{V1: base + 1, V2: base + 2},
			Edge{V1: base + 2, V2: base},
		)
		for _, e := range [3]int{e1, e2, e3} {
			a, b := tetEdges[e][0], tetEdges[e][1]
			p1 := positions[tet[a]]
			p2 := positions[tet[b]]
			mesh.Verts = append(mesh.Verts, refine(p1, p2, f, d.Iso))
		}
	}
}
