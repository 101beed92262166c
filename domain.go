package tetra

import "gonum.org/v1/gonum/spatial/r3"

// Domain is an axis-aligned extraction region sampled at a fixed
// resolution. From must be componentwise smaller than To and the cell
// counts must be positive; the marcher does not validate either.
type Domain struct {
	From, To r3.Vec

	// Iso is the surface weight. The extracted surface approximates
	// the set of points where the field equals Iso.
	Iso float64

	// Nx, Ny, Nz are cell counts along each axis. The vertex grid has
	// (Nx+1)(Ny+1)(Nz+1) samples.
	Nx, Ny, Nz int

	// ClampSweep restricts the cell sweep to the nominal Nx by Ny by
	// Nz cells. When false the sweep visits one extra cell along each
	// axis, sampling one row past To.
	ClampSweep bool

	// Meshes accumulates one mesh per MarchTetrahedra call.
	Meshes []*Mesh
}

// vertexGridSize returns the vertex sample counts per axis.
func (d *Domain) vertexGridSize() V3i {
	return V3i{d.Nx + 1, d.Ny + 1, d.Nz + 1}
}

// VertexPosition maps an integer grid coordinate to world space.
// Grid (0,0,0) maps to From and (Nx,Ny,Nz) maps to To.
func (d *Domain) VertexPosition(g V3i) r3.Vec {
	return r3.Vec{
		X: d.From.X + float64(g[0])*(d.To.X-d.From.X)/float64(d.Nx),
		Y: d.From.Y + float64(g[1])*(d.To.Y-d.From.Y)/float64(d.Ny),
		Z: d.From.Z + float64(g[2])*(d.To.Z-d.From.Z)/float64(d.Nz),
	}
}
