package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	tetra "github.com/jeroenbakker-atmind/marching-tetrahedra"
)

// WriteBpy writes meshes as a python script which, run inside the
// Blender interpreter, reconstructs each mesh as a scene object called
// name. Coordinates are printed with the default float-to-text
// conversion; index lists preserve the marcher's output order.
func WriteBpy(w io.Writer, name string, meshes ...*tetra.Mesh) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("import bpy\n\n")
	for _, m := range meshes {
		writeBpyMesh(bw, name, m)
	}
	return bw.Flush()
}

// writeBpyMesh emits the verts/edges/faces lists and the two
// statements constructing and linking the mesh object.
func writeBpyMesh(bw *bufio.Writer, name string, m *tetra.Mesh) {
	bw.WriteString("verts = [\n")
	for _, v := range m.Verts {
		fmt.Fprintf(bw, "  (%8g, %8g, %8g),\n", v.X, v.Y, v.Z)
	}
	bw.WriteString("]\n")
	bw.WriteString("edges = [\n")
	for _, e := range m.Edges {
		fmt.Fprintf(bw, "  (%4d, %4d),\n", e.V1, e.V2)
	}
	bw.WriteString("]\n")
	bw.WriteString("faces = [\n")
	for _, f := range m.Faces {
		fmt.Fprintf(bw, "  (%4d, %4d, %4d),\n", f.V1, f.V2, f.V3)
	}
	bw.WriteString("]\n")
	fmt.Fprintf(bw, "new_mesh = bpy.data.meshes.new('%s')\n", name)
	bw.WriteString("new_mesh.from_pydata(verts, edges, faces)\n\n")
	fmt.Fprintf(bw, "new_object = bpy.data.objects.new('%s', new_mesh)\n", name)
	bw.WriteString("bpy.context.scene.collection.objects.link(new_object)\n")
}

// ExportBpy writes the script form of all meshes accumulated in the
// domain.
func ExportBpy(w io.Writer, d *tetra.Domain, name string) error {
	return WriteBpy(w, name, d.Meshes...)
}

// CreateBpy writes meshes as a python script file.
func CreateBpy(path, name string, meshes ...*tetra.Mesh) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	return WriteBpy(fp, name, meshes...)
}
