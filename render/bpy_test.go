package render_test

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	tetra "github.com/jeroenbakker-atmind/marching-tetrahedra"
	"github.com/jeroenbakker-atmind/marching-tetrahedra/render"
	"gonum.org/v1/gonum/spatial/r3"
)

var sphereField = tetra.FieldFunc(func(p r3.Vec) float64 { return 1 / r3.Norm(p) })

func sphereDomain(cells int) tetra.Domain {
	return tetra.Domain{
		From: r3.Vec{X: -2, Y: -2, Z: -2},
		To:   r3.Vec{X: 2, Y: 2, Z: 2},
		Iso:  1,
		Nx:   cells, Ny: cells, Nz: cells,
	}
}

func TestWriteBpy(t *testing.T) {
	d := sphereDomain(4)
	mesh := d.MarchTetrahedra(sphereField, tetra.RefineBisect)
	if len(mesh.Faces) == 0 {
		t.Fatal("no faces to export")
	}
	var b bytes.Buffer
	if err := render.WriteBpy(&b, "Marching", mesh); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	if !strings.HasPrefix(out, "import bpy\n\n") {
		t.Error("script does not start with the bpy import preamble")
	}
	for _, stmt := range []string{
		"verts = [",
		"edges = [",
		"faces = [",
		"new_mesh = bpy.data.meshes.new('Marching')",
		"new_mesh.from_pydata(verts, edges, faces)",
		"new_object = bpy.data.objects.new('Marching', new_mesh)",
		"bpy.context.scene.collection.objects.link(new_object)",
	} {
		if !strings.Contains(out, stmt) {
			t.Errorf("script missing %q", stmt)
		}
	}

	if got := countTupleLines(out, "verts = ["); got != len(mesh.Verts) {
		t.Errorf("verts list has %d entries, want %d", got, len(mesh.Verts))
	}
	if got := countTupleLines(out, "edges = ["); got != len(mesh.Edges) {
		t.Errorf("edges list has %d entries, want %d", got, len(mesh.Edges))
	}
	if got := countTupleLines(out, "faces = ["); got != len(mesh.Faces) {
		t.Errorf("faces list has %d entries, want %d", got, len(mesh.Faces))
	}

	// The first vertex line must carry the exact computed coordinates.
	v := mesh.Verts[0]
	wantLine := fmt.Sprintf("  (%8g, %8g, %8g),", v.X, v.Y, v.Z)
	if !strings.Contains(out, wantLine+"\n") {
		t.Errorf("script missing vertex line %q", wantLine)
	}
}

func TestExportBpyAllMeshes(t *testing.T) {
	d := sphereDomain(4)
	d.MarchTetrahedra(sphereField, tetra.RefineBisect)
	d.MarchTetrahedra(sphereField, tetra.RefineBisect)
	var b bytes.Buffer
	if err := render.ExportBpy(&b, &d, "Marching"); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if got := strings.Count(out, "from_pydata"); got != 2 {
		t.Errorf("script constructs %d meshes, want 2", got)
	}
	if got := strings.Count(out, "import bpy"); got != 1 {
		t.Errorf("script has %d import lines, want 1", got)
	}
}

func TestCreateBpy(t *testing.T) {
	d := sphereDomain(4)
	mesh := d.MarchTetrahedra(sphereField, tetra.RefineBisect)
	path := t.TempDir() + "/sphere.py"
	if err := render.CreateBpy(path, "Sphere", mesh); err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := render.WriteBpy(&b, "Sphere", mesh); err != nil {
		t.Fatal(err)
	}
	onDisk, err := readFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if onDisk != b.String() {
		t.Error("CreateBpy and WriteBpy output mismatch")
	}
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	return string(b), err
}

// countTupleLines counts the "  (...)," lines between header and the
// closing bracket.
func countTupleLines(script, header string) int {
	idx := strings.Index(script, header)
	if idx == -1 {
		return -1
	}
	count := 0
	for _, line := range strings.Split(script[idx+len(header):], "\n")[1:] {
		if line == "]" {
			return count
		}
		if strings.HasPrefix(line, "  (") {
			count++
		}
	}
	return -1
}
