package render_test

import (
	"os"
	"path/filepath"
	"testing"

	sdfxsdf "github.com/deadsy/sdfx/sdf"
	"github.com/fogleman/fauxgl"
	tetra "github.com/jeroenbakker-atmind/marching-tetrahedra"
	"github.com/jeroenbakker-atmind/marching-tetrahedra/internal/d3"
	"github.com/jeroenbakker-atmind/marching-tetrahedra/render"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot/cmpimg"

	sdfxrender "github.com/deadsy/sdfx/render"
)

const benchQuality = 64

type viewConfig struct {
	// what position (point) to look at
	lookat r3.Vec
	// which way is up (direction)
	up r3.Vec
	// where the camera/eye located at (point)
	eyepos r3.Vec
	far    float64
	near   float64
}

// Two identical marches must render to identical images.
func TestRenderPNGDeterminism(t *testing.T) {
	dir := t.TempDir()
	view := viewConfig{
		up:     r3.Vec{Z: 1},
		eyepos: d3.Elem(3),
		near:   1,
		far:    10,
	}
	pngs := make([]string, 2)
	for i := range pngs {
		d := sphereDomain(8)
		mesh := d.MarchTetrahedra(sphereField, tetra.RefineBisect)
		stlPath := filepath.Join(dir, "sphere.stl")
		if err := render.CreateSTL(stlPath, render.NewMeshRenderer(mesh)); err != nil {
			t.Fatal(err)
		}
		pngs[i] = filepath.Join(dir, "sphere"+string(rune('0'+i))+".png")
		stlToPNG(t, stlPath, pngs[i], view)
	}
	if !equalImages(t, pngs[0], pngs[1]) {
		t.Error("identical marches rendered different images")
	}
}

func stlToPNG(t testing.TB, stlName, outputname string, view viewConfig) {
	mesh, err := fauxgl.LoadSTL(stlName)
	if err != nil {
		t.Fatal(err)
	}
	const (
		width, height = 960, 540 // output width and height in pixels
		scale         = 1        // optional supersampling
		fovy          = 30       // vertical field of view in degrees
	)

	var (
		far    = view.far
		near   = view.near
		eye    = fauxgl.V(view.eyepos.X, view.eyepos.Y, view.eyepos.Z) // camera position
		center = fauxgl.V(view.lookat.X, view.lookat.Y, view.lookat.Z) // view center position
		up     = fauxgl.V(view.up.X, view.up.Y, view.up.Z)             // up vector
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()                  // light direction
		color  = fauxgl.HexColor("#468966")                            // object color
	)

	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, near, far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	image := context.Image()
	image = resize.Resize(width, height, image, resize.Bilinear)
	if err := fauxgl.SavePNG(outputname, image); err != nil {
		t.Fatal(err)
	}
}

func equalImages(t *testing.T, png1, png2 string) bool {
	b1, err := os.ReadFile(png1)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := os.ReadFile(png2)
	if err != nil {
		t.Fatal(err)
	}
	equal, err := cmpimg.EqualApprox("png", b1, b2, 0)
	if err != nil {
		t.Fatal(err)
	}
	return equal
}

func BenchmarkSDFXSphere(b *testing.B) {
	stdout := os.Stdout
	defer func() {
		os.Stdout = stdout // pesky sdfx prints out stuff
	}()
	os.Stdout, _ = os.Open(os.DevNull)
	const output = "sdfx_sphere.stl"
	object, _ := sdfxsdf.Sphere3D(1)
	for i := 0; i < b.N; i++ {
		sdfxrender.ToSTL(object, benchQuality, output, &sdfxrender.MarchingCubesOctree{})
	}
	os.Remove(output)
}

func BenchmarkMarchSphere(b *testing.B) {
	const output = "our_sphere.stl"
	for i := 0; i < b.N; i++ {
		d := sphereDomain(benchQuality)
		mesh := d.MarchTetrahedra(sphereField, tetra.RefineBisect)
		render.CreateSTL(output, render.NewMeshRenderer(mesh))
	}
	os.Remove(output)
}
