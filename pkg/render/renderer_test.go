package render

import (
	"testing"

	"github.com/nullforge/raytracer/pkg/geom"
	"github.com/nullforge/raytracer/pkg/math3d"
	"github.com/nullforge/raytracer/pkg/scene"
	"github.com/nullforge/raytracer/pkg/shading"
)

func cubeTriangleMesh() *geom.TriangleMesh {
	v := [8]math3d.Vec3{
		math3d.V3(-1, -1, -1), math3d.V3(1, -1, -1), math3d.V3(1, 1, -1), math3d.V3(-1, 1, -1),
		math3d.V3(-1, -1, 1), math3d.V3(1, -1, 1), math3d.V3(1, 1, 1), math3d.V3(-1, 1, 1),
	}
	positions := v[:]
	indices := []int{
		0, 1, 2, 0, 2, 3,
		5, 4, 7, 5, 7, 6,
		4, 0, 3, 4, 3, 7,
		1, 5, 6, 1, 6, 2,
		3, 2, 6, 3, 6, 7,
		4, 5, 1, 4, 1, 0,
	}
	faceCount := len(indices) / 3
	normals := make([]math3d.Vec3, faceCount)
	for f := range faceCount {
		v0 := positions[indices[f*3]]
		v1 := positions[indices[f*3+1]]
		v2 := positions[indices[f*3+2]]
		normals[f] = v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	}
	return geom.NewTriangleMesh("cube", positions, normals, indices, geom.CullBackFace, 0)
}

// TestRenderCubeScene builds the 12-triangle cube scene and checks that the
// render driver produces a silhouette: pixels aimed at the cube are lit,
// pixels aimed past it stay black, and nothing crashes across workers.
func TestRenderCubeScene(t *testing.T) {
	sc := scene.New()
	sc.Meshes = []*scene.MeshInstance{scene.NewMeshInstance(cubeTriangleMesh())}
	sc.Materials = []scene.Material{scene.DefaultMaterial()}
	sc.Lights = []scene.Light{
		{Type: scene.Point, Origin: math3d.V3(5, 5, -5), Color: math3d.ColorRGB{R: 1, G: 1, B: 1}, Intensity: 60},
	}

	cam := NewCamera(math3d.V3(0, 0, -5), 60)
	fb := NewFramebuffer(64, 64)
	rr := NewRenderer(cam, sc, fb)
	rr.LightingMode = shading.Combined
	rr.ShadowsEnabled = true

	rr.RenderFrame()

	center := fb.GetPixel(32, 32)
	if center.R == 0 && center.G == 0 && center.B == 0 {
		t.Error("expected the cube silhouette to light the center pixel")
	}

	corner := fb.GetPixel(1, 1)
	if corner.R != 0 || corner.G != 0 || corner.B != 0 {
		t.Error("expected a corner pixel missing the cube to stay black")
	}
}

func TestRenderFrameSingleWorkerMatchesDefault(t *testing.T) {
	sc := scene.New()
	sc.Meshes = []*scene.MeshInstance{scene.NewMeshInstance(cubeTriangleMesh())}
	sc.Materials = []scene.Material{scene.DefaultMaterial()}
	sc.Lights = []scene.Light{
		{Type: scene.Directional, Direction: math3d.V3(0, 0, 1), Color: math3d.ColorRGB{R: 1, G: 1, B: 1}, Intensity: 1},
	}

	cam := NewCamera(math3d.V3(0, 0, -5), 60)

	fbParallel := NewFramebuffer(32, 32)
	rrParallel := NewRenderer(cam, sc, fbParallel)
	rrParallel.RenderFrame()

	fbSerial := NewFramebuffer(32, 32)
	rrSerial := NewRenderer(cam, sc, fbSerial)
	rrSerial.Workers = 1
	rrSerial.RenderFrame()

	for i := range fbParallel.Pixels {
		if fbParallel.Pixels[i] != fbSerial.Pixels[i] {
			t.Fatalf("pixel %d differs between parallel and single-worker render: %+v vs %+v",
				i, fbParallel.Pixels[i], fbSerial.Pixels[i])
		}
	}
}
