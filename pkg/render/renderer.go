package render

import (
	"math"
	"runtime"
	"sync"

	"github.com/nullforge/raytracer/pkg/geom"
	"github.com/nullforge/raytracer/pkg/math3d"
	"github.com/nullforge/raytracer/pkg/scene"
	"github.com/nullforge/raytracer/pkg/shading"
)

// shadowBias offsets a shadow ray's origin along the surface normal to
// avoid self-intersection with the surface it was cast from.
const shadowBias = 0.01

// Renderer drives a tile-parallel render of a Scene through a Camera into
// a Framebuffer. Workers of 1 gives a single-threaded fallback for
// debugging; 0 defaults to runtime.NumCPU().
type Renderer struct {
	Camera         *Camera
	Scene          *scene.Scene
	Framebuffer    *Framebuffer
	LightingMode   shading.LightingMode
	ShadowsEnabled bool
	Workers        int
}

// NewRenderer returns a Renderer with shadows enabled and Combined lighting.
func NewRenderer(cam *Camera, sc *scene.Scene, fb *Framebuffer) *Renderer {
	return &Renderer{
		Camera:         cam,
		Scene:          sc,
		Framebuffer:    fb,
		LightingMode:   shading.Combined,
		ShadowsEnabled: true,
	}
}

// RenderFrame partitions the framebuffer's W*H pixel index range across
// workers, each owning a contiguous slice with no shared writes, and
// blocks until every worker has finished.
func (rr *Renderer) RenderFrame() {
	width, height := rr.Framebuffer.Width, rr.Framebuffer.Height
	total := width * height

	workers := rr.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > total {
		workers = total
	}
	if workers < 1 {
		workers = 1
	}

	base := total / workers
	remainder := total % workers

	var wg sync.WaitGroup
	start := 0
	for w := 0; w < workers; w++ {
		count := base
		if w < remainder {
			count++
		}
		if count == 0 {
			continue
		}

		wg.Add(1)
		go func(start, count int) {
			defer wg.Done()
			for idx := start; idx < start+count; idx++ {
				px := idx % width
				py := idx / width
				rr.renderPixel(px, py, width, height)
			}
		}(start, count)
		start += count
	}
	wg.Wait()
}

func (rr *Renderer) renderPixel(px, py, width, height int) {
	ray := rr.Camera.GenerateRay(px, py, width, height)
	hit := rr.Scene.GetClosestHit(ray)
	if !hit.DidHit {
		rr.Framebuffer.SetColorRGB(px, py, math3d.Black())
		return
	}

	viewDir := ray.Dir.Negate()
	origin := hit.Point.Add(hit.Normal.Scale(shadowBias))
	accum := math3d.Black()

	for _, light := range rr.Scene.Lights {
		lDir, distSq, shadowRay := rr.lightSample(origin, light)

		if rr.ShadowsEnabled && rr.Scene.DoesHit(shadowRay) {
			continue
		}

		cosTheta := math.Max(0, lDir.Dot(hit.Normal))
		accum = accum.Add(rr.shade(hit, light, lDir, viewDir, distSq, cosTheta))
	}

	rr.Framebuffer.SetColorRGB(px, py, accum)
}

// lightSample returns the normalized direction toward light, the squared
// distance used for inverse-square falloff (1 for directional lights,
// which have none), and a shadow ray ready for Scene.DoesHit.
func (rr *Renderer) lightSample(origin math3d.Vec3, light scene.Light) (lDir math3d.Vec3, distSq float64, shadowRay geom.Ray) {
	if light.Type == scene.Directional {
		lDir = light.Direction.Negate().Normalize()
		return lDir, 1, geom.NewRay(origin, lDir)
	}

	toLight := light.Origin.Sub(origin)
	return toLight.Normalize(), toLight.LenSq(), geom.NewShadowRay(origin, toLight)
}

func (rr *Renderer) shade(hit geom.HitRecord, light scene.Light, lDir, viewDir math3d.Vec3, distSq, cosTheta float64) math3d.ColorRGB {
	switch rr.LightingMode {
	case shading.ObservedArea:
		return math3d.ColorRGB{R: 1, G: 1, B: 1}.Scale(cosTheta)
	case shading.Radiance:
		return light.Color.Scale(light.Intensity / distSq)
	case shading.BRDF:
		mat := rr.Scene.MaterialAt(hit.MaterialIndex)
		return mat.Shade(hit, lDir, viewDir)
	case shading.Combined:
		mat := rr.Scene.MaterialAt(hit.MaterialIndex)
		radiance := light.Color.Scale(light.Intensity / distSq)
		brdf := mat.Shade(hit, lDir, viewDir)
		return radiance.Mul(brdf).Scale(cosTheta)
	default:
		return math3d.Black()
	}
}
