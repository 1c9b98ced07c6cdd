// Package render provides the camera, framebuffer, and tile-parallel
// render driver that turn a scene into pixels.
package render

import (
	"math"

	"github.com/nullforge/raytracer/pkg/geom"
	"github.com/nullforge/raytracer/pkg/math3d"
)

// Camera is a pinhole camera. It caches its world-space basis and rebuilds
// it lazily after SetOrientation, SetOrigin or Translate; assigning the
// fields directly does not mark it dirty. FOVDegrees is not part of the
// basis and is read on every GenerateRay call.
type Camera struct {
	Origin     math3d.Vec3
	Pitch      float64 // radians, rotation around local X
	Yaw        float64 // radians, rotation around world Y
	FOVDegrees float64

	basisDirty    bool
	right         math3d.Vec3
	up            math3d.Vec3
	forward       math3d.Vec3
	cameraToWorld math3d.Mat4
}

// NewCamera returns a camera looking down +Z from the given origin.
func NewCamera(origin math3d.Vec3, fovDegrees float64) *Camera {
	return &Camera{Origin: origin, FOVDegrees: fovDegrees, basisDirty: true}
}

// SetOrientation sets pitch/yaw (radians) and marks the basis dirty.
func (c *Camera) SetOrientation(pitch, yaw float64) {
	c.Pitch = pitch
	c.Yaw = yaw
	c.basisDirty = true
}

// SetOrigin moves the camera and marks the basis dirty.
func (c *Camera) SetOrigin(origin math3d.Vec3) {
	c.Origin = origin
	c.basisDirty = true
}

// Translate moves the camera by a world-space offset.
func (c *Camera) Translate(delta math3d.Vec3) {
	c.Origin = c.Origin.Add(delta)
	c.basisDirty = true
}

// Forward returns the camera's current forward basis vector, recomputing
// the basis first if dirty.
func (c *Camera) Forward() math3d.Vec3 {
	c.ensureBasis()
	return c.forward
}

// Right returns the camera's current right basis vector.
func (c *Camera) Right() math3d.Vec3 {
	c.ensureBasis()
	return c.right
}

// Up returns the camera's current up basis vector.
func (c *Camera) Up() math3d.Vec3 {
	c.ensureBasis()
	return c.up
}

// ensureBasis rebuilds the left-handed camera basis from Pitch/Yaw when
// dirty: pitch is applied to a canonical +Z, then yaw, and right/up are
// rebuilt from the resulting forward — right = up_world x forward,
// up = forward x right.
func (c *Camera) ensureBasis() {
	if !c.basisDirty {
		return
	}

	rot := math3d.RotateY(c.Yaw).Mul(math3d.RotateX(c.Pitch))
	forward := rot.MulVec3Dir(math3d.V3(0, 0, 1)).Normalize()
	right := math3d.Up().Cross(forward).Normalize()
	up := forward.Cross(right).Normalize()

	c.forward = forward
	c.right = right
	c.up = up

	c.cameraToWorld = math3d.Mat4{
		right.X, right.Y, right.Z, 0,
		up.X, up.Y, up.Z, 0,
		forward.X, forward.Y, forward.Z, 0,
		c.Origin.X, c.Origin.Y, c.Origin.Z, 1,
	}
	c.basisDirty = false
}

// GenerateRay builds the primary ray for pixel (px, py) of a W x H image.
func (c *Camera) GenerateRay(px, py, width, height int) geom.Ray {
	c.ensureBasis()

	fovScale := math.Tan(c.FOVDegrees * math.Pi / 180 / 2)
	aspect := float64(width) / float64(height)

	cx := (2*(float64(px)+0.5)/float64(width) - 1) * aspect * fovScale
	cy := (1 - 2*(float64(py)+0.5)/float64(height)) * fovScale

	localDir := math3d.V3(cx, cy, 1)
	worldDir := c.cameraToWorld.MulVec3Dir(localDir).Normalize()

	return geom.NewRay(c.Origin, worldDir)
}

// WorldToScreen projects a world-space point into pixel coordinates using
// the same pinhole model GenerateRay builds rays from, run in reverse. It
// reports visible=false for points behind the camera. Used only by debug
// overlays (DrawAABB) — the render path never rasterizes.
func (c *Camera) WorldToScreen(p math3d.Vec3, width, height int) (x, y float64, visible bool) {
	c.ensureBasis()

	rel := p.Sub(c.Origin)
	localX := rel.Dot(c.right)
	localY := rel.Dot(c.up)
	localZ := rel.Dot(c.forward)

	if localZ <= 0 {
		return 0, 0, false
	}

	fovScale := math.Tan(c.FOVDegrees * math.Pi / 180 / 2)
	aspect := float64(width) / float64(height)

	cx := localX / localZ
	cy := localY / localZ

	x = float64(width)*(cx/(aspect*fovScale)+1)/2 - 0.5
	y = float64(height)*(1-cy/fovScale)/2 - 0.5
	return x, y, true
}
