package render

import (
	"github.com/nullforge/raytracer/pkg/geom"
	"github.com/nullforge/raytracer/pkg/math3d"
)

// DebugOverlay draws wireframe diagnostics (BVH bounds, light markers) on
// top of a rendered frame, projected through the same camera used to cast
// the primary rays.
type DebugOverlay struct {
	camera *Camera
	fb     *Framebuffer
}

// NewDebugOverlay creates an overlay drawing into fb through camera.
func NewDebugOverlay(camera *Camera, fb *Framebuffer) *DebugOverlay {
	return &DebugOverlay{camera: camera, fb: fb}
}

// DrawLine3D projects both endpoints and draws the visible segment. Points
// behind the camera are skipped entirely rather than clipped.
func (d *DebugOverlay) DrawLine3D(p1, p2 math3d.Vec3, color Color) {
	x1, y1, vis1 := d.camera.WorldToScreen(p1, d.fb.Width, d.fb.Height)
	x2, y2, vis2 := d.camera.WorldToScreen(p2, d.fb.Width, d.fb.Height)
	if !vis1 || !vis2 {
		return
	}
	d.fb.DrawLine(int(x1), int(y1), int(x2), int(y2), color)
}

// DrawAABB draws the 12 edges of box's wireframe, for visualizing BVH node
// or mesh bounds over a rendered frame.
func (d *DebugOverlay) DrawAABB(box geom.AABB, color Color) {
	min, max := box.Min, box.Max
	vertices := [8]math3d.Vec3{
		math3d.V3(min.X, min.Y, min.Z),
		math3d.V3(max.X, min.Y, min.Z),
		math3d.V3(max.X, max.Y, min.Z),
		math3d.V3(min.X, max.Y, min.Z),
		math3d.V3(min.X, min.Y, max.Z),
		math3d.V3(max.X, min.Y, max.Z),
		math3d.V3(max.X, max.Y, max.Z),
		math3d.V3(min.X, max.Y, max.Z),
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, e := range edges {
		d.DrawLine3D(vertices[e[0]], vertices[e[1]], color)
	}
}

// DrawPoint draws a small 3-axis cross marker at pos, for visualizing
// light positions.
func (d *DebugOverlay) DrawPoint(pos math3d.Vec3, size float64, color Color) {
	half := size / 2
	d.DrawLine3D(math3d.V3(pos.X-half, pos.Y, pos.Z), math3d.V3(pos.X+half, pos.Y, pos.Z), color)
	d.DrawLine3D(math3d.V3(pos.X, pos.Y-half, pos.Z), math3d.V3(pos.X, pos.Y+half, pos.Z), color)
	d.DrawLine3D(math3d.V3(pos.X, pos.Y, pos.Z-half), math3d.V3(pos.X, pos.Y, pos.Z+half), color)
}
