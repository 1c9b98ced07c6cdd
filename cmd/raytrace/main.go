// raytrace renders a scene with the BVH-accelerated ray tracing core and
// writes it to a PNG/BMP, or previews it live in the terminal. Pass
// -debug-overlay to draw each mesh's BVH root bounds and point light
// markers on top of the rendered frame.
//
// Controls in -live mode:
//
//	W/S/A/D  - Orbit pitch/yaw
//	+/-      - Dolly in/out
//	R        - Reset orbit
//	Esc      - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/nullforge/raytracer/pkg/geom"
	"github.com/nullforge/raytracer/pkg/math3d"
	"github.com/nullforge/raytracer/pkg/models"
	"github.com/nullforge/raytracer/pkg/render"
	"github.com/nullforge/raytracer/pkg/scene"
	"github.com/nullforge/raytracer/pkg/shading"
)

var (
	modelPath    = flag.String("model", "", "Path to a .obj or .glb/.gltf mesh (default: built-in cube scene)")
	outPath      = flag.String("out", "RayTracing_Buffer.bmp", "Output image path (.bmp or .png)")
	width        = flag.Int("width", 640, "Image width in pixels")
	height       = flag.Int("height", 480, "Image height in pixels")
	lightingFlag = flag.String("lighting", "combined", "Lighting mode: observed, radiance, brdf, combined")
	shadows      = flag.Bool("shadows", true, "Enable shadow rays")
	workers      = flag.Int("workers", 0, "Render worker count (0 = runtime.NumCPU())")
	live         = flag.Bool("live", false, "Preview interactively in the terminal instead of writing a file")
	fps          = flag.Int("fps", 30, "Target FPS for -live mode")
	debugOverlay = flag.Bool("debug-overlay", false, "Draw mesh BVH bounds and light markers over the render")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseLightingMode(s string) (shading.LightingMode, error) {
	switch strings.ToLower(s) {
	case "observed", "observedarea":
		return shading.ObservedArea, nil
	case "radiance":
		return shading.Radiance, nil
	case "brdf":
		return shading.BRDF, nil
	case "combined":
		return shading.Combined, nil
	default:
		return 0, fmt.Errorf("unknown lighting mode %q", s)
	}
}

func loadModel(path string) (*geom.TriangleMesh, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".obj":
		return models.LoadOBJ(path, geom.CullBackFace, 0)
	case ".glb", ".gltf":
		return models.LoadGLTF(path, geom.CullBackFace, 0)
	default:
		return nil, fmt.Errorf("unsupported model format %q (use .obj or .glb/.gltf)", ext)
	}
}

// buildCubeMesh returns the 12-triangle, 8-vertex unit cube used as the
// default scene when no -model is given.
func buildCubeMesh() *geom.TriangleMesh {
	v := [8]math3d.Vec3{
		math3d.V3(-1, -1, -1), math3d.V3(1, -1, -1), math3d.V3(1, 1, -1), math3d.V3(-1, 1, -1),
		math3d.V3(-1, -1, 1), math3d.V3(1, -1, 1), math3d.V3(1, 1, 1), math3d.V3(-1, 1, 1),
	}
	positions := v[:]
	indices := []int{
		0, 1, 2, 0, 2, 3, // back
		5, 4, 7, 5, 7, 6, // front
		4, 0, 3, 4, 3, 7, // left
		1, 5, 6, 1, 6, 2, // right
		3, 2, 6, 3, 6, 7, // top
		4, 5, 1, 4, 1, 0, // bottom
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

func buildScene(mesh *geom.TriangleMesh) *scene.Scene {
	sc := scene.New()
	sc.Meshes = append(sc.Meshes, scene.NewMeshInstance(mesh))
	sc.Materials = []scene.Material{scene.DefaultMaterial()}
	sc.Lights = []scene.Light{
		{
			Type:      scene.Point,
			Origin:    math3d.V3(4, 5, -3),
			Color:     math3d.ColorRGB{R: 1, G: 1, B: 1},
			Intensity: 40,
		},
		{
			Type:      scene.Directional,
			Direction: math3d.V3(-0.3, -1, 0.2).Normalize(),
			Color:     math3d.ColorRGB{R: 0.3, G: 0.35, B: 0.45},
			Intensity: 1,
		},
	}
	return sc
}

// drawDebugOverlay projects each mesh's BVH root bounds and each point
// light's position through cam onto fb, for -debug-overlay.
func drawDebugOverlay(sc *scene.Scene, cam *render.Camera, fb *render.Framebuffer) {
	overlay := render.NewDebugOverlay(cam, fb)
	for _, mi := range sc.Meshes {
		overlay.DrawAABB(mi.BVH.Nodes[0].Bounds, render.ColorGreen)
	}
	for _, light := range sc.Lights {
		if light.Type == scene.Point {
			overlay.DrawPoint(light.Origin, 0.3, render.ColorYellow)
		}
	}
}

func run() error {
	lightingMode, err := parseLightingMode(*lightingFlag)
	if err != nil {
		return err
	}

	var mesh *geom.TriangleMesh
	if *modelPath != "" {
		mesh, err = loadModel(*modelPath)
		if err != nil {
			return fmt.Errorf("load model: %w", err)
		}
	} else {
		mesh = buildCubeMesh()
	}

	sc := buildScene(mesh)

	cam := render.NewCamera(math3d.V3(0, 1.5, -5), 50)
	cam.SetOrientation(-0.15, 0)

	if *live {
		return runLive(sc, cam, lightingMode)
	}
	return runOnce(sc, cam, lightingMode)
}

func runOnce(sc *scene.Scene, cam *render.Camera, mode shading.LightingMode) error {
	fb := render.NewFramebuffer(*width, *height)
	rr := render.NewRenderer(cam, sc, fb)
	rr.LightingMode = mode
	rr.ShadowsEnabled = *shadows
	rr.Workers = *workers

	start := time.Now()
	rr.RenderFrame()
	fmt.Fprintf(os.Stderr, "Rendered %dx%d in %s\n", *width, *height, time.Since(start))

	if *debugOverlay {
		drawDebugOverlay(sc, cam, fb)
	}

	switch strings.ToLower(filepath.Ext(*outPath)) {
	case ".png":
		return fb.SavePNG(*outPath)
	default:
		return fb.SaveBMP(*outPath)
	}
}

// orbitAxis tracks a pitch/yaw-style angle with harmonica spring decay of
// its velocity, so key taps coast to a stop instead of snapping.
type orbitAxis struct {
	Position  float64
	Velocity  float64
	spring    harmonica.Spring
	springVel float64
}

func newOrbitAxis(fps int) orbitAxis {
	return orbitAxis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *orbitAxis) update() {
	a.Position += a.Velocity
	a.Velocity, a.springVel = a.spring.Update(a.Velocity, a.springVel, 0)
}

func runLive(sc *scene.Scene, cam *render.Camera, mode shading.LightingMode) error {
	term := uv.DefaultTerminal()

	termWidth, termHeight, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(termWidth, termHeight)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	fbWidth, fbHeight := termWidth, termHeight*2
	fb := render.NewFramebuffer(fbWidth, fbHeight)
	sink := render.NewTerminalSink(fb)

	rr := render.NewRenderer(cam, sc, fb)
	rr.LightingMode = mode
	rr.ShadowsEnabled = *shadows
	rr.Workers = *workers

	pitch := newOrbitAxis(*fps)
	yaw := newOrbitAxis(*fps)
	pitch.Position, yaw.Position = -0.15, 0
	radius := 5.0

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	const torque = 2.5
	var inputPitch, inputYaw float64

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				termWidth, termHeight = ev.Width, ev.Height
				term.Erase()
				term.Resize(termWidth, termHeight)
				fbWidth, fbHeight = termWidth, termHeight*2
				fb = render.NewFramebuffer(fbWidth, fbHeight)
				sink = render.NewTerminalSink(fb)
				rr.Framebuffer = fb

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("w", "up"):
					inputPitch = -torque
				case ev.MatchString("s", "down"):
					inputPitch = torque
				case ev.MatchString("a", "left"):
					inputYaw = -torque
				case ev.MatchString("d", "right"):
					inputYaw = torque
				case ev.MatchString("+", "="):
					radius = math.Max(1, radius-0.3)
				case ev.MatchString("-", "_"):
					radius = math.Min(30, radius+0.3)
				case ev.MatchString("r"):
					pitch = newOrbitAxis(*fps)
					yaw = newOrbitAxis(*fps)
					pitch.Position, yaw.Position = -0.15, 0
					radius = 5.0
				}

			case uv.KeyReleaseEvent:
				switch {
				case ev.MatchString("w"), ev.MatchString("up"), ev.MatchString("s"), ev.MatchString("down"):
					inputPitch = 0
				case ev.MatchString("a"), ev.MatchString("left"), ev.MatchString("d"), ev.MatchString("right"):
					inputYaw = 0
				}
			}
		}
	}()

	target := time.Second / time.Duration(*fps)
	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		frameStart := time.Now()

		pitch.Velocity += inputPitch * target.Seconds()
		yaw.Velocity += inputYaw * target.Seconds()
		pitch.update()
		yaw.update()

		orbit := math3d.RotateY(yaw.Position).MulVec3Dir(math3d.V3(0, 0, -radius))
		origin := math3d.V3(0, 1.5, 0).Add(orbit)
		cam.SetOrigin(origin)
		cam.SetOrientation(pitch.Position, yaw.Position)

		rr.RenderFrame()
		if *debugOverlay {
			drawDebugOverlay(sc, cam, fb)
		}

		var area uv.Rectangle
		area.Max.X, area.Max.Y = termWidth, termHeight

		term.Erase()
		sink.Present(term, area)
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		if elapsed := time.Since(frameStart); elapsed < target {
			time.Sleep(target - elapsed)
		}
	}
}
