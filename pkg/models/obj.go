package models

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nullforge/raytracer/pkg/geom"
	"github.com/nullforge/raytracer/pkg/math3d"
)

// LoadOBJ parses a minimal Wavefront .obj file: "v x y z" vertex lines and
// "f i0 i1 i2 ..." face lines (1-based indices, fan-triangulated for
// n-gons), with per-face normals computed from winding order. Any other
// token ("vt", "vn", "usemtl", ...) is ignored, since the core has no
// texture or smooth-normal model to feed them into.
func LoadOBJ(path string, cull geom.CullMode, materialIndex int) (*geom.TriangleMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj file: %w", err)
	}
	defer f.Close()

	var positions []math3d.Vec3
	var indices []int

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "v":
			if len(parts) < 4 {
				return nil, fmt.Errorf("obj %s:%d: vertex needs 3 components", path, lineNo)
			}
			x, err1 := strconv.ParseFloat(parts[1], 64)
			y, err2 := strconv.ParseFloat(parts[2], 64)
			z, err3 := strconv.ParseFloat(parts[3], 64)
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, fmt.Errorf("obj %s:%d: malformed vertex", path, lineNo)
			}
			positions = append(positions, math3d.V3(x, y, z))

		case "f":
			faceIndices := make([]int, 0, len(parts)-1)
			for _, tok := range parts[1:] {
				// a face vertex may be "i", "i/vt" or "i/vt/vn" — only the
				// position index matters here.
				idxStr := tok
				if slash := strings.IndexByte(tok, '/'); slash >= 0 {
					idxStr = tok[:slash]
				}
				idx, err := strconv.Atoi(idxStr)
				if err != nil {
					return nil, fmt.Errorf("obj %s:%d: malformed face index %q", path, lineNo, tok)
				}
				if idx < 0 {
					idx = len(positions) + idx + 1
				}
				if idx < 1 || idx > len(positions) {
					return nil, fmt.Errorf("obj %s:%d: face index %d out of range", path, lineNo, idx)
				}
				faceIndices = append(faceIndices, idx-1)
			}
			if len(faceIndices) < 3 {
				return nil, fmt.Errorf("obj %s:%d: face needs at least 3 vertices", path, lineNo)
			}
			for i := 2; i < len(faceIndices); i++ {
				indices = append(indices, faceIndices[0], faceIndices[i-1], faceIndices[i])
			}

		default:
			// vt, vn, usemtl, mtllib, o, g, s — outside this loader's scope.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj file: %w", err)
	}

	if len(indices) == 0 {
		return nil, fmt.Errorf("obj %s: no faces found", path)
	}

	name := strings.TrimSuffix(path, ".obj")
	if slash := strings.LastIndexByte(name, '/'); slash >= 0 {
		name = name[slash+1:]
	}
	return buildTriangleMesh(name, positions, indices, cull, materialIndex), nil
}
