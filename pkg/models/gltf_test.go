package models

import (
	"testing"

	"github.com/nullforge/raytracer/pkg/geom"
)

func TestLoadGLTFInvalidPath(t *testing.T) {
	_, err := LoadGLTF("/nonexistent/path.glb", geom.CullBackFace, 0)
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
}
