package loaders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
)

const cubeFaceOBJ = `# one face of a cube
o face
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
s off
f 1//1 2//1 3//1 4//1
`

func TestParseOBJ_Quad(t *testing.T) {
	data, err := ParseOBJ(strings.NewReader(cubeFaceOBJ))
	if err != nil {
		t.Fatalf("Failed to parse OBJ: %v", err)
	}

	if data.Name != "face" {
		t.Errorf("Expected name 'face', got %q", data.Name)
	}
	if len(data.Vertices) != 4 || len(data.Normals) != 1 {
		t.Fatalf("Expected 4 vertices and 1 normal, got %d and %d", len(data.Vertices), len(data.Normals))
	}

	expected := []geometry.Face{
		{V: [3]int{0, 1, 2}, N: [3]int{0, 0, 0}, Smooth: true},
		{V: [3]int{0, 2, 3}, N: [3]int{0, 0, 0}, Smooth: true},
	}
	if len(data.Faces) != len(expected) {
		t.Fatalf("Expected %d faces, got %d", len(expected), len(data.Faces))
	}
	for i, f := range expected {
		if data.Faces[i] != f {
			t.Errorf("Face %d: expected %+v, got %+v", i, f, data.Faces[i])
		}
	}
}

func TestParseOBJ_CornerForms(t *testing.T) {
	tests := []struct {
		name   string
		face   string
		v      [3]int
		smooth bool
	}{
		{"plain", "f 1 2 3", [3]int{0, 1, 2}, false},
		{"texture", "f 1/1 2/2 3/3", [3]int{0, 1, 2}, false},
		{"texture and normal", "f 1/1/1 2/2/1 3/3/1", [3]int{0, 1, 2}, true},
		{"normal only", "f 3//1 2//1 1//1", [3]int{2, 1, 0}, true},
		{"negative", "f -3 -2 -1", [3]int{0, 1, 2}, false},
		{"mixed normals", "f 1//1 2 3//1", [3]int{0, 1, 2}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nvn 0 0 1\n" + test.face + "\n"
			data, err := ParseOBJ(strings.NewReader(src))
			if err != nil {
				t.Fatalf("Failed to parse OBJ: %v", err)
			}
			if len(data.Faces) != 1 {
				t.Fatalf("Expected 1 face, got %d", len(data.Faces))
			}
			if data.Faces[0].V != test.v {
				t.Errorf("Expected vertices %v, got %v", test.v, data.Faces[0].V)
			}
			if data.Faces[0].Smooth != test.smooth {
				t.Errorf("Expected smooth=%v, got %v", test.smooth, data.Faces[0].Smooth)
			}
		})
	}
}

func TestParseOBJ_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"short vertex", "v 1 2\n"},
		{"bad coordinate", "v 1 x 2\n"},
		{"two corners", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"},
		{"missing normal", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1//1 2//1 3//1\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := ParseOBJ(strings.NewReader(test.src)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestLoadMesh(t *testing.T) {
	dir := t.TempDir()
	objFile := filepath.Join(dir, "face.obj")
	if err := os.WriteFile(objFile, []byte(cubeFaceOBJ), 0644); err != nil {
		t.Fatalf("Failed to write OBJ: %v", err)
	}

	mesh, err := LoadMesh(objFile)
	if err != nil {
		t.Fatalf("Failed to load mesh: %v", err)
	}
	if mesh.Len() != 2 {
		t.Errorf("Expected 2 triangles, got %d", mesh.Len())
	}

	hit, ok := mesh.Intersect(core.NewRay(core.NewVec3(0.5, 0.25, 2), core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("Expected ray to hit the face")
	}
	if !hit.Norm.ApproxEqual(core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Norm)
	}

	if _, err := LoadMesh(filepath.Join(dir, "face.stl")); err == nil {
		t.Error("Expected error for unsupported extension")
	}
	if _, err := LoadMesh(filepath.Join(dir, "missing.obj")); err == nil {
		t.Error("Expected error for missing file")
	}
}
