package loaders

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// createTestPLY writes a unit square as two triangles in binary little endian
func createTestPLY(t *testing.T, filename string, includeNormals bool) {
	var buf bytes.Buffer

	buf.WriteString("ply\n")
	buf.WriteString("format binary_little_endian 1.0\n")
	buf.WriteString("comment unit square\n")
	buf.WriteString("element vertex 4\n")
	buf.WriteString("property float x\n")
	buf.WriteString("property float y\n")
	buf.WriteString("property float z\n")
	if includeNormals {
		buf.WriteString("property float nx\n")
		buf.WriteString("property float ny\n")
		buf.WriteString("property float nz\n")
	}
	buf.WriteString("property uchar red\n")
	buf.WriteString("element face 2\n")
	buf.WriteString("property list uchar int vertex_indices\n")
	buf.WriteString("end_header\n")

	vertices := [][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	for _, v := range vertices {
		binary.Write(&buf, binary.LittleEndian, v)
		if includeNormals {
			binary.Write(&buf, binary.LittleEndian, [3]float32{0, 0, 1})
		}
		buf.WriteByte(255)
	}

	for _, f := range [][3]int32{{0, 1, 2}, {0, 2, 3}} {
		buf.WriteByte(3)
		binary.Write(&buf, binary.LittleEndian, f)
	}

	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write test PLY: %v", err)
	}
}

func TestLoadPLY_Basic(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "square.ply")
	createTestPLY(t, testFile, false)

	data, err := LoadPLY(testFile)
	if err != nil {
		t.Fatalf("Failed to load PLY: %v", err)
	}

	expectedVertices := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(1, 1, 0),
		core.NewVec3(0, 1, 0),
	}
	if len(data.Vertices) != len(expectedVertices) {
		t.Fatalf("Expected %d vertices, got %d", len(expectedVertices), len(data.Vertices))
	}
	for i, expected := range expectedVertices {
		if data.Vertices[i] != expected {
			t.Errorf("Vertex %d: expected %v, got %v", i, expected, data.Vertices[i])
		}
	}

	if len(data.Faces) != 2 {
		t.Fatalf("Expected 2 faces, got %d", len(data.Faces))
	}
	if data.Faces[1].V != [3]int{0, 2, 3} {
		t.Errorf("Expected second face {0 2 3}, got %v", data.Faces[1].V)
	}
	if data.Faces[0].Smooth {
		t.Error("Expected flat faces without normals")
	}
	if len(data.Normals) != 0 {
		t.Errorf("Expected no normals, got %d", len(data.Normals))
	}
}

func TestLoadPLY_WithNormals(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "square_normals.ply")
	createTestPLY(t, testFile, true)

	data, err := LoadPLY(testFile)
	if err != nil {
		t.Fatalf("Failed to load PLY: %v", err)
	}
	if len(data.Normals) != 4 {
		t.Fatalf("Expected 4 normals, got %d", len(data.Normals))
	}
	for i, n := range data.Normals {
		if n != core.NewVec3(0, 0, 1) {
			t.Errorf("Normal %d: expected (0,0,1), got %v", i, n)
		}
	}
	if !data.Faces[0].Smooth {
		t.Error("Expected smooth faces with normals")
	}

	mesh := data.Mesh()
	hit, ok := mesh.Intersect(core.NewRay(core.NewVec3(0.25, 0.5, 1), core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("Expected ray to hit the square")
	}
	if !hit.Pos.ApproxEqual(core.NewVec3(0.25, 0.5, 0), 1e-9) {
		t.Errorf("Expected hit at (0.25,0.5,0), got %v", hit.Pos)
	}
}

func TestParsePLY_ASCII(t *testing.T) {
	src := `ply
format ascii 1.0
element vertex 4
property double x
property double y
property double z
element face 1
property list uchar int vertex_indices
end_header
0 0 0
2 0 0
2 2 0
0 2 0
4 0 1 2 3
`
	data, err := ParsePLY(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Failed to parse PLY: %v", err)
	}
	if len(data.Faces) != 2 {
		t.Fatalf("Expected quad split into 2 faces, got %d", len(data.Faces))
	}
	if data.Vertices[2] != core.NewVec3(2, 2, 0) {
		t.Errorf("Expected vertex 2 at (2,2,0), got %v", data.Vertices[2])
	}
}

func TestParsePLY_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no magic", "format ascii 1.0\nend_header\n"},
		{"no end", "ply\nformat ascii 1.0\n"},
		{"bad format", "ply\nformat xml 1.0\nend_header\n"},
		{"truncated body", "ply\nformat ascii 1.0\nelement vertex 2\nproperty float x\nend_header\n1\n"},
		{"negative vertex count", "ply\nformat ascii 1.0\nelement vertex -3\nproperty float x\nend_header\n"},
		{"negative face count", "ply\nformat ascii 1.0\nelement vertex 3\nproperty float x\nelement face 1\nproperty list uchar int vertex_indices\nend_header\n0\n0\n0\n-1 0 1 2\n"},
		{"negative skipped list count", "ply\nformat ascii 1.0\nelement vertex 3\nproperty float x\nelement face 1\nproperty list uchar int vertex_indices\nproperty list uchar float texcoord\nend_header\n0\n0\n0\n3 0 1 2 -2\n"},
		{"bad index", "ply\nformat ascii 1.0\nelement vertex 1\nproperty float x\nelement face 1\nproperty list uchar int vertex_indices\nend_header\n0\n3 0 0 5\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := ParsePLY(strings.NewReader(test.src)); err == nil {
				t.Errorf("Expected error")
			}
		})
	}
}

func TestLoadPLY_NonExistentFile(t *testing.T) {
	if _, err := LoadPLY("does_not_exist.ply"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestGetTypeSize(t *testing.T) {
	tests := []struct {
		dataType string
		expected int
	}{
		{"float", 4},
		{"float32", 4},
		{"int", 4},
		{"uint32", 4},
		{"double", 8},
		{"float64", 8},
		{"short", 2},
		{"ushort", 2},
		{"char", 1},
		{"uchar", 1},
		{"unknown", 0},
	}

	for _, test := range tests {
		result := getTypeSize(test.dataType)
		if result != test.expected {
			t.Errorf("getTypeSize(%s): expected %d, got %d", test.dataType, test.expected, result)
		}
	}
}
