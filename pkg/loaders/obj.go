package loaders

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
)

// OBJData holds the geometry read from a Wavefront OBJ file
type OBJData struct {
	Name     string
	Vertices []core.Vec3
	Normals  []core.Vec3
	Faces    []geometry.Face
}

// LoadOBJ reads an OBJ file from disk
func LoadOBJ(filename string) (*OBJData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open OBJ file %s", filename)
	}
	defer file.Close()

	data, err := ParseOBJ(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse OBJ file %s", filename)
	}
	return data, nil
}

// ParseOBJ reads vertices, vertex normals and faces. Polygons are split
// into triangle fans. Faces carrying normals for every corner are smooth.
// Texture coordinates, groups and materials are ignored.
func ParseOBJ(r io.Reader) (*OBJData, error) {
	data := &OBJData{}
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "o":
			data.Name = strings.TrimSpace(strings.TrimPrefix(line, "o"))
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: vertex", lineNum)
			}
			data.Vertices = append(data.Vertices, v)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: normal", lineNum)
			}
			data.Normals = append(data.Normals, n)
		case "f":
			faces, err := data.parseFace(fields[1:])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: face", lineNum)
			}
			data.Faces = append(data.Faces, faces...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read OBJ data")
	}

	return data, nil
}

// Mesh builds a triangle mesh from the parsed data
func (d *OBJData) Mesh() *geometry.TrigMesh {
	return geometry.NewTrigMesh(d.Vertices, d.Normals, d.Faces)
}

func parseVec3(fields []string) (core.Vec3, error) {
	// a fourth homogeneous coordinate is allowed and ignored
	if len(fields) < 3 {
		return core.Vec3{}, errors.Errorf("expected 3 coordinates, got %d", len(fields))
	}
	var xyz [3]float64
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return core.Vec3{}, errors.Wrapf(err, "coordinate %d", i)
		}
		xyz[i] = f
	}
	return core.NewVec3(xyz[0], xyz[1], xyz[2]), nil
}

type corner struct {
	v, n int
	hasN bool
}

func (d *OBJData) parseFace(fields []string) ([]geometry.Face, error) {
	if len(fields) < 3 {
		return nil, errors.Errorf("expected at least 3 corners, got %d", len(fields))
	}

	corners := make([]corner, len(fields))
	smooth := true
	for i, f := range fields {
		c, err := d.parseCorner(f)
		if err != nil {
			return nil, err
		}
		corners[i] = c
		smooth = smooth && c.hasN
	}

	faces := make([]geometry.Face, 0, len(corners)-2)
	for i := 1; i+1 < len(corners); i++ {
		tri := [3]corner{corners[0], corners[i], corners[i+1]}
		face := geometry.Face{Smooth: smooth}
		for k, c := range tri {
			face.V[k] = c.v
			face.N[k] = c.n
		}
		faces = append(faces, face)
	}
	return faces, nil
}

// parseCorner accepts v, v/t, v//n and v/t/n
func (d *OBJData) parseCorner(s string) (corner, error) {
	parts := strings.Split(s, "/")
	v, err := resolveIndex(parts[0], len(d.Vertices))
	if err != nil {
		return corner{}, errors.Wrapf(err, "vertex index %q", s)
	}

	c := corner{v: v}
	if len(parts) == 3 && parts[2] != "" {
		n, err := resolveIndex(parts[2], len(d.Normals))
		if err != nil {
			return corner{}, errors.Wrapf(err, "normal index %q", s)
		}
		c.n, c.hasN = n, true
	}
	return c, nil
}

// resolveIndex converts a 1-based or negative relative index to 0-based
func resolveIndex(s string, count int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0 && i <= count:
		return i - 1, nil
	case i < 0 && -i <= count:
		return count + i, nil
	default:
		return 0, errors.Errorf("index %d out of range (have %d)", i, count)
	}
}
