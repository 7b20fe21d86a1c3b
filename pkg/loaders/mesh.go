package loaders

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/df07/go-recursive-raytracer/pkg/geometry"
)

// LoadMesh loads a triangle mesh, choosing the format by file extension
func LoadMesh(filename string) (*geometry.TrigMesh, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".obj":
		data, err := LoadOBJ(filename)
		if err != nil {
			return nil, err
		}
		return data.Mesh(), nil
	case ".ply":
		data, err := LoadPLY(filename)
		if err != nil {
			return nil, err
		}
		return data.Mesh(), nil
	default:
		return nil, errors.Errorf("unsupported mesh format %q", ext)
	}
}
