package scene

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/df07/go-recursive-raytracer/pkg/loaders"
)

// Options parameterize scene construction
type Options struct {
	ModelPath string // mesh file for the model scene
	MaxDepth  int    // overrides the scene's recursion limit when > 0
}

// Builder constructs a scene
type Builder func(opts Options) (*Scene, error)

// Info describes a registered scene
type Info struct {
	Name        string
	Description string
	build       Builder
}

// ErrUnknownScene is returned by Build for unregistered names
var ErrUnknownScene = errors.New("unknown scene")

var registry = map[string]Info{}

// Register adds a named scene. It panics on duplicate names.
func Register(name, description string, build Builder) {
	if _, exists := registry[name]; exists {
		panic("scene already registered: " + name)
	}
	registry[name] = Info{Name: name, Description: description, build: build}
}

func fixed(f func() *Scene) Builder {
	return func(Options) (*Scene, error) {
		return f(), nil
	}
}

func init() {
	Register("spheres", "single solid sphere on black", fixed(NewSphereScene))
	Register("mirror", "scaled mirror above a chessboard", fixed(NewMirrorScene))
	Register("glass", "glass sphere in front of solid spheres", fixed(NewGlassScene))
	Register("chess", "five spheres, a mirror and a torus on a chessboard", fixed(NewFiveSpheresScene))
	Register("torus", "rotated mirror torus", fixed(NewTorusScene))
	Register("transformed", "rotated and scaled sphere next to a mirror", fixed(NewTransformedScene))
	Register("normals", "surface normals of a sphere and a torus", fixed(NewNormalsScene))
	Register("model", "mesh loaded from --model above a chessboard", buildModelScene)
}

func buildModelScene(opts Options) (*Scene, error) {
	if opts.ModelPath == "" {
		return nil, errors.New("model scene requires a mesh file")
	}
	mesh, err := loaders.LoadMesh(opts.ModelPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load model")
	}
	return NewModelScene(mesh), nil
}

// Build constructs the named scene
func Build(name string, opts Options) (*Scene, error) {
	info, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownScene, "%q", name)
	}

	s, err := info.build(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build scene %s", name)
	}
	if opts.MaxDepth > 0 {
		s.MaxDepth = opts.MaxDepth
	}
	return s, nil
}

// List returns the registered scenes sorted by name
func List() []Info {
	infos := make([]Info, 0, len(registry))
	for _, info := range registry {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// Names returns the registered scene names sorted
func Names() []string {
	infos := List()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names
}
