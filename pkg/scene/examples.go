package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/shader"
)

// ExampleMaxDepth is the recursion limit of the example scenes
const ExampleMaxDepth = 15

// newExampleScene creates the viewport shared by the examples: a 4x4
// window two units in front of a camera at the origin, looking down -Z
func newExampleScene() *Scene {
	s := New(
		core.NewPlane(core.NewVec3(0, 0, -2), core.NewVec3(0, 0, -1)),
		2, 2,
		core.NewVec3(0, 0, 0),
		Perspective,
	)
	s.Ambient = core.White.Multiply(0.8)
	s.MaxDepth = ExampleMaxDepth
	return s
}

// NewFloor creates the chessboard floor used by the examples
func NewFloor() *geometry.ChessBoard {
	return geometry.NewChessBoard(
		core.NewPlane(core.NewVec3(0, -1.6, 0), core.UnitY),
		1,
		shader.SimpleSolid(core.Grey(0.3)),
		shader.SimpleSolid(core.Grey(0.7)),
	)
}

// NewSphereScene creates a single solid sphere lit from the upper left
// against a black background
func NewSphereScene() *Scene {
	s := New(
		core.NewPlane(core.NewVec3(0, 0, -2), core.NewVec3(0, 0, -1)),
		2, 2,
		core.NewVec3(0, 0, 0),
		Perspective,
	)
	s.AddWhiteLight(core.NewVec3(-5, 10, 0), 0.4)
	s.AddObject(geometry.NewShaded(
		geometry.NewSphere(core.NewVec3(0, 0, -6), 1.5),
		shader.SimpleSolid(core.Red),
	))
	return s
}

// NewMirrorScene creates a tilted mirror standing on the floor between a
// sphere and a turned box
func NewMirrorScene() *Scene {
	s := newExampleScene()
	s.AddWhiteLight(core.NewVec3(-5, 10, 0), 0.4)
	s.AddWhiteLight(core.NewVec3(2, 10, -10), 0.4)

	mirror := geometry.NewDoubleSidedRectangle(
		core.NewVec3(1, -1, 0),
		core.NewVec3(1, 1, 0),
		core.NewVec3(-1, 1, 0),
	)
	s.AddObject(geometry.NewTransformed(geometry.NewShaded(mirror, shader.SimpleMirror(core.Red))).
		Scaled(core.NewVec3(2, 2, 2)).
		Translated(core.NewVec3(0, -1, -4.3)))
	s.AddObject(geometry.NewShaded(
		geometry.NewSphere(core.NewVec3(-1.5, 0, -8), 1),
		shader.SimpleSolid(core.Green),
	))
	box := geometry.NewShaded(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(0.7, 0.7, 0.7)),
		shader.SimpleRoughSolid(core.Yellow, 0.05))
	s.AddObject(geometry.NewTransformed(box).
		Rotated(core.NewVec3(0, 0.6, 0)).
		Translated(core.NewVec3(1.8, -0.9, -8)))
	s.AddObject(NewFloor())
	return s
}

// NewGlassScene creates a glass sphere in front of two solid ones and a
// round mirror lying on the floor
func NewGlassScene() *Scene {
	s := newExampleScene()
	s.AddWhiteLight(core.NewVec3(-5, 10, 0), 0.4)
	s.AddWhiteLight(core.NewVec3(2, 10, -10), 0.4)

	s.AddObject(geometry.NewShaded(
		geometry.NewSphere(core.NewVec3(0.04, -0.52, -4), 1),
		shader.SimpleGlass(core.Red, 0.95),
	))
	s.AddObject(geometry.NewShaded(
		geometry.NewSphere(core.NewVec3(-1.2, 0.5, -8), 1.5),
		shader.SimpleSolid(core.Blue),
	))
	s.AddObject(geometry.NewShaded(
		geometry.NewSphere(core.NewVec3(1.8, 0.5, -9), 1.5),
		shader.SimpleRoughSolid(core.Yellow, 0.05),
	))
	s.AddObject(geometry.NewShaded(
		geometry.NewDisc(core.NewVec3(1.5, -1.59, -5), core.UnitY, 1),
		shader.SimpleMirror(core.Grey(0.3)),
	))
	s.AddObject(NewFloor())
	return s
}

// NewFiveSpheresScene creates five spheres, a mirror and a torus on the floor
func NewFiveSpheresScene() *Scene {
	s := newExampleScene()
	s.AddWhiteLight(core.NewVec3(-5, 10, 0), 0.4)
	s.AddWhiteLight(core.NewVec3(2, 10, -10), 0.4)

	spheres := []struct {
		center core.Vec3
		shader core.Shader
	}{
		{core.NewVec3(-2.5, 1, -6), shader.SimpleMirror(core.Black)},
		{core.NewVec3(3.5, 1.5, -7), shader.SimpleRoughSolid(core.NewColor(0.9, 0.6, 0.2), 0.08)},
		{core.NewVec3(-1.5, 3.5, -12), shader.Mirror(core.Grey(0.6), 45, 0.5)},
		{core.NewVec3(3, 2.5, -12), shader.SimpleSolid(core.Green)},
	}
	for _, sp := range spheres {
		s.AddObject(geometry.NewShaded(geometry.NewSphere(sp.center, 1.5), sp.shader))
	}

	s.AddObject(geometry.NewShaded(
		geometry.NewSphere(core.NewVec3(0.04, -0.52, -4), 1.5),
		shader.SimpleGlass(core.Red, 0.95),
	))

	s.AddObject(geometry.NewShaded(
		geometry.NewDoubleSidedRectangle(
			core.NewVec3(2, 1, -5),
			core.NewVec3(2, -1.6, -5),
			core.NewVec3(2.1, -1.6, -3),
		),
		shader.SimpleMirror(core.Grey(0.2)),
	))

	torus := geometry.NewTorus(1, 0.25, 48, 24)
	torus.Translate(core.NewVec3(0, 2, -5))
	s.AddObject(geometry.NewShaded(torus, shader.SimpleMirror(core.Grey(0.5))))

	s.AddObject(NewFloor())
	return s
}

// NewTorusScene creates a rotated mirror torus next to a mirror
func NewTorusScene() *Scene {
	s := newExampleScene()
	s.AddWhiteLight(core.NewVec3(-5, 10, 0), 0.4)
	s.AddWhiteLight(core.NewVec3(10, 10, -10), 0.4)

	s.AddObject(geometry.NewShaded(
		geometry.NewDoubleSidedRectangle(
			core.NewVec3(2, 1, -5),
			core.NewVec3(2, -1.6, -5),
			core.NewVec3(2.1, -1.6, -3),
		),
		shader.SimpleMirror(core.Grey(0.2)),
	))

	torus := geometry.NewShaded(geometry.NewTorus(1, 0.25, 48, 24), shader.SimpleMirror(core.Blue))
	s.AddObject(geometry.NewTransformed(torus).
		Rotated(core.NewVec3(3.14*0.6, 3.14*0.1, 3.14*0.5)).
		Translated(core.NewVec3(0.04, -0.52, -4)))

	s.AddObject(NewFloor())
	return s
}

// NewTransformedScene creates an ellipsoid made by scaling a rotated sphere
func NewTransformedScene() *Scene {
	s := newExampleScene()
	s.AddWhiteLight(core.NewVec3(2, 10, -10), 0.4)

	s.AddObject(geometry.NewShaded(
		geometry.NewSphere(core.NewVec3(0.04-3.5, -0.32, -6), 1.5),
		shader.SimpleMirror(core.Blue),
	))

	ellipsoid := geometry.NewShaded(geometry.NewSphere(core.NewVec3(0, 0, 0), 0.5), shader.SimpleMirror(core.Red))
	s.AddObject(geometry.NewTransformed(ellipsoid).
		Rotated(core.NewVec3(1.5, 1.2, 1.0)).
		Scaled(core.NewVec3(2.5, 3.5, 2.5)).
		Translated(core.NewVec3(0.04, -0.32, -6)))

	s.AddObject(geometry.NewShaded(
		geometry.NewDoubleSidedRectangle(
			core.NewVec3(6, -3, -8),
			core.NewVec3(6, 5, -8),
			core.NewVec3(0, 5, -12),
		),
		shader.SimpleMirror(core.NewColor(0.1, 0.8, 0.3)),
	))

	s.AddObject(NewFloor())
	return s
}

// NewNormalsScene renders surface normals of a sphere and a torus
func NewNormalsScene() *Scene {
	s := newExampleScene()
	s.AddObject(geometry.NewShaded(geometry.NewSphere(core.NewVec3(-1.5, 0, -6), 1.2), shader.Normal{}))
	torus := geometry.NewShaded(geometry.NewTorus(1, 0.35, 32, 16), shader.Normal{})
	s.AddObject(geometry.NewTransformed(torus).
		Rotated(core.NewVec3(1.2, 0, 0)).
		Translated(core.NewVec3(1.5, 0, -6)))
	return s
}

// NewModelScene places a loaded mesh above the floor
func NewModelScene(mesh core.Object) *Scene {
	s := newExampleScene()
	s.AddWhiteLight(core.NewVec3(-5, 10, 0), 0.4)
	s.AddWhiteLight(core.NewVec3(2, 10, -10), 0.4)

	s.AddObject(geometry.NewTransformed(geometry.NewShaded(mesh, shader.SimpleSolid(core.NewColor(0.8, 0.5, 0.3)))).
		Translated(core.NewVec3(0, 0, -5)))
	s.AddObject(NewFloor())
	return s
}
