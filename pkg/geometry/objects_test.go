package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

type constShader struct {
	color core.Color
}

func (s constShader) Render(t core.Tracer, i core.Incidence) (core.Color, bool) {
	return s.color, true
}

func TestSphere_Intersect(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -6), 1.5)

	tests := []struct {
		name       string
		ray        core.Ray
		expectHit  bool
		expectPos  core.Vec3
		expectNorm core.Vec3
		inside     bool
	}{
		{
			name:       "Front face",
			ray:        core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)),
			expectHit:  true,
			expectPos:  core.NewVec3(0, 0, -4.5),
			expectNorm: core.NewVec3(0, 0, 1),
		},
		{
			name:       "From inside",
			ray:        core.NewRay(core.NewVec3(0, 0, -6), core.NewVec3(1, 0, 0)),
			expectHit:  true,
			expectPos:  core.NewVec3(1.5, 0, -6),
			expectNorm: core.NewVec3(1, 0, 0),
			inside:     true,
		},
		{
			name: "Miss",
			ray:  core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 0, -1)),
		},
		{
			name: "Behind",
			ray:  core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := sphere.Intersect(tt.ray)
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, ok)
			}
			if !ok {
				return
			}
			if !hit.Pos.ApproxEqual(tt.expectPos, 1e-9) {
				t.Errorf("Expected position %v, got %v", tt.expectPos, hit.Pos)
			}
			if !hit.Norm.ApproxEqual(tt.expectNorm, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectNorm, hit.Norm)
			}
			if hit.Inside != tt.inside {
				t.Errorf("Expected inside=%v, got %v", tt.inside, hit.Inside)
			}
		})
	}
}

func TestTriangle_Sides(t *testing.T) {
	a, b, c := core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)
	front := core.NewRay(core.NewVec3(0.2, 0.2, 1), core.NewVec3(0, 0, -1))
	back := core.NewRay(core.NewVec3(0.2, 0.2, -1), core.NewVec3(0, 0, 1))

	single := NewTriangle(a, b, c)
	if _, ok := single.Intersect(front); !ok {
		t.Errorf("Expected single-sided triangle to be hit from the front")
	}
	if _, ok := single.Intersect(back); ok {
		t.Errorf("Expected single-sided triangle to reject back hits")
	}
	if n, ok := single.ConstNormal(); !ok || !n.ApproxEqual(core.UnitZ, 1e-12) {
		t.Errorf("Expected const normal +Z, got %v (ok=%v)", n, ok)
	}

	double := NewDoubleSidedTriangle(a, b, c)
	hit, ok := double.Intersect(back)
	if !ok {
		t.Fatalf("Expected double-sided triangle to be hit from behind")
	}
	if !hit.Inside {
		t.Errorf("Expected back hit to be inside")
	}
	if _, ok := double.ConstNormal(); ok {
		t.Errorf("Expected double-sided triangle to have no const normal")
	}
}

func TestRectangle(t *testing.T) {
	r := NewRectangle(core.NewVec3(0, 2, 0), core.NewVec3(0, 0, 0), core.NewVec3(3, 0, 0))

	corners := r.Corners()
	if !corners[3].ApproxEqual(core.NewVec3(3, 2, 0), 1e-12) {
		t.Errorf("Expected fourth corner (3, 2, 0), got %v", corners[3])
	}

	// Points in both halves of the diagonal
	for _, p := range []core.Vec3{core.NewVec3(0.5, 0.5, 0), core.NewVec3(2.5, 1.5, 0)} {
		ray := core.NewRay(p.Add(core.NewVec3(0, 0, 1)), core.NewVec3(0, 0, -1))
		hit, ok := r.Intersect(ray)
		if !ok || !hit.Pos.ApproxEqual(p, 1e-12) {
			t.Errorf("Expected hit at %v, got %v (ok=%v)", p, hit.Pos, ok)
		}
	}

	if _, ok := r.Intersect(core.NewRay(core.NewVec3(3.5, 1, 1), core.NewVec3(0, 0, -1))); ok {
		t.Errorf("Expected miss outside the rectangle")
	}
}

func TestRectangle_PanicsWithoutRightAngle(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic for skewed corners")
		}
	}()
	NewRectangle(core.NewVec3(1, 2, 0), core.NewVec3(0, 0, 0), core.NewVec3(3, 0, 0))
}

func TestChessBoard_Cells(t *testing.T) {
	black := constShader{core.Black}
	white := constShader{core.White}
	board := NewChessBoard(core.NewPlane(core.NewVec3(0, -1, 0), core.UnitY), 1, black, white)

	tests := []struct {
		pos   core.Vec3
		black bool
	}{
		{core.NewVec3(0.5, -1, 0.5), true},
		{core.NewVec3(1.5, -1, 0.5), false},
		{core.NewVec3(1.5, -1, 1.5), true},
		{core.NewVec3(-0.5, -1, 0.5), false},
		{core.NewVec3(-0.5, -1, -0.5), true},
	}

	for _, tt := range tests {
		if got := board.IsBlack(tt.pos); got != tt.black {
			t.Errorf("At %v expected black=%v, got %v", tt.pos, tt.black, got)
		}
		color, ok := board.Render(nil, core.Incidence{Hit: core.Hit{Pos: tt.pos}})
		expected := core.White
		if tt.black {
			expected = core.Black
		}
		if !ok || color != expected {
			t.Errorf("At %v expected color %v, got %v", tt.pos, expected, color)
		}
	}

	hit, ok := board.Intersect(core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(1, -1, 0)))
	if !ok || math.Abs(hit.Pos.X-4) > 1e-12 || math.Abs(hit.Pos.Y+1) > 1e-12 {
		t.Errorf("Expected hit at (4, -1, 0), got %v (ok=%v)", hit.Pos, ok)
	}
}

func TestShaded_Delegates(t *testing.T) {
	tri := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))
	shaded := NewShaded(tri, constShader{core.Red})
	other := NewShaded(tri, constShader{core.Green})

	if shaded.ID() == other.ID() {
		t.Errorf("Expected distinct identities, both got %d", shaded.ID())
	}
	if n, ok := shaded.ConstNormal(); !ok || n != tri.normal {
		t.Errorf("Expected const normal to pass through, got %v (ok=%v)", n, ok)
	}
	if c, ok := shaded.Render(nil, core.Incidence{}); !ok || c != core.Red {
		t.Errorf("Expected shader color red, got %v", c)
	}
	if c, _ := tri.Render(nil, core.Incidence{}); c != core.DefaultColor {
		t.Errorf("Expected default color for unshaded object, got %v", c)
	}
}
