package renderer

import (
	"strings"

	"github.com/pkg/errors"
)

// AAPattern selects the sub-pixel sample positions
type AAPattern int

const (
	AANone AAPattern = iota
	AAGrid2
	AAGrid3
	AAGrid4
)

// Offset is a sub-pixel displacement added to integer pixel coordinates
type Offset struct {
	X, Y float64
}

var aaNames = map[AAPattern]string{
	AANone:  "none",
	AAGrid2: "2x2",
	AAGrid3: "3x3",
	AAGrid4: "4x4",
}

// ParseAAPattern resolves a pattern name such as "none" or "3x3"
func ParseAAPattern(name string) (AAPattern, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range aaNames {
		if n == name {
			return p, nil
		}
	}
	return AANone, errors.Errorf("unknown antialiasing pattern %q", name)
}

func (p AAPattern) String() string {
	if n, ok := aaNames[p]; ok {
		return n
	}
	return "unknown"
}

// GridSize returns the number of samples along each axis
func (p AAPattern) GridSize() int {
	switch p {
	case AAGrid2:
		return 2
	case AAGrid3:
		return 3
	case AAGrid4:
		return 4
	default:
		return 1
	}
}

// Offsets returns the sample positions of one pixel. A single sample sits
// on the pixel coordinate itself; grids are centered on it.
func (p AAPattern) Offsets() []Offset {
	n := p.GridSize()
	if n == 1 {
		return []Offset{{0, 0}}
	}

	offsets := make([]Offset, 0, n*n)
	step := 1 / float64(n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			offsets = append(offsets, Offset{
				X: (float64(i)+0.5)*step - 0.5,
				Y: (float64(j)+0.5)*step - 0.5,
			})
		}
	}
	return offsets
}
