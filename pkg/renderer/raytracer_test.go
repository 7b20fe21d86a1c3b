package renderer

import (
	"image/color"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/log"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

var testLogger = log.New("renderer-test")

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		isValid bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero width", func(c *Config) { c.Width = 0 }, false},
		{"negative height", func(c *Config) { c.Height = -1 }, false},
		{"zero tile", func(c *Config) { c.TileSize = 0 }, false},
		{"bad pattern", func(c *Config) { c.AA = AAPattern(42) }, false},
		{"explicit workers", func(c *Config) { c.Workers = 2 }, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := DefaultConfig()
			test.modify(&config)
			err := config.Validate()
			if test.isValid && err != nil {
				t.Errorf("Expected valid config, got %v", err)
			}
			if !test.isValid && err == nil {
				t.Error("Expected invalid config")
			}
		})
	}
}

func TestRaytracer_Render(t *testing.T) {
	mock := &MockScene{color: func(x, y float64) core.Color {
		return core.NewColor(x/10, y/10, 1)
	}}
	config := Config{Width: 10, Height: 7, TileSize: 3, Workers: 4, AA: AANone}
	rt, err := NewRaytracer(mock, config, testLogger)
	if err != nil {
		t.Fatalf("Failed to create raytracer: %v", err)
	}

	img, stats, err := rt.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if mock.prepared != 1 {
		t.Errorf("Expected scene to be prepared once, got %d", mock.prepared)
	}
	if img.Bounds().Dx() != 10 || img.Bounds().Dy() != 7 {
		t.Fatalf("Expected 10x7 image, got %v", img.Bounds())
	}
	if stats.TotalPixels != 70 || stats.TotalSamples != 70 {
		t.Errorf("Expected 70 pixels and samples, got %d and %d", stats.TotalPixels, stats.TotalSamples)
	}
	if stats.Tiles != 12 {
		t.Errorf("Expected 12 tiles, got %d", stats.Tiles)
	}
	if stats.Workers != 4 {
		t.Errorf("Expected 4 workers, got %d", stats.Workers)
	}

	for y := 0; y < 7; y++ {
		for x := 0; x < 10; x++ {
			expected := core.NewColor(float64(x)/10, float64(y)/10, 1).ToRGBA()
			if got := img.RGBAAt(x, y); got != expected {
				t.Errorf("Pixel (%d,%d): expected %v, got %v", x, y, expected, got)
			}
		}
	}
}

func TestNewRaytracer_InvalidConfig(t *testing.T) {
	if _, err := NewRaytracer(&MockScene{}, Config{}, testLogger); err == nil {
		t.Error("Expected error for zero config")
	}
}

func TestRaytracer_WorkersAgree(t *testing.T) {
	// each render builds its own scene; rough surfaces must still match
	render := func(workers int) [][]color.RGBA {
		config := Config{Width: 24, Height: 24, TileSize: 5, Workers: workers, AA: AAGrid2}
		rt, err := NewRaytracer(scene.NewFiveSpheresScene(), config, testLogger)
		if err != nil {
			t.Fatalf("Failed to create raytracer: %v", err)
		}
		img, _, err := rt.Render()
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}

		out := make([][]color.RGBA, 24)
		for y := range out {
			out[y] = make([]color.RGBA, 24)
			for x := range out[y] {
				out[y][x] = img.RGBAAt(x, y)
			}
		}
		return out
	}

	serial := render(1)
	parallel := render(6)
	for y := range serial {
		for x := range serial[y] {
			if serial[y][x] != parallel[y][x] {
				t.Fatalf("Pixel (%d,%d) differs: %v vs %v", x, y, serial[y][x], parallel[y][x])
			}
		}
	}
}

func TestRaytracer_SphereScene(t *testing.T) {
	s := scene.NewSphereScene()
	rt, err := NewRaytracer(s, Config{Width: 32, Height: 32, TileSize: 8, Workers: 2}, testLogger)
	if err != nil {
		t.Fatalf("Failed to create raytracer: %v", err)
	}
	img, stats, err := rt.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if corner := img.RGBAAt(0, 0); corner != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Expected black corner, got %v", corner)
	}
	center := img.RGBAAt(16, 16)
	if center.R == 0 || center.G > 1 || center.B > 1 {
		t.Errorf("Expected red center, got %v", center)
	}
	if stats.Luminance <= 0 {
		t.Errorf("Expected positive luminance, got %v", stats.Luminance)
	}
}

func TestToImage(t *testing.T) {
	pixels := [][]core.Color{
		{core.Red, core.NewColor(2, -1, 0.5)},
	}
	img := ToImage(pixels)
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("Expected 2x1 image, got %v", img.Bounds())
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{255, 0, 128, 255}) {
		t.Errorf("Expected clamped pixel, got %v", got)
	}
	if empty := ToImage(nil); empty.Bounds().Dx() != 0 {
		t.Errorf("Expected empty image, got %v", empty.Bounds())
	}
}
