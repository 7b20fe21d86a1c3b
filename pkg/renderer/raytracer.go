package renderer

import (
	"image"
	"time"

	"github.com/pkg/errors"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/log"
)

// Config contains rendering configuration
type Config struct {
	Width    int
	Height   int
	TileSize int       // pixels per tile side
	Workers  int       // 0 uses one worker per CPU
	AA       AAPattern // sub-pixel sampling
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:    512,
		Height:   512,
		TileSize: 32,
		Workers:  0,
		AA:       AANone,
	}
}

// Validate reports configuration errors
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if c.TileSize <= 0 {
		return errors.Errorf("invalid tile size %d", c.TileSize)
	}
	if _, ok := aaNames[c.AA]; !ok {
		return errors.Errorf("invalid antialiasing pattern %d", c.AA)
	}
	return nil
}

// Raytracer renders a scene into an image
type Raytracer struct {
	scene  Scene
	config Config
	logger log.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config Config, logger log.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Raytracer{scene: scene, config: config, logger: logger}, nil
}

// Render prepares the scene and traces every pixel. The scene must not be
// modified until Render returns.
func (rt *Raytracer) Render() (*image.RGBA, RenderStats, error) {
	start := time.Now()
	if p, ok := rt.scene.(core.Preparer); ok {
		p.Prepare()
		rt.logger.Debugf("scene prepared in %v", time.Since(start))
	}

	width, height := rt.config.Width, rt.config.Height
	pixels := make([][]core.Color, height)
	for y := range pixels {
		pixels[y] = make([]core.Color, width)
	}

	tiles := NewTileGrid(width, height, rt.config.TileSize)
	pool := NewWorkerPool(NewTileRenderer(rt.scene, width, height, rt.config.AA), rt.config.Workers, len(tiles))
	rt.logger.Infof("rendering %dx%d with %d workers, %d tiles, antialiasing %s",
		width, height, pool.GetNumWorkers(), len(tiles), rt.config.AA)

	pool.Start()
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Pixels: pixels})
	}

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	lastPercent := 0
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			pool.Stop()
			return nil, RenderStats{}, errors.New("worker pool closed unexpectedly")
		}
		stats.Add(result.Stats)

		if percent := (i + 1) * 100 / len(tiles); percent/10 > lastPercent/10 {
			rt.logger.Infof("%d%% done", percent)
			lastPercent = percent
		}
	}
	pool.Stop()

	img := ToImage(pixels)
	stats.Duration = time.Since(start)
	stats.Luminance = CalculateAverageLuminance(img)
	return img, stats, nil
}

// ToImage converts a [y][x] color buffer into an 8-bit image
func ToImage(pixels [][]core.Color) *image.RGBA {
	height := len(pixels)
	width := 0
	if height > 0 {
		width = len(pixels[0])
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y, row := range pixels {
		for x, c := range row {
			img.SetRGBA(x, y, c.ToRGBA())
		}
	}
	return img
}
