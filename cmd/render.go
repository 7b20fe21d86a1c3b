package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// RenderFlags returns the flags of the render command
func RenderFlags() []cli.Flag {
	defaults := renderer.DefaultConfig()
	return []cli.Flag{
		cli.StringFlag{
			Name:  "scene, s",
			Value: "chess",
			Usage: "built-in scene to render",
		},
		cli.StringFlag{
			Name:  "model, m",
			Usage: "mesh file for the model scene",
		},
		cli.IntFlag{
			Name:  "width",
			Value: defaults.Width,
			Usage: "frame width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: defaults.Height,
			Usage: "frame height",
		},
		cli.StringFlag{
			Name:  "aa",
			Value: defaults.AA.String(),
			Usage: "antialiasing pattern: none, 2x2, 3x3 or 4x4",
		},
		cli.IntFlag{
			Name:  "workers",
			Value: defaults.Workers,
			Usage: "number of render workers, 0 for one per CPU",
		},
		cli.IntFlag{
			Name:  "tile-size",
			Value: defaults.TileSize,
			Usage: "pixels per tile side",
		},
		cli.IntFlag{
			Name:  "max-depth",
			Usage: "override the scene's recursion limit",
		},
		cli.StringFlag{
			Name:  "out, o",
			Usage: "image filename for the rendered frame",
		},
	}
}

// RenderScene renders a still frame
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if err := renderScene(ctx); err != nil {
		logger.Errorf("%v", err)
		return err
	}
	return nil
}

func renderScene(ctx *cli.Context) error {
	config, err := configFromFlags(ctx)
	if err != nil {
		return err
	}

	name := ctx.String("scene")
	sc, err := scene.Build(name, scene.Options{
		ModelPath: ctx.String("model"),
		MaxDepth:  ctx.Int("max-depth"),
	})
	if err != nil {
		return err
	}
	st := sc.GetStats()
	logger.Infof("scene %s: %d objects, %d triangles, %d lights, max depth %d",
		name, st.Objects, st.Triangles, st.Lights, sc.MaxDepth)

	out := ctx.String("out")
	if out == "" {
		if out, err = defaultOutputFile(name, time.Now()); err != nil {
			return err
		}
	}
	// fail before rendering rather than after
	if _, err := renderer.EncoderFor(out); err != nil {
		return err
	}

	rt, err := renderer.NewRaytracer(sc, config, logger)
	if err != nil {
		return err
	}
	img, stats, err := rt.Render()
	if err != nil {
		return errors.Wrap(err, "render failed")
	}

	if err := renderer.SaveImage(img, out); err != nil {
		return err
	}
	logger.Noticef("frame statistics\n%s", stats.Table())
	logger.Noticef("saved %s", out)
	return nil
}

func configFromFlags(ctx *cli.Context) (renderer.Config, error) {
	aa, err := renderer.ParseAAPattern(ctx.String("aa"))
	if err != nil {
		return renderer.Config{}, err
	}

	config := renderer.Config{
		Width:    ctx.Int("width"),
		Height:   ctx.Int("height"),
		TileSize: ctx.Int("tile-size"),
		Workers:  ctx.Int("workers"),
		AA:       aa,
	}
	return config, config.Validate()
}

// defaultOutputFile creates output/<scene> and returns a timestamped png path in it
func defaultOutputFile(sceneName string, now time.Time) (string, error) {
	outputDir := filepath.Join("output", sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", errors.Wrapf(err, "failed to create output directory %s", outputDir)
	}
	return filepath.Join(outputDir, fmt.Sprintf("render_%s.png", now.Format("20060102_150405"))), nil
}
