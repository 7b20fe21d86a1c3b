package renderer

import (
	"bytes"
	"fmt"
	"image"
	"time"

	"github.com/olekukonko/tablewriter"
)

// RenderStats summarizes a render
type RenderStats struct {
	TotalPixels  int
	TotalSamples int // primary rays traced
	Tiles        int
	Workers      int
	Duration     time.Duration
	Luminance    float64 // average luminance of the output
}

// Add accumulates the counters of a tile
func (s *RenderStats) Add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.Tiles++
}

// SamplesPerPixel returns the average number of primary rays per pixel
func (s RenderStats) SamplesPerPixel() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// Table formats the statistics as a text table
func (s RenderStats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Pixels", "Samples", "Samples/pixel", "Tiles", "Workers", "Luminance"})
	table.Append([]string{
		fmt.Sprintf("%d", s.TotalPixels),
		fmt.Sprintf("%d", s.TotalSamples),
		fmt.Sprintf("%.1f", s.SamplesPerPixel()),
		fmt.Sprintf("%d", s.Tiles),
		fmt.Sprintf("%d", s.Workers),
		fmt.Sprintf("%.4f", s.Luminance),
	})
	table.SetFooter([]string{"", "", "", "", "TOTAL", s.Duration.String()})
	table.Render()
	return buf.String()
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	count := bounds.Dx() * bounds.Dy()
	if count == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 0xffff
		}
	}
	return total / float64(count)
}
