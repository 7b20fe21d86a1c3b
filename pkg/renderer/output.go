package renderer

import (
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Encoder writes an image in one file format
type Encoder func(w io.Writer, img image.Image) error

var encoders = map[string]Encoder{
	".png":  png.Encode,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// EncoderFor returns the encoder matching the extension of filename
func EncoderFor(filename string) (Encoder, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	enc, ok := encoders[ext]
	if !ok {
		return nil, errors.Errorf("unsupported image format %q", ext)
	}
	return enc, nil
}

// SaveImage writes img to filename in the format given by its extension
func SaveImage(img image.Image, filename string) error {
	enc, err := EncoderFor(filename)
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", filename)
	}

	if err := enc(file, img); err != nil {
		file.Close()
		return errors.Wrapf(err, "failed to encode %s", filename)
	}
	return errors.Wrapf(file.Close(), "failed to close %s", filename)
}
