package imageio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Encoder writes width*height pixels to w
type Encoder func(w io.Writer, width, height int, pixels []renderer.RGB) error

var encoders = map[string]Encoder{
	".ppm": WritePPM,
	".png": WritePNG,
}

// EncoderFor returns the encoder for a file name's extension
func EncoderFor(path string) (Encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if enc, ok := encoders[ext]; ok {
		return enc, nil
	}
	return nil, fmt.Errorf("unsupported image format %q", ext)
}

// SaveFile writes pixels to path using the encoder its extension selects.
// A pixel count mismatch is reported before the file is created.
func SaveFile(path string, width, height int, pixels []renderer.RGB) (err error) {
	enc, err := EncoderFor(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := checkPixelCount(width, height, pixels); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &WriteError{Path: path, Err: cerr}
		}
	}()

	if err := enc(f, width, height, pixels); err != nil {
		var countErr *PixelCountError
		if errors.As(err, &countErr) {
			return err
		}
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
