package imageio

import (
	"image/png"
	"io"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// WritePNG encodes pixels as a PNG image
func WritePNG(w io.Writer, width, height int, pixels []renderer.RGB) error {
	if err := checkPixelCount(width, height, pixels); err != nil {
		return err
	}
	return png.Encode(w, renderer.ToImage(pixels, width, height))
}
