package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Display gamma applied by Tonemap
const gamma = 2.2

// RGB is an 8-bit display pixel
type RGB struct {
	R, G, B uint8
}

// Tonemap converts linear radiance to display values with a 1/2.2 power curve.
// Each channel is clamp(round(|c|^(1/2.2) * 255), 0, 255); NaN maps to 0.
func Tonemap(c core.Vec3) RGB {
	return RGB{R: tonemapChannel(c.X), G: tonemapChannel(c.Y), B: tonemapChannel(c.Z)}
}

func tonemapChannel(v float64) uint8 {
	x := math.Round(math.Pow(math.Abs(v), 1/gamma) * 255)
	switch {
	case math.IsNaN(x) || x <= 0:
		return 0
	case x >= 255:
		return 255
	default:
		return uint8(x)
	}
}

// TonemapAll tonemaps a radiance buffer pixel by pixel
func TonemapAll(radiance []core.Vec3) []RGB {
	pixels := make([]RGB, len(radiance))
	for i, c := range radiance {
		pixels[i] = Tonemap(c)
	}
	return pixels
}

// ToImage converts row-major pixels to an image for encoding.
// Missing pixels are left black.
func ToImage(pixels []RGB, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			if i >= len(pixels) {
				return img
			}
			p := pixels[i]
			img.Set(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}
