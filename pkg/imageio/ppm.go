package imageio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// WritePPM writes pixels as an ASCII (P3) PPM image, one pixel per line
func WritePPM(w io.Writer, width, height int, pixels []renderer.RGB) error {
	if err := checkPixelCount(width, height, pixels); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height)
	for _, p := range pixels {
		fmt.Fprintf(bw, "%d %d %d\n", p.R, p.G, p.B)
	}
	return bw.Flush()
}

func checkPixelCount(width, height int, pixels []renderer.RGB) error {
	if len(pixels) != width*height {
		return &PixelCountError{Want: width * height, Got: len(pixels)}
	}
	return nil
}
