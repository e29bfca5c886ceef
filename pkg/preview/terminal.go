// Package preview shows a rendered frame in the terminal using half-block cells.
package preview

import (
	"context"
	"fmt"
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Image is a tonemapped frame, rows top to bottom
type Image struct {
	Width  int
	Height int
	Pixels []renderer.RGB
}

// At returns the pixel at (x, y), clamped to the image
func (img Image) At(x, y int) renderer.RGB {
	x = max(0, min(x, img.Width-1))
	y = max(0, min(y, img.Height-1))
	i := y*img.Width + x
	if i < 0 || i >= len(img.Pixels) {
		return renderer.RGB{}
	}
	return img.Pixels[i]
}

// fitCells returns the largest cell grid within maxCols x maxRows that shows
// the image with square pixels. Each cell covers one column and two pixel rows.
func fitCells(width, height, maxCols, maxRows int) (cols, rows int) {
	if width <= 0 || height <= 0 || maxCols <= 0 || maxRows <= 0 {
		return 0, 0
	}
	cols = maxCols
	rows = (cols*height + width) / (2 * width) // Round half up
	if rows > maxRows {
		rows = maxRows
		cols = (2*rows*width + height/2) / height
	}
	return max(1, min(cols, maxCols)), max(1, rows)
}

// cellColors samples the top and bottom halves of cell (col, row) in a
// cols x rows grid, nearest neighbour
func cellColors(img Image, cols, rows, col, row int) (top, bottom color.RGBA) {
	x := (2*col + 1) * img.Width / (2 * cols)
	topY := (4*row + 1) * img.Height / (4 * rows)
	botY := (4*row + 3) * img.Height / (4 * rows)
	return toRGBA(img.At(x, topY)), toRGBA(img.At(x, botY))
}

func toRGBA(p renderer.RGB) color.RGBA {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

// Draw paints img scaled to fit area, centred, with ▀ cells whose
// foreground is the top pixel and background the bottom pixel
func Draw(scr uv.Screen, area uv.Rectangle, img Image) {
	cols, rows := fitCells(img.Width, img.Height, area.Dx(), area.Dy())
	offX := area.Min.X + (area.Dx()-cols)/2
	offY := area.Min.Y + (area.Dy()-rows)/2

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top, bottom := cellColors(img, cols, rows, col, row)
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: top,
					Bg: bottom,
				},
			}
			scr.SetCell(offX+col, offY+row, cell)
		}
	}
}

// Show draws img on the alternate screen and waits for a key press
func Show(img Image) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)
	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	draw := func() error {
		term.Erase()
		Draw(term, uv.Rect(0, 0, width, height), img)
		return term.Display()
	}
	if err := draw(); err != nil {
		return fmt.Errorf("display preview: %w", err)
	}

	for ev := range term.Events() {
		switch ev := ev.(type) {
		case uv.WindowSizeEvent:
			width, height = ev.Width, ev.Height
			term.Resize(width, height)
			if err := draw(); err != nil {
				return fmt.Errorf("display preview: %w", err)
			}
		case uv.KeyPressEvent:
			return nil
		}
	}
	return nil
}
