package imageio

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

var testPixels = []renderer.RGB{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {10, 20, 30}, {0, 0, 0}, {255, 255, 255}}

func TestWritePPM(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, 3, 2, testPixels); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "P3\n3 2\n255\n255 0 0\n0 255 0\n0 0 255\n10 20 30\n0 0 0\n255 255 255\n"
	if buf.String() != expected {
		t.Errorf("Unexpected PPM output:\n%s", buf.String())
	}
}

func TestWritePixelCountMismatch(t *testing.T) {
	for name, enc := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := enc(&buf, 4, 2, testPixels)
			var countErr *PixelCountError
			if !errors.As(err, &countErr) {
				t.Fatalf("Expected PixelCountError, got %v", err)
			}
			if countErr.Want != 8 || countErr.Got != 6 {
				t.Errorf("Unexpected error fields %+v", countErr)
			}
			if buf.Len() != 0 {
				t.Error("Expected nothing written on mismatch")
			}
		})
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, 3, 2, testPixels); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Unexpected decode error: %v", err)
	}
	r, g, b, _ := img.At(0, 1).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("Unexpected pixel (0, 1): %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestSaveFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.ppm", "out.PNG"} {
		path := filepath.Join(dir, name)
		if err := SaveFile(path, 3, 2, testPixels); err != nil {
			t.Fatalf("%s: unexpected error %v", name, err)
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%s: expected a non-empty file", name)
		}
	}
}

func TestSaveFileErrors(t *testing.T) {
	dir := t.TempDir()

	var writeErr *WriteError
	if err := SaveFile(filepath.Join(dir, "out.bmp"), 3, 2, testPixels); !errors.As(err, &writeErr) {
		t.Errorf("Expected WriteError for unknown extension, got %v", err)
	}

	err := SaveFile(filepath.Join(dir, "missing", "out.ppm"), 3, 2, testPixels)
	if !errors.As(err, &writeErr) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected WriteError wrapping ErrNotExist, got %v", err)
	}

	path := filepath.Join(dir, "short.ppm")
	var countErr *PixelCountError
	if err := SaveFile(path, 3, 3, testPixels); !errors.As(err, &countErr) {
		t.Errorf("Expected PixelCountError, got %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Error("Expected no file to be created on pixel count mismatch")
	}
}

func TestOpen(t *testing.T) {
	var procErr *ProcessError
	if err := Open(context.Background(), "", "image.ppm"); !errors.As(err, &procErr) {
		t.Errorf("Expected ProcessError for an empty command, got %v", err)
	}
	if err := Open(context.Background(), "definitely-not-a-viewer-7f3a", "image.ppm"); !errors.As(err, &procErr) {
		t.Errorf("Expected ProcessError for a missing command, got %v", err)
	}

	if _, err := exec.LookPath("true"); err == nil {
		if err := Open(context.Background(), "true --ignored", "image.ppm"); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	}
	if _, err := exec.LookPath("false"); err == nil {
		if err := Open(context.Background(), "false", "image.ppm"); !errors.As(err, &procErr) {
			t.Errorf("Expected ProcessError for a failing viewer, got %v", err)
		}
	}
}
