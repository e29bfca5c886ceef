package imageio

import "fmt"

// PixelCountError reports a pixel slice that does not match the image size
type PixelCountError struct {
	Want int // width * height
	Got  int
}

func (e *PixelCountError) Error() string {
	return fmt.Sprintf("expected %d pixels, got %d", e.Want, e.Got)
}

// WriteError reports a failure to write an image file
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write image %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ProcessError reports an external viewer that failed to start or exited non-zero
type ProcessError struct {
	Command string
	Err     error
	Stderr  string
}

func (e *ProcessError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("run %s: %v: %s", e.Command, e.Err, e.Stderr)
	}
	return fmt.Sprintf("run %s: %v", e.Command, e.Err)
}

func (e *ProcessError) Unwrap() error { return e.Err }
