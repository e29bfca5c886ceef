package scene

import (
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Preset is a ready to render scene with its camera and suggested settings
type Preset struct {
	Name            string
	Scene           *Scene
	Camera          *renderer.Camera
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
}

// Defaults used when a preset or scene file leaves them out
const (
	DefaultWidth           = 400
	DefaultHeight          = 400
	DefaultSamplesPerPixel = 100
	DefaultMaxDepth        = 10
)
