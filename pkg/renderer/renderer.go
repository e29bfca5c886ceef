package renderer

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// RenderSetting is everything a render needs. The renderer only reads it.
type RenderSetting struct {
	Width           int
	Height          int
	SamplesPerPixel int // spp, used by shade mode only
	MaxDepth        int // reflect_n: maximum bounces per sample
	Camera          *Camera
	Scene           integrator.World
	Mode            integrator.Mode
	Seed            int64 // Base seed; row r draws from Seed + r
}

// Validate checks the setting before any work is scheduled
func (rs *RenderSetting) Validate() error {
	if rs.Width <= 0 || rs.Height <= 0 {
		return fmt.Errorf("invalid resolution %dx%d", rs.Width, rs.Height)
	}
	if rs.Mode.Stochastic() && rs.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", rs.SamplesPerPixel)
	}
	if rs.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", rs.MaxDepth)
	}
	if rs.Camera == nil {
		return errors.New("render setting has no camera")
	}
	if !rs.Camera.Valid() {
		return errors.New("camera basis is degenerate")
	}
	if rs.Scene == nil {
		return errors.New("render setting has no scene")
	}
	if err := rs.Mode.Validate(); err != nil {
		return err
	}
	return nil
}

// samplesPerPixel is the number of camera rays traced through each pixel
func (rs *RenderSetting) samplesPerPixel() int {
	if rs.Mode.Stochastic() {
		return rs.SamplesPerPixel
	}
	return 1
}

// Renderer schedules one task per image row on an executor
type Renderer struct {
	executor Executor
	logger   core.Logger
}

// NewRenderer creates a renderer. A nil executor renders serially and a nil logger discards output.
func NewRenderer(executor Executor, logger core.Logger) *Renderer {
	if executor == nil {
		executor = SerialExecutor{}
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Renderer{executor: executor, logger: logger}
}

// Render returns width*height tonemapped pixels, rows top to bottom
func (r *Renderer) Render(rs *RenderSetting) ([]RGB, RenderStats, error) {
	radiance, stats, err := r.RenderRadiance(rs)
	if err != nil {
		return nil, stats, err
	}
	return TonemapAll(radiance), stats, nil
}

// RenderRadiance returns the per-pixel mean linear radiance before tonemapping
func (r *Renderer) RenderRadiance(rs *RenderSetting) ([]core.Vec3, RenderStats, error) {
	if err := rs.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid render setting: %w", err)
	}

	spp := rs.samplesPerPixel()
	stats := RenderStats{
		TotalPixels:  rs.Width * rs.Height,
		TotalSamples: rs.Width * rs.Height * spp,
		Rows:         rs.Height,
		Workers:      r.executor.Workers(),
	}
	r.logger.Printf("Rendering %dx%d, mode %v, %d spp, depth %d, %d workers\n",
		rs.Width, rs.Height, rs.Mode, spp, rs.MaxDepth, stats.Workers)

	integ := integrator.New(rs.Mode, rs.MaxDepth, rs.Camera.Interval())
	radiance := make([]core.Vec3, rs.Width*rs.Height)

	// Each row owns its slice of the buffer and its own sampler
	err := r.executor.Run(rs.Height, func(row int) error {
		sampler := core.NewSeededSampler(rs.Seed + int64(row))
		renderRow(rs, integ, sampler, row, radiance[row*rs.Width:(row+1)*rs.Width])
		return nil
	})
	if err != nil {
		return nil, stats, fmt.Errorf("render rows: %w", err)
	}

	r.logger.Printf("Rendered %d pixels with %d samples\n", stats.TotalPixels, stats.TotalSamples)
	return radiance, stats, nil
}

// renderRow fills out with the radiance of every pixel in one image row
func renderRow(rs *RenderSetting, integ integrator.Integrator, sampler core.Sampler, row int, out []core.Vec3) {
	w, h := float64(rs.Width), float64(rs.Height)
	y := h - float64(row)

	for col := range out {
		x := float64(col)

		if !rs.Mode.Stochastic() {
			ray := rs.Camera.CreateRay(w, h, x+0.5, y+0.5)
			out[col] = integ.RayColor(ray, rs.Scene, sampler)
			continue
		}

		sum := core.Vec3{}
		for s := 0; s < rs.SamplesPerPixel; s++ {
			ray := rs.Camera.CreateRay(w, h, x+sampler.Get1D(), y+sampler.Get1D())
			sum = sum.Add(integ.RayColor(ray, rs.Scene, sampler))
		}
		out[col] = sum.Divide(float64(rs.SamplesPerPixel))
	}
}

// Render is a convenience wrapper that renders rs serially without logging
func Render(rs *RenderSetting) ([]RGB, error) {
	pixels, _, err := NewRenderer(nil, nil).Render(rs)
	return pixels, err
}
