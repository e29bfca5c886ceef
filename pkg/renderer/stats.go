package renderer

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int // Total number of pixels rendered
	TotalSamples int // Total number of camera rays traced
	Rows         int // Number of row tasks submitted to the executor
	Workers      int // Parallelism reported by the executor
}

// AverageSamples returns the mean number of samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}
