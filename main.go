package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/imageio"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/preview"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// config holds the parsed command line
type config struct {
	Scene    string
	Mesh     string
	Width    int
	Height   int
	SPP      int
	Depth    int
	Mode     string
	Range    float64
	Workers  int
	Executor string
	Seed     int64
	Out      string
	Open     string
	Preview  bool
	Help     bool
}

func parseFlags(args []string, output io.Writer) (*config, *flag.FlagSet, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.Scene, "scene", "cornell", "Scene: 'cornell', 'spheres', 'mesh' or a path to a .json scene file")
	fs.StringVar(&cfg.Mesh, "mesh", "", "glTF/GLB or PLY file for the 'mesh' scene")
	fs.IntVar(&cfg.Width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&cfg.Height, "height", 0, "Image height in pixels (0 = scene default)")
	fs.IntVar(&cfg.SPP, "spp", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&cfg.Depth, "depth", -1, "Maximum bounces per sample (-1 = scene default)")
	fs.StringVar(&cfg.Mode, "mode", "shade", "Render mode: shade, normal, normal-color, depth, depth-normal-color")
	fs.Float64Var(&cfg.Range, "range", 10, "Falloff distance for the depth modes")
	fs.IntVar(&cfg.Workers, "workers", 0, "Number of parallel workers (0 = number of CPUs)")
	fs.StringVar(&cfg.Executor, "executor", renderer.ExecutorPool, "Executor: pool, group or serial")
	fs.Int64Var(&cfg.Seed, "seed", 0, "Base random seed")
	fs.StringVar(&cfg.Out, "out", "", "Output file, .ppm or .png (default result-<spp>-<depth>.ppm)")
	fs.StringVar(&cfg.Open, "open", "", "Viewer command to open the result with")
	fs.BoolVar(&cfg.Preview, "preview", false, "Show the result in the terminal")
	fs.BoolVar(&cfg.Help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	return cfg, fs, nil
}

func printHelp(fs *flag.FlagSet) {
	fmt.Println("Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	fs.SetOutput(os.Stdout)
	fs.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	fmt.Println("  cornell - Cornell box with a mirror sphere and a glass sphere")
	fmt.Println("  spheres - Spheres on a ground plane under an emissive sky")
	fmt.Println("  mesh    - The -mesh file standing in the Cornell box")
	fmt.Println("  *.json  - Scene file")
}

// createScene builds the named preset or loads a scene file
func createScene(name, meshPath string) (*scene.Preset, error) {
	switch {
	case name == "cornell":
		return scene.NewCornellScene(), nil
	case name == "spheres":
		return scene.NewSpheresScene(), nil
	case name == "mesh":
		if meshPath == "" {
			return nil, fmt.Errorf("scene 'mesh' requires -mesh")
		}
		return scene.NewMeshScene(meshPath)
	case strings.HasSuffix(strings.ToLower(name), ".json"):
		return scene.LoadPreset(name)
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

// buildSetting combines the preset with command line overrides
func buildSetting(cfg *config, preset *scene.Preset) (*renderer.RenderSetting, error) {
	mode, err := integrator.ParseMode(cfg.Mode, cfg.Range)
	if err != nil {
		return nil, err
	}

	rs := &renderer.RenderSetting{
		Width:           preset.Width,
		Height:          preset.Height,
		SamplesPerPixel: preset.SamplesPerPixel,
		MaxDepth:        preset.MaxDepth,
		Camera:          preset.Camera,
		Scene:           preset.Scene,
		Mode:            mode,
		Seed:            cfg.Seed,
	}
	if cfg.Width > 0 {
		rs.Width = cfg.Width
	}
	if cfg.Height > 0 {
		rs.Height = cfg.Height
	}
	if cfg.SPP > 0 {
		rs.SamplesPerPixel = cfg.SPP
	}
	if cfg.Depth >= 0 {
		rs.MaxDepth = cfg.Depth
	}
	return rs, rs.Validate()
}

// outputPath follows the result-<spp>-<depth>.ppm naming unless -out is given
func outputPath(cfg *config, rs *renderer.RenderSetting) string {
	if cfg.Out != "" {
		return cfg.Out
	}
	return fmt.Sprintf("result-%d-%d.ppm", rs.SamplesPerPixel, rs.MaxDepth)
}

func run(ctx context.Context, cfg *config, logger core.Logger) error {
	preset, err := createScene(cfg.Scene, cfg.Mesh)
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene (%v)...\n", preset.Name, preset.Scene)

	rs, err := buildSetting(cfg, preset)
	if err != nil {
		return err
	}

	executor, err := renderer.NewExecutor(cfg.Executor, cfg.Workers)
	if err != nil {
		return err
	}

	startTime := time.Now()
	pixels, stats, err := renderer.NewRenderer(executor, logger).Render(rs)
	if err != nil {
		return err
	}
	logger.Printf("Render completed in %v (%.1f samples per pixel)\n", time.Since(startTime), stats.AverageSamples())

	filename := outputPath(cfg, rs)
	if err := imageio.SaveFile(filename, rs.Width, rs.Height, pixels); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", filename)

	if cfg.Open != "" {
		if err := imageio.Open(ctx, cfg.Open, filename); err != nil {
			return err
		}
	}
	if cfg.Preview {
		if err := preview.Show(preview.Image{Width: rs.Width, Height: rs.Height, Pixels: pixels}); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	cfg, fs, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		os.Exit(2)
	}

	// Show help if requested
	if cfg.Help {
		printHelp(fs)
		return
	}

	fmt.Println("Starting Path Tracer...")
	if err := run(context.Background(), cfg, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
