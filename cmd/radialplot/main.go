package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"radialplot/internal/chart"
	"radialplot/internal/config"
	"radialplot/internal/dataset"
	"radialplot/internal/export"
	"radialplot/internal/logging"
	"radialplot/internal/raster"
	"radialplot/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	dataFile := flag.String("data", "", "Dataset file (.json or .xml)")
	output := flag.String("o", "", "Output file (default: <output-dir>/chart.<format>)")
	outputDir := flag.String("output-dir", "", "Output directory (default: out)")
	format := flag.String("format", "", "Output format: png, webp, tga or svg (default: png)")
	size := flag.Int("size", 0, "Image edge in pixels (default: 512)")
	frames := flag.Bool("frames", false, "Export the intro animation as numbered frames")
	fps := flag.Int("fps", 0, "Frames per second for -frames (default: 30)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	scaleType := flag.String("scale", "", "Value scale: linear or log")
	interp := flag.String("interp", "", "Area interpolation: linear-closed or cardinal-closed")
	easing := flag.String("easing", "", "Animation easing, e.g. cubic-in-out")
	freeDraw := flag.Bool("free-draw", false, "Treat any total as valid")
	noAnimate := flag.Bool("no-animate", false, "Disable the intro animation")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")

	flag.Parse()

	if *dataFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -data is required.")
		flag.Usage()
		os.Exit(2)
	}

	// Load config
	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	if *output != "" && *format == "" {
		if f, err := export.FormatFromPath(*output); err == nil {
			*format = string(f)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir:     *outputDir,
		Format:        *format,
		Size:          *size,
		FPS:           *fps,
		Workers:       *workers,
		Scale:         *scaleType,
		Interpolation: *interp,
		Easing:        *easing,
		FreeDraw:      *freeDraw,
		NoAnimate:     *noAnimate,
		LogLevel:      *logLevel,
	})

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	logger, closeLog, err := logging.Setup(cfg.LogFile, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	outFormat, err := export.ParseFormat(cfg.Render.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := dataset.LoadFile(*dataFile, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		os.Exit(1)
	}

	doc := scene.New()
	c := chart.New(cfg.Chart, doc, logger)
	c.OnDatasetChanged(data.Dataset, data.Compare, data.Scenes)
	if c.Model() == nil {
		fmt.Fprintf(os.Stderr, "Error: %s has no entries\n", *dataFile)
		os.Exit(1)
	}

	st := c.State()
	fmt.Printf("Radial plot → %s\n", outFormat)
	fmt.Printf("Entries: %d, Sum: %g (%s)\n", len(c.Dataset()), st.Sum, st.Validity)

	ropts := raster.Options{
		Size:        cfg.Render.Size,
		Supersample: cfg.Render.Supersample,
		Theme:       raster.DefaultTheme(),
	}

	if !*frames {
		c.FinishAnimation()
		path := *output
		if path == "" {
			path = filepath.Join(cfg.Render.OutputDir, "chart"+outFormat.Ext())
		}
		if err := export.SaveScene(path, doc, outFormat, ropts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Output: %s\n", path)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	seq := export.SampleFrames(c, doc, cfg.Render.FPS)
	fmt.Printf("Frames: %d at %d fps, Workers: %d\n", len(seq), cfg.Render.FPS, cfg.Render.Workers)
	fmt.Printf("Output: %s\n", cfg.Render.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := export.Run(ctx, export.FrameConfig{
		OutputDir: cfg.Render.OutputDir,
		Format:    outFormat,
		Workers:   cfg.Render.Workers,
		Raster:    ropts,
		Logger:    logger,
	}, seq)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	// Count results
	var failed []export.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", len(results)-len(failed), len(results))

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		limit := min(len(failed), 20)
		for _, r := range failed[:limit] {
			fmt.Printf("  frame %d: %s\n", r.Index, r.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.Render.OutputDir, "manifest.json")
	m := export.NewManifest(cfg.Render.FPS, outFormat, cfg.Render.Size, results)
	if err := export.WriteManifest(manifestPath, m); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}
