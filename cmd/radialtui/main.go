package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"radialplot/internal/chart"
	"radialplot/internal/config"
	"radialplot/internal/dataset"
	"radialplot/internal/logging"
	"radialplot/internal/scene"
	"radialplot/internal/tui"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	dataFile := flag.String("data", "", "Dataset file (.json or .xml)")
	scaleType := flag.String("scale", "", "Value scale: linear or log")
	interp := flag.String("interp", "", "Area interpolation: linear-closed or cardinal-closed")
	easing := flag.String("easing", "", "Animation easing, e.g. cubic-in-out")
	readOnly := flag.Bool("read-only", false, "Disable drag editing")
	freeDraw := flag.Bool("free-draw", false, "Treat any total as valid")
	noAnimate := flag.Bool("no-animate", false, "Disable the intro animation")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")

	flag.Parse()

	if *dataFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -data is required.")
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Scale:         *scaleType,
		Interpolation: *interp,
		Easing:        *easing,
		Editable:      !*readOnly,
		FreeDraw:      *freeDraw,
		NoAnimate:     *noAnimate,
		LogLevel:      *logLevel,
	})

	// The terminal owns stderr while the viewer runs, so logs go to the
	// file only.
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	logger, closeLog, err := logging.SetupFile(cfg.LogFile, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	data, err := dataset.LoadFile(*dataFile, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	doc := scene.New()
	c := chart.New(cfg.Chart, doc, logger)
	c.OnDatasetChanged(data.Dataset, data.Compare, data.Scenes)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	runErr := tui.New(screen, c, doc, logger).Run(ctx)
	stop()
	screen.Fini()

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}

	for _, e := range c.Dataset() {
		fmt.Printf("%d\t%s\t%g\n", e.ID, e.Name, e.Value)
	}
}
