package export

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"radialplot/internal/chart"
	"radialplot/internal/logging"
	"radialplot/internal/raster"
	"radialplot/internal/scene"
)

// FrameConfig holds the shared settings for a frame export run.
type FrameConfig struct {
	OutputDir string
	Format    Format
	Workers   int
	Raster    raster.Options
	Logger    *slog.Logger
}

// Frame is one snapshot of the chart at a timeline offset.
type Frame struct {
	Index int
	At    time.Duration
	Doc   *scene.Document
}

// Result holds the outcome of writing one frame.
type Result struct {
	Index   int
	At      time.Duration
	Image   string // path relative to OutputDir
	Success bool
	Error   string
}

// SampleFrames plays the chart's intro animation at fps and snapshots doc
// after every step. The chart must have just drawn into doc. A chart with
// no pending animation yields a single frame of its current state.
func SampleFrames(c *chart.Chart, doc *scene.Document, fps int) []Frame {
	if fps < 1 {
		fps = 1
	}
	if !c.Animating() {
		return []Frame{{Index: 0, Doc: doc.Clone()}}
	}

	end := c.Timeline().End()
	step := time.Second / time.Duration(fps)
	n := int(math.Ceil(float64(end)/float64(step))) + 1

	frames := make([]Frame, 0, n)
	for k := 0; k < n; k++ {
		at := time.Duration(k) * step
		if at > end {
			at = end
		}
		c.Advance(at)
		frames = append(frames, Frame{Index: k, At: at, Doc: doc.Clone()})
	}
	return frames
}

// FrameName is the file name of frame i.
func FrameName(i int, f Format) string {
	return fmt.Sprintf("frame_%04d%s", i, f.Ext())
}

// Run writes all frames using a worker pool. Results are indexed like
// frames; frames not started before ctx is cancelled report ctx's error.
func Run(ctx context.Context, cfg FrameConfig, frames []Frame) []Result {
	logger := logging.OrDefault(cfg.Logger)
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64
	start := time.Now()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if p := processed.Load(); p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					logger.Info("export progress", "done", p, "total", total, "frames_per_sec", rate)
				}
			}
		}
	}()

	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = writeFrame(cfg, frames[idx])
				processed.Add(1)
			}
		}()
	}

send:
	for i := range frames {
		select {
		case frameChan <- i:
		case <-ctx.Done():
			for j := i; j < total; j++ {
				results[j] = Result{Index: frames[j].Index, At: frames[j].At, Error: ctx.Err().Error()}
			}
			break send
		}
	}
	close(frameChan)

	wg.Wait()
	close(done)

	logger.Debug("export finished", "frames", total, "elapsed", time.Since(start))
	return results
}

func writeFrame(cfg FrameConfig, fr Frame) Result {
	name := FrameName(fr.Index, cfg.Format)
	res := Result{Index: fr.Index, At: fr.At, Image: name}
	if err := SaveScene(filepath.Join(cfg.OutputDir, name), fr.Doc, cfg.Format, cfg.Raster); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	return res
}
