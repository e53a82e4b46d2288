package export

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry describes one written frame.
type ManifestEntry struct {
	Index  int    `json:"index"`
	TimeMs int64  `json:"time_ms"`
	Image  string `json:"image"`
}

// Manifest is the index written next to an exported frame sequence.
type Manifest struct {
	FPS        int             `json:"fps"`
	Format     Format          `json:"format"`
	Size       int             `json:"size"`
	DurationMs int64           `json:"duration_ms"`
	Frames     []ManifestEntry `json:"frames"`
}

// NewManifest lists the successful results in order.
func NewManifest(fps int, f Format, size int, results []Result) Manifest {
	m := Manifest{FPS: fps, Format: f, Size: size, Frames: []ManifestEntry{}}
	for _, r := range results {
		if !r.Success {
			continue
		}
		ms := r.At.Milliseconds()
		m.Frames = append(m.Frames, ManifestEntry{Index: r.Index, TimeMs: ms, Image: r.Image})
		if ms > m.DurationMs {
			m.DurationMs = ms
		}
	}
	return m
}

// WriteManifest writes m as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}
