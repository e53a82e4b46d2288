package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"radialplot/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := config.DefaultChart()
	assert.Equal(t, 43.0, c.PlotRadius)
	assert.Equal(t, 3.0, c.InnerRadius)
	assert.Equal(t, 1.0, c.PointRadius)
	assert.Equal(t, 2.0, c.HoverPointRadius)
	assert.Equal(t, 7.0, c.Padding)
	assert.Equal(t, "linear-closed", c.Interpolation)
	assert.Equal(t, "linear", c.Scale)
	assert.Equal(t, "linear", c.Easing)
	assert.False(t, c.Editable)
	assert.True(t, c.Labelled)
	assert.True(t, c.Tooltips)
	assert.True(t, c.Animated)
	assert.False(t, c.FreeDraw)
	assert.Equal(t, 400*time.Millisecond, c.AnimateDuration())
	assert.Equal(t, 600*time.Millisecond, c.DelayDuration())
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	raw := `{"chart": {"scale": "log", "labelled": false}, "render": {"size": 256}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "log", cfg.Chart.Scale)
	assert.False(t, cfg.Chart.Labelled)
	assert.True(t, cfg.Chart.Tooltips, "unset bools keep their default")
	assert.Equal(t, 43.0, cfg.Chart.PlotRadius)
	assert.Equal(t, 256, cfg.Render.Size)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = config.Load(path)
	assert.ErrorContains(t, err, "config: parse")
}

func TestResolveOverridesAndSanitizes(t *testing.T) {
	cfg := config.Default()
	cfg.Chart.PlotRadius = -1
	cfg.Chart.Tension = 3
	cfg.Render.Format = ""

	cfg.Resolve(config.Flags{
		Format:    ".WebP",
		Size:      128,
		Scale:     " LOG ",
		Editable:  true,
		NoAnimate: true,
	})

	assert.Equal(t, 43.0, cfg.Chart.PlotRadius)
	assert.Equal(t, 0.7, cfg.Chart.Tension)
	assert.Equal(t, "webp", cfg.Render.Format)
	assert.Equal(t, 128, cfg.Render.Size)
	assert.Equal(t, "log", cfg.Chart.Scale)
	assert.True(t, cfg.Chart.Editable)
	assert.False(t, cfg.Chart.Animated)
}
