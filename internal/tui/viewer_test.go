package tui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radialplot/internal/chart"
	"radialplot/internal/config"
	"radialplot/internal/dataset"
	"radialplot/internal/logging"
	"radialplot/internal/scene"
)

func newViewer(t *testing.T, mutate func(*config.Chart)) (*Viewer, dataset.Dataset, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 21)

	opts := config.DefaultChart()
	opts.Animated = false
	opts.Editable = true
	if mutate != nil {
		mutate(&opts)
	}
	doc := scene.New()
	c := chart.New(opts, doc, logging.Discard())
	ds := dataset.Dataset{{ID: 0, Name: "A", Value: 50}, {ID: 1, Name: "B", Value: 50}}
	c.OnDatasetChanged(ds, nil, nil)
	return New(screen, c, doc, logging.Discard()), ds, screen
}

func mouse(x, y int, b tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, b, tcell.ModNone)
}

func TestLayoutAndCellMapping(t *testing.T) {
	v, _, _ := newViewer(t, nil)
	assert.Equal(t, 40, v.side)
	assert.Equal(t, 0, v.offX)

	p := v.CellToView(0, 0)
	assert.InDelta(t, 1.25, p[0], 1e-9)
	assert.InDelta(t, 2.5, p[1], 1e-9)
}

func TestKeysQuit(t *testing.T) {
	v, _, _ := newViewer(t, nil)
	assert.False(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
	assert.False(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
}

func TestMouseDragEditsEntry(t *testing.T) {
	v, ds, _ := newViewer(t, nil)

	// Cell (19,5) sits next to the top point at value 50.
	require.True(t, v.HandleEvent(mouse(19, 5, tcell.Button1)))
	require.Equal(t, 0, v.Dragging())
	assert.True(t, v.chart.State().InDrag)

	v.HandleEvent(mouse(19, 1, tcell.Button1))
	assert.Equal(t, 91.0, ds[0].Value)
	assert.Equal(t, 141.0, v.chart.State().Sum)

	v.HandleEvent(mouse(19, 1, tcell.ButtonNone))
	assert.Equal(t, -1, v.Dragging())
	assert.False(t, v.chart.State().InDrag)
	assert.Equal(t, 91.0, ds[0].Value)
}

func TestMouseDragIgnoredWhenNotEditable(t *testing.T) {
	v, ds, _ := newViewer(t, func(o *config.Chart) { o.Editable = false })
	v.HandleEvent(mouse(19, 5, tcell.Button1))
	v.HandleEvent(mouse(19, 1, tcell.Button1))
	assert.Equal(t, -1, v.Dragging())
	assert.Equal(t, 50.0, ds[0].Value)
}

func TestHoverShowsTooltip(t *testing.T) {
	v, _, _ := newViewer(t, nil)
	v.HandleEvent(mouse(19, 5, tcell.ButtonNone))
	assert.Equal(t, 0, v.chart.State().Hovered)
	require.Len(t, v.doc.FindClass("tooltip-text"), 1)

	v.HandleEvent(mouse(0, 0, tcell.ButtonNone))
	assert.Equal(t, -1, v.chart.State().Hovered)
	assert.Empty(t, v.doc.FindClass("tooltip-text"))
}

func TestDrawPaintsHalfBlocksAndStatus(t *testing.T) {
	v, _, screen := newViewer(t, nil)
	v.Draw()

	r, _, _, _ := screen.GetContent(20, 10)
	assert.Equal(t, halfBlock, r)
	assert.Contains(t, v.Status(), "sum 100")
	assert.Contains(t, v.Status(), "valid")

	r, _, _, _ = screen.GetContent(1, 20)
	assert.Equal(t, 's', r)
}

func TestTickAdvancesIntro(t *testing.T) {
	v, _, _ := newViewer(t, func(o *config.Chart) { o.Animated = true })
	require.True(t, v.chart.Animating())
	v.Tick(0)
	v.Tick(time.Second)
	assert.False(t, v.chart.Animating())
	assert.Equal(t, 1.0, v.doc.FindClass("point")[0].R)
}
