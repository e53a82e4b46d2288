// Package tui shows a chart in the terminal. The chart is rasterised and
// drawn with upper half-block cells, two pixels per cell, and the mouse
// drives hover and drag editing.
package tui

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"radialplot/internal/chart"
	"radialplot/internal/logging"
	"radialplot/internal/mathutil"
	"radialplot/internal/raster"
	"radialplot/internal/scene"
)

const (
	frameInterval = 16 * time.Millisecond
	halfBlock     = '▀'

	// hitSlack widens point hit targets, in plot units, since a terminal
	// cell covers a lot of chart.
	hitSlack = 2.5
)

// Viewer binds a chart and the scene it draws into to a tcell screen.
type Viewer struct {
	screen tcell.Screen
	chart  *chart.Chart
	doc    *scene.Document
	theme  raster.Theme
	logger *slog.Logger

	side     int // pixel edge of the square chart image
	offX     int // first cell column of the image
	dragging int // index being dragged, -1 when idle
	dirty    bool
	status   string
}

// New returns a viewer. The screen must already be initialised.
func New(screen tcell.Screen, c *chart.Chart, doc *scene.Document, logger *slog.Logger) *Viewer {
	th := raster.DefaultTheme()
	th.Background = color.NRGBA{0x1c, 0x1f, 0x24, 0xff}
	th.Styles["label"] = raster.Style{Fill: color.NRGBA{0xe0, 0xe4, 0xea, 0xff}, TextSize: 3}
	th.Styles["tooltip-text"] = raster.Style{Fill: color.NRGBA{0xff, 0xff, 0xff, 0xff}, TextSize: 3.5}

	v := &Viewer{
		screen:   screen,
		chart:    c,
		doc:      doc,
		theme:    th,
		logger:   logging.OrDefault(logger),
		dragging: -1,
		dirty:    true,
	}
	v.layout()
	return v
}

func (v *Viewer) layout() {
	w, h := v.screen.Size()
	rows := h - 1 // last row is the status line
	if rows < 1 {
		rows = 1
	}
	v.side = min(w, rows*2)
	if v.side < 1 {
		v.side = 1
	}
	v.offX = (w - v.side) / 2
	v.dirty = true
}

// CellToView maps the centre of a terminal cell to view-box coordinates.
func (v *Viewer) CellToView(x, y int) mathutil.Vec2 {
	k := scene.ViewBoxSize / float64(v.side)
	return mathutil.Vec2{(float64(x-v.offX) + 0.5) * k, float64(2*y+1) * k}
}

// HandleEvent applies one terminal event and reports whether the viewer
// should keep running.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
			v.chart.FinishAnimation()
			v.dirty = true
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		v.handleMouse(v.CellToView(x, y), ev.Buttons()&tcell.Button1 != 0)

	case *tcell.EventResize:
		v.screen.Sync()
		v.layout()
	}
	return true
}

func (v *Viewer) handleMouse(at mathutil.Vec2, pressed bool) {
	switch {
	case pressed && v.dragging >= 0:
		if p, ok := v.chart.DragMove(v.dragging, v.chart.ToPlot(at)); ok {
			v.logger.Debug("drag edit", "id", p.ID, "value", p.Value)
			v.dirty = true
		}

	case pressed:
		i := v.chart.HitTest(at, hitSlack)
		if i >= 0 && v.chart.DragStart(i) {
			v.dragging = i
			v.chart.Hover(i)
			v.dirty = true
		}

	case v.dragging >= 0:
		v.chart.DragEnd()
		v.logger.Info("drag finished", "index", v.dragging, "sum", v.chart.State().Sum)
		v.dragging = -1
		v.hover(at)
		v.dirty = true

	default:
		v.hover(at)
	}
}

func (v *Viewer) hover(at mathutil.Vec2) {
	before := v.chart.State().Hovered
	if i := v.chart.HitTest(at, hitSlack); i >= 0 {
		v.chart.Hover(i)
	} else {
		v.chart.Unhover()
	}
	if v.chart.State().Hovered != before {
		v.dirty = true
	}
}

// Dragging returns the index being dragged, or -1.
func (v *Viewer) Dragging() int {
	return v.dragging
}

// Tick advances the intro animation to now and marks the frame dirty while
// it runs.
func (v *Viewer) Tick(now time.Duration) {
	if v.chart.Animating() {
		v.chart.Advance(now)
		v.dirty = true
	}
}

// Draw repaints the screen if anything changed since the last call.
func (v *Viewer) Draw() {
	if !v.dirty {
		return
	}
	v.dirty = false

	img := raster.RenderScene(v.doc, raster.Options{Size: v.side, Supersample: 2, Theme: v.theme})
	v.screen.Clear()
	v.paint(img)
	v.drawStatus()
	v.screen.Show()
}

func (v *Viewer) paint(img *image.NRGBA) {
	for py := 0; py < v.side; py += 2 {
		for px := 0; px < v.side; px++ {
			top := img.NRGBAAt(px, py)
			bottom := v.theme.Background
			if py+1 < v.side {
				bottom = img.NRGBAAt(px, py+1)
			}
			style := tcell.StyleDefault.Foreground(cellColor(top)).Background(cellColor(bottom))
			v.screen.SetContent(v.offX+px, py/2, halfBlock, nil, style)
		}
	}
}

func (v *Viewer) drawStatus() {
	st := v.chart.State()
	v.status = fmt.Sprintf(" sum %s  %s", formatSum(st.Sum), st.Validity)
	if v.dragging >= 0 {
		v.status += "  dragging"
	}
	v.status += "  [q] quit"

	w, h := v.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if st.Validity.Suffix() != "" {
		style = style.Foreground(tcell.ColorRed)
	}
	x := 0
	for _, r := range v.status {
		if x >= w {
			break
		}
		v.screen.SetContent(x, h-1, r, nil, style)
		x++
	}
}

// Status returns the last drawn status line.
func (v *Viewer) Status() string {
	return v.status
}

// Run polls events and ticks frames until the user quits or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	start := time.Now()
	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if !v.HandleEvent(ev) {
				return nil
			}
			v.Draw()

		case <-ticker.C:
			v.Tick(time.Since(start))
			v.Draw()
		}
	}
}

func cellColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func formatSum(s float64) string {
	return fmt.Sprintf("%.4g", s)
}
