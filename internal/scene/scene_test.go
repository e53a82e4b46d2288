package scene_test

import (
	"encoding/xml"
	"strings"
	"testing"

	"radialplot/internal/geometry"
	"radialplot/internal/mathutil"
	"radialplot/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() (*scene.Document, *scene.Node) {
	doc := scene.New()
	g := doc.Append(nil, scene.NewGroup("plot", scene.Transform{Translate: mathutil.Vec2{50, 50}}))
	doc.Append(g, scene.NewLine("axis", mathutil.Vec2{}, mathutil.Vec2{0, -46}))
	doc.Append(g, scene.NewCircle("point", mathutil.Vec2{3, 4}, 1))
	doc.Append(g, scene.NewText("label", mathutil.Vec2{1, 2}, "A&B"))
	var p geometry.Path
	p.MoveTo(mathutil.Vec2{0, -10})
	p.LineTo(mathutil.Vec2{10, 0})
	p.Close()
	doc.Append(g, scene.NewPath("area", p))
	return doc, g
}

func TestCountAndFind(t *testing.T) {
	doc, _ := sample()
	assert.Equal(t, 1, doc.Count(scene.Line))
	assert.Equal(t, 1, doc.Count(scene.Text))
	assert.Equal(t, 1, doc.Count(scene.Group), "root is not counted")
	assert.Len(t, doc.FindClass("point", "area"), 2)
}

func TestRemoveAndClear(t *testing.T) {
	doc, _ := sample()
	pts := doc.FindClass("point")
	require.Len(t, pts, 1)
	doc.Remove(pts[0])
	assert.Equal(t, 0, doc.Count(scene.Circle))
	assert.Nil(t, pts[0].Parent())
	doc.Remove(pts[0]) // detached: no-op

	doc.Clear()
	assert.Empty(t, doc.Root.Children)
}

func TestWalkAccumulatesTransforms(t *testing.T) {
	doc, g := sample()
	label := doc.FindClass("label")[0]
	label.Transform = scene.Transform{Translate: mathutil.Vec2{5, 0}, Rotate: 90}

	var got mathutil.Vec2
	doc.Walk(func(n *scene.Node, m mathutil.Mat3) {
		if n == label {
			got = m.MulPoint(mathutil.Vec2{0, -1})
		}
	})
	// (0,-1) rotated 90° clockwise is (1,0), then +5 and +50.
	assert.InDelta(t, 56, got[0], 1e-9)
	assert.InDelta(t, 50, got[1], 1e-9)
	assert.Equal(t, g, label.Parent())
}

func TestCloneIsDeep(t *testing.T) {
	doc, _ := sample()
	cp := doc.Clone()
	doc.FindClass("point")[0].R = 9
	assert.Equal(t, 1.0, cp.FindClass("point")[0].R)
	assert.Equal(t, doc.Count(scene.Path), cp.Count(scene.Path))
}

func TestWriteSVG(t *testing.T) {
	doc, _ := sample()
	out := doc.String()

	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"`))
	assert.Contains(t, out, `<g class="plot" transform="translate(50,50)">`)
	assert.Contains(t, out, `<line class="axis" x1="0" y1="0" x2="0" y2="-46"/>`)
	assert.Contains(t, out, `<circle class="point" cx="3" cy="4" r="1"/>`)
	assert.Contains(t, out, `>A&amp;B</text>`)
	assert.Contains(t, out, `d="M0,-10L10,0Z"`)

	// Well-formed XML.
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err != nil {
			assert.Equal(t, "EOF", err.Error())
			break
		}
	}
}

func TestTransformString(t *testing.T) {
	tr := scene.Transform{Translate: mathutil.Vec2{50, 50}, Scale: 0.5, Rotate: 45}
	assert.Equal(t, "translate(50,50) scale(0.5) rotate(45)", tr.String())
	assert.True(t, scene.Transform{Scale: 1}.IsZero())
}
