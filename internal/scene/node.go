// Package scene is the SVG-equivalent scene graph the chart draws into.
// Backends (SVG writer, rasteriser, terminal viewer) read it back.
package scene

import (
	"fmt"
	"strings"

	"radialplot/internal/geometry"
	"radialplot/internal/mathutil"
)

// Kind is the element type of a node.
type Kind uint8

const (
	Group Kind = iota
	Path
	Circle
	Line
	Text
)

func (k Kind) String() string {
	switch k {
	case Path:
		return "path"
	case Circle:
		return "circle"
	case Line:
		return "line"
	case Text:
		return "text"
	}
	return "g"
}

// Transform is applied as translate, then scale, then rotate (SVG order).
type Transform struct {
	Translate mathutil.Vec2
	Scale     float64 // 0 means 1
	Rotate    float64 // degrees, clockwise on screen
}

// Matrix returns the affine matrix of t.
func (t Transform) Matrix() mathutil.Mat3 {
	m := mathutil.Translate(t.Translate[0], t.Translate[1])
	if t.Scale != 0 && t.Scale != 1 {
		m = mathutil.Mat3Mul(m, mathutil.Scale(t.Scale))
	}
	if t.Rotate != 0 {
		m = mathutil.Mat3Mul(m, mathutil.Rot(mathutil.Deg2Rad(t.Rotate)))
	}
	return m
}

// IsZero reports whether t is the identity.
func (t Transform) IsZero() bool {
	return t.Translate == (mathutil.Vec2{}) && (t.Scale == 0 || t.Scale == 1) && t.Rotate == 0
}

// String renders the SVG transform attribute.
func (t Transform) String() string {
	var parts []string
	if t.Translate != (mathutil.Vec2{}) {
		parts = append(parts, fmt.Sprintf("translate(%s,%s)",
			geometry.FormatNumber(t.Translate[0]), geometry.FormatNumber(t.Translate[1])))
	}
	if t.Scale != 0 && t.Scale != 1 {
		parts = append(parts, fmt.Sprintf("scale(%s)", geometry.FormatNumber(t.Scale)))
	}
	if t.Rotate != 0 {
		parts = append(parts, fmt.Sprintf("rotate(%s)", geometry.FormatNumber(t.Rotate)))
	}
	return strings.Join(parts, " ")
}

// Node is one element. Only the fields of its Kind are meaningful.
type Node struct {
	Kind      Kind
	Class     string
	Transform Transform

	D geometry.Path // Path

	Center mathutil.Vec2 // Circle
	R      float64

	From, To mathutil.Vec2 // Line

	Pos  mathutil.Vec2 // Text
	Text string

	Children []*Node
	parent   *Node
}

// Parent returns the node's parent, nil for the root or detached nodes.
func (n *Node) Parent() *Node {
	return n.parent
}

func NewGroup(class string, t Transform) *Node {
	return &Node{Kind: Group, Class: class, Transform: t}
}

func NewPath(class string, d geometry.Path) *Node {
	return &Node{Kind: Path, Class: class, D: d}
}

func NewCircle(class string, c mathutil.Vec2, r float64) *Node {
	return &Node{Kind: Circle, Class: class, Center: c, R: r}
}

func NewLine(class string, from, to mathutil.Vec2) *Node {
	return &Node{Kind: Line, Class: class, From: from, To: to}
}

func NewText(class string, pos mathutil.Vec2, text string) *Node {
	return &Node{Kind: Text, Class: class, Pos: pos, Text: text}
}

// clone deep-copies n and its subtree.
func (n *Node) clone(parent *Node) *Node {
	c := *n
	c.parent = parent
	c.D = append(geometry.Path(nil), n.D...)
	c.Children = make([]*Node, len(n.Children))
	for i, ch := range n.Children {
		c.Children[i] = ch.clone(&c)
	}
	return &c
}
