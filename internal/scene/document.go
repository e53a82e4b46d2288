package scene

import "radialplot/internal/mathutil"

// ViewBoxSize is the fixed width and height of the chart view box.
const ViewBoxSize = 100

// Document is a scene graph rooted at an SVG-like root group.
type Document struct {
	Width  float64
	Height float64
	Root   *Node
}

// New returns an empty document with a 100×100 view box.
func New() *Document {
	return &Document{Width: ViewBoxSize, Height: ViewBoxSize, Root: NewGroup("", Transform{})}
}

// Clear removes every node.
func (d *Document) Clear() {
	for _, ch := range d.Root.Children {
		ch.parent = nil
	}
	d.Root.Children = nil
}

// Append adds n as the last child of parent (the root when parent is nil).
func (d *Document) Append(parent, n *Node) *Node {
	if parent == nil {
		parent = d.Root
	}
	if n.parent != nil {
		d.Remove(n)
	}
	n.parent = parent
	parent.Children = append(parent.Children, n)
	return n
}

// Remove detaches n from its parent. Detached nodes are ignored.
func (d *Document) Remove(n *Node) {
	p := n.parent
	if p == nil {
		return
	}
	for i, ch := range p.Children {
		if ch == n {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Walk visits every node depth-first in paint order with the accumulated
// transform of its ancestors and itself.
func (d *Document) Walk(fn func(n *Node, m mathutil.Mat3)) {
	var visit func(n *Node, parent mathutil.Mat3)
	visit = func(n *Node, parent mathutil.Mat3) {
		m := parent
		if !n.Transform.IsZero() {
			m = mathutil.Mat3Mul(parent, n.Transform.Matrix())
		}
		fn(n, m)
		for _, ch := range n.Children {
			visit(ch, m)
		}
	}
	visit(d.Root, mathutil.Mat3Identity())
}

// Count returns the number of nodes of kind k.
func (d *Document) Count(k Kind) int {
	c := 0
	d.Walk(func(n *Node, _ mathutil.Mat3) {
		if n.Kind == k && n != d.Root {
			c++
		}
	})
	return c
}

// FindClass returns nodes whose class is one of classes, in paint order.
func (d *Document) FindClass(classes ...string) []*Node {
	var out []*Node
	d.Walk(func(n *Node, _ mathutil.Mat3) {
		for _, c := range classes {
			if n.Class == c {
				out = append(out, n)
				return
			}
		}
	})
	return out
}

// Clone deep-copies the document. Frame exporters snapshot with it.
func (d *Document) Clone() *Document {
	return &Document{Width: d.Width, Height: d.Height, Root: d.Root.clone(nil)}
}
