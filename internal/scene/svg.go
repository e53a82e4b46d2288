package scene

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"radialplot/internal/geometry"
)

// WriteSVG serialises the document as a standalone SVG file.
func (d *Document) WriteSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" class="plot-radial-plot">`,
		geometry.FormatNumber(d.Width), geometry.FormatNumber(d.Height))
	bw.WriteByte('\n')
	for _, ch := range d.Root.Children {
		if err := writeNode(bw, ch, 1); err != nil {
			return err
		}
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

// String returns the SVG text.
func (d *Document) String() string {
	var sb strings.Builder
	_ = d.WriteSVG(&sb)
	return sb.String()
}

func writeNode(w *bufio.Writer, n *Node, depth int) error {
	indent := strings.Repeat("  ", depth)
	w.WriteString(indent)
	w.WriteByte('<')
	w.WriteString(n.Kind.String())

	attr := func(k, v string) {
		w.WriteByte(' ')
		w.WriteString(k)
		w.WriteString(`="`)
		_ = xml.EscapeText(w, []byte(v))
		w.WriteByte('"')
	}
	num := geometry.FormatNumber

	if n.Class != "" {
		attr("class", n.Class)
	}
	if !n.Transform.IsZero() {
		attr("transform", n.Transform.String())
	}

	switch n.Kind {
	case Path:
		attr("d", n.D.String())
	case Circle:
		attr("cx", num(n.Center[0]))
		attr("cy", num(n.Center[1]))
		attr("r", num(n.R))
	case Line:
		attr("x1", num(n.From[0]))
		attr("y1", num(n.From[1]))
		attr("x2", num(n.To[0]))
		attr("y2", num(n.To[1]))
	case Text:
		attr("x", num(n.Pos[0]))
		attr("y", num(n.Pos[1]))
		w.WriteByte('>')
		if err := xml.EscapeText(w, []byte(n.Text)); err != nil {
			return err
		}
		w.WriteString("</text>\n")
		return nil
	}

	if len(n.Children) == 0 {
		w.WriteString("/>\n")
		return nil
	}
	w.WriteString(">\n")
	for _, ch := range n.Children {
		if err := writeNode(w, ch, depth+1); err != nil {
			return err
		}
	}
	w.WriteString(indent)
	fmt.Fprintf(w, "</%s>\n", n.Kind)
	return nil
}
