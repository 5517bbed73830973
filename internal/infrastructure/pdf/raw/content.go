package raw

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"gerador_orcamentos/internal/domain/theme"
	"gerador_orcamentos/internal/infrastructure/pdf/layout"
)

// Font resource names referenced by the page.
const (
	fontBold    = "F1"
	fontRegular = "F2"
	gsWatermark = "GS1"
)

// contentStream accumulates page drawing operators.
type contentStream struct {
	buf bytes.Buffer
}

func (c *contentStream) fillColor(rgb theme.RGB) {
	r, g, b := rgb.Floats()
	fmt.Fprintf(&c.buf, "%s %s %s rg\n", num(r), num(g), num(b))
}

func (c *contentStream) strokeColor(rgb theme.RGB) {
	r, g, b := rgb.Floats()
	fmt.Fprintf(&c.buf, "%s %s %s RG\n", num(r), num(g), num(b))
}

// fillRect paints a rectangle whose lower-left corner is (x, y).
func (c *contentStream) fillRect(x, y, w, h float64, rgb theme.RGB) {
	c.fillColor(rgb)
	fmt.Fprintf(&c.buf, "%s %s %s %s re f\n", num(x), num(y), num(w), num(h))
}

func (c *contentStream) fillStrokeRect(x, y, w, h, lineWidth float64, fill, stroke theme.RGB) {
	c.fillColor(fill)
	c.strokeColor(stroke)
	fmt.Fprintf(&c.buf, "%s w\n%s %s %s %s re B\n", num(lineWidth), num(x), num(y), num(w), num(h))
}

func (c *contentStream) line(x1, y1, x2, y2, lineWidth float64, rgb theme.RGB) {
	c.strokeColor(rgb)
	fmt.Fprintf(&c.buf, "%s w\n%s %s m %s %s l S\n", num(lineWidth), num(x1), num(y1), num(x2), num(y2))
}

// text shows a single line with its baseline at (x, y).
func (c *contentStream) text(font string, size, x, y float64, rgb theme.RGB, s string) {
	c.fillColor(rgb)
	fmt.Fprintf(&c.buf, "BT /%s %s Tf %s %s Td ", font, num(size), num(x), num(y))
	c.buf.Write(pdfString(s))
	c.buf.WriteString(" Tj ET\n")
}

// textLines shows consecutive lines, the first baseline at (x, y), each following
// one moved down by leading with a relative Td.
func (c *contentStream) textLines(font string, size, x, y, leading float64, rgb theme.RGB, lines []string) {
	if len(lines) == 0 {
		return
	}
	c.fillColor(rgb)
	fmt.Fprintf(&c.buf, "BT /%s %s Tf %s %s Td ", font, num(size), num(x), num(y))
	for i, l := range lines {
		if i > 0 {
			fmt.Fprintf(&c.buf, "0 %s Td ", num(-leading))
		}
		c.buf.Write(pdfString(l))
		c.buf.WriteString(" Tj ")
	}
	c.buf.WriteString("ET\n")
}

func (c *contentStream) saveState()             { c.buf.WriteString("q\n") }
func (c *contentStream) restoreState()          { c.buf.WriteString("Q\n") }
func (c *contentStream) graphicsState(n string) { fmt.Fprintf(&c.buf, "/%s gs\n", n) }

func (c *contentStream) Bytes() []byte { return c.buf.Bytes() }

// num prints a coordinate with at most two decimals and no exponent.
func num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// pdfString encodes s as a WinAnsi literal string with delimiters escaped.
func pdfString(s string) []byte {
	enc := layout.WinAnsi(s)
	out := make([]byte, 0, len(enc)+2)
	out = append(out, '(')
	for _, b := range enc {
		if b == '(' || b == ')' || b == '\\' {
			out = append(out, '\\')
		}
		out = append(out, b)
	}
	return append(out, ')')
}
