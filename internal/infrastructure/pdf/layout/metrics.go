package layout

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

// Metrics measures strings in the standard Helvetica fonts, in points, with the core
// font tables shipped by fpdf. No page is ever added to the underlying document.
// A Metrics is not safe for concurrent use.
type Metrics struct {
	pdf *fpdf.Fpdf
}

func NewHelveticaMetrics() (*Metrics, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFont("Helvetica", "", 10)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("load helvetica metrics: %w", err)
	}
	return &Metrics{pdf: pdf}, nil
}

// Measure returns the width function for Helvetica (or Helvetica-Bold) at size.
// Text is measured as the WinAnsi bytes a raw content stream carries.
func (m *Metrics) Measure(size float64, bold bool) Measure {
	style := ""
	if bold {
		style = "B"
	}
	return func(s string) float64 {
		m.pdf.SetFont("Helvetica", style, size)
		return m.pdf.GetStringWidth(string(WinAnsi(s)))
	}
}

// WinAnsi encodes s in the Windows-1252 code page used by the standard fonts.
// Characters outside the code page become '?' and control characters become spaces.
func WinAnsi(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.Windows1252.EncodeRune(r)
		switch {
		case !ok:
			b = '?'
		case b < 0x20:
			b = ' '
		}
		out = append(out, b)
	}
	return out
}
