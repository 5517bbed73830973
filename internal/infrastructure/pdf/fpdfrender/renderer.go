package fpdfrender

import (
	"bytes"

	"gerador_orcamentos/internal/domain/entities"
	"gerador_orcamentos/internal/domain/theme"
	"gerador_orcamentos/internal/domain/trace"
	"gerador_orcamentos/internal/infrastructure/pdf/layout"

	"github.com/go-pdf/fpdf"
)

// A4 portrait in millimetres.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	margin       = 20.0
	contentWidth = pageWidth - 2*margin
	bottomLimit  = pageHeight - margin
	textInset    = 3.0

	headerHeight        = 40.0
	runningHeaderHeight = 14.0
	bannerRect          = 10.0
	bannerHeight        = 12.0
	sectionSpacing      = 3.0
	rowHeight           = 8.0
	lineHeight          = 5.0
	bodySize            = 10.0
	tableSize           = 9.0

	totalsOffset = 95.0
	totalsWidth  = contentWidth - totalsOffset
	totalsLine   = 7.0
	totalsRow    = 10.0

	ctaHeight    = 18.0
	footerHeight = 12.0

	maxDescriptionChars = 40
	fontFamily          = "Helvetica"
)

// Options tune the generated file.
type Options struct {
	// Compress deflates page streams. Tests turn it off to inspect text operators.
	Compress bool
}

// Renderer produces the paginated quote document with go-pdf/fpdf.
type Renderer struct {
	opts Options
}

func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

func (r *Renderer) Path() entities.RenderPath { return entities.RenderPathStandard }

// Render expects a normalized document. Validation runs before any page exists, so
// invalid input never yields partial output.
func (r *Renderer) Render(doc entities.QuoteDocument, gen entities.GenerationContext) ([]byte, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.SetCompression(r.opts.Compress)
	pdf.SetCreationDate(gen.GeneratedAt)
	pdf.SetTitle("Orçamento - "+doc.Client.Name, true)
	pdf.SetAuthor(doc.Company.Name, true)
	pdf.SetCreator("gerador_orcamentos", false)
	pdf.AliasNbPages("")

	b := &builder{
		pdf:     pdf,
		tr:      pdf.UnicodeTranslatorFromDescriptor(""),
		palette: theme.Resolve(doc.ColorTheme, doc.ThemeOverride),
		doc:     doc,
		gen:     gen,
	}
	if gen.Accounted() {
		b.watermark = trace.Watermark(trace.Fingerprint(gen.CallerID, gen.DeviceFingerprint, gen.GeneratedAt), gen.GeneratedAt)
	}
	pdf.SetFooterFunc(b.pageNumber)
	pdf.AddPage()
	b.cursor = layout.NewCursor(b.header(), bottomLimit, b.newPage)

	b.company()
	b.client()
	b.pitch()
	b.items()
	b.totals()
	if doc.SpecialConditions != "" {
		b.freeText(layout.TitleConditions, doc.SpecialConditions)
	}
	if doc.Observations != "" {
		b.freeText(layout.TitleObservations, doc.Observations)
	}
	b.callToAction()
	b.footer()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, entities.NewRenderError("write fpdf document", err)
	}
	return buf.Bytes(), nil
}
