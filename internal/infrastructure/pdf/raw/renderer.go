package raw

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gerador_orcamentos/internal/domain/entities"
	"gerador_orcamentos/internal/domain/format"
	"gerador_orcamentos/internal/domain/theme"
	"gerador_orcamentos/internal/domain/trace"
	"gerador_orcamentos/internal/infrastructure/pdf/layout"
)

// The secure renderer draws exactly one page. Positions below are distances from the
// top edge in points; pdfY converts them to the bottom-up PDF coordinate system.
// Items are laid out row by row, so everything below the table moves down by
// len(items) * rowHeight. Content reaching the footer area is rejected with
// ErrPageOverflow instead of being clipped.
const (
	pageWidth    = 612.0
	pageHeight   = 792.0
	margin       = 50.0
	contentWidth = pageWidth - 2*margin
	textInset    = 8.0

	headerHeight   = 90.0
	contentTop     = headerHeight + 20
	contentBottom  = pageHeight - 70
	bannerHeight   = 20.0
	bannerAdvance  = bannerHeight + 7
	sectionSpacing = 8.0
	rowHeight      = 18.0
	lineHeight     = 13.0
	bodySize       = 10.0
	tableSize      = 9.0
	ctaHeight      = 36.0

	totalsOffset = 292.0
	totalsWidth  = contentWidth - totalsOffset
	totalsLine   = 16.0
	totalsRow    = 24.0

	companySize    = 22.0
	companyMinSize = 12.0
	headerGap      = 16.0

	watermarkOpacity = "0.35"
)

// Hard caps for dynamic text. Values are cut, never wrapped.
const (
	maxNameChars        = 50
	maxEmailChars       = 50
	maxPhoneChars       = 20
	maxAddressChars     = 80
	maxFreeTextChars    = 200
	maxDescriptionChars = 30
)

var ErrPageOverflow = entities.ErrPageOverflow

var (
	white      = theme.RGB{R: 255, G: 255, B: 255}
	headerGray = theme.RGB{R: 229, G: 231, B: 235}
	zebraGray  = theme.RGB{R: 247, G: 248, B: 250}
	mutedGray  = theme.RGB{R: 107, G: 114, B: 128}
)

// table columns: x of left-aligned text or right edge of right-aligned text
const (
	colDescription = margin + textInset
	colQuantity    = margin + 280
	colUnitRight   = margin + 410
	colTotalRight  = margin + contentWidth - textInset
)

// Renderer hand-builds the single-page "secure" PDF. Documents that do not fit the
// page fail with ErrPageOverflow; choosing another layout is up to the caller.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Path() entities.RenderPath { return entities.RenderPathSecure }

// Render expects a normalized document.
func (r *Renderer) Render(doc entities.QuoteDocument, gen entities.GenerationContext) ([]byte, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	metrics, err := layout.NewHelveticaMetrics()
	if err != nil {
		return nil, entities.NewRenderError("font metrics", err)
	}

	p := &page{
		palette: theme.Resolve(doc.ColorTheme, doc.ThemeOverride),
		cursor:  layout.NewCursor(contentTop, contentBottom, nil),
		metrics: metrics,
	}
	fp := trace.Fingerprint(gen.CallerID, gen.DeviceFingerprint, gen.GeneratedAt)

	p.header(doc, gen)
	p.party(layout.TitleCompany, doc.Company.Name, doc.Company.Email, doc.Company.Phone, doc.Company.Address)
	p.party(layout.TitleClient, doc.Client.Name, doc.Client.Email, doc.Client.Phone, doc.Client.Address)
	p.paragraph(layout.Pitch(format.Truncate(doc.Client.Name, maxNameChars)))
	p.items(doc.LineItems)
	p.totals(doc)
	if doc.SpecialConditions != "" {
		p.banner(layout.TitleConditions)
		p.paragraph(format.Truncate(doc.SpecialConditions, maxFreeTextChars))
	}
	if doc.Observations != "" {
		p.banner(layout.TitleObservations)
		p.paragraph(format.Truncate(doc.Observations, maxFreeTextChars))
	}
	p.callToAction(doc.Company)
	p.footer(doc, gen, fp)

	if p.overflow {
		return nil, fmt.Errorf("%w: %d items", ErrPageOverflow, len(doc.LineItems))
	}
	return assemble(p.content.Bytes(), info(doc, gen))
}

type page struct {
	content  contentStream
	palette  theme.Palette
	cursor   *layout.Cursor
	metrics  *layout.Metrics
	overflow bool
}

func pdfY(d float64) float64 { return pageHeight - d }

// reserve returns the top of a block of height h, flagging the page when it would
// cross into the footer.
func (p *page) reserve(h float64) float64 {
	if !p.cursor.Fits(h) {
		p.overflow = true
	}
	return p.cursor.Reserve(h)
}

func (p *page) rightText(font string, size, right, y float64, rgb theme.RGB, s string) {
	w := p.metrics.Measure(size, font == fontBold)(s)
	p.content.text(font, size, right-w, y, rgb, s)
}

func (p *page) header(doc entities.QuoteDocument, gen entities.GenerationContext) {
	date := "Data: " + format.Date(gen.GeneratedAt)
	nameWidth := contentWidth - p.metrics.Measure(bodySize, false)(date) - headerGap
	name, size := p.fit(format.Truncate(doc.Company.Name, maxNameChars), nameWidth)

	p.content.fillRect(0, pageHeight-headerHeight, pageWidth, headerHeight, p.palette.Primary)
	p.content.text(fontBold, size, margin, pdfY(42), white, name)
	p.content.text(fontRegular, 12, margin, pdfY(64), white, layout.TitleQuote)
	p.rightText(fontRegular, bodySize, margin+contentWidth, pdfY(42), white, date)
	p.rightText(fontRegular, bodySize, margin+contentWidth, pdfY(64), white, "Validade: "+strconv.Itoa(doc.ValidityDays)+" dias")
}

// fit shrinks the bold header name from companySize down to companyMinSize to fit
// width, then clips it with an ellipsis if it still does not fit.
func (p *page) fit(s string, width float64) (string, float64) {
	size := companySize
	if w := p.metrics.Measure(size, true)(s); w > width {
		size = math.Max(companyMinSize, math.Floor(size*width/w*10)/10)
	}
	measure := p.metrics.Measure(size, true)
	if measure(s) <= width {
		return s, size
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		clipped := strings.TrimSpace(string(runes[:n])) + "..."
		if measure(clipped) <= width {
			return clipped, size
		}
	}
	return "", size
}

func (p *page) banner(title string) {
	d := p.reserve(bannerAdvance)
	p.content.fillRect(margin, pdfY(d+bannerHeight), contentWidth, bannerHeight, p.palette.Primary.Tint(0.85))
	p.content.text(fontBold, 11, margin+textInset, pdfY(d+14), p.palette.Primary, title)
	p.cursor.Advance(bannerAdvance)
}

func (p *page) party(title, name, email, phone, address string) {
	p.banner(title)

	var rest []string
	for _, v := range []string{
		format.Truncate(email, maxEmailChars),
		format.Truncate(phone, maxPhoneChars),
		format.Truncate(address, maxAddressChars),
	} {
		if v != "" {
			rest = append(rest, v)
		}
	}

	h := layout.Height(1+len(rest), lineHeight)
	d := p.reserve(h)
	p.content.text(fontBold, bodySize, margin+textInset, pdfY(d+bodySize), p.palette.Text, format.Truncate(name, maxNameChars))
	p.content.textLines(fontRegular, bodySize, margin+textInset, pdfY(d+bodySize+lineHeight), lineHeight, p.palette.Text, rest)
	p.cursor.Advance(h + sectionSpacing)
}

func (p *page) paragraph(text string) {
	lines := layout.Wrap(text, contentWidth-2*textInset, p.metrics.Measure(bodySize, false))
	h := layout.Height(len(lines), lineHeight)
	d := p.reserve(h)
	p.content.textLines(fontRegular, bodySize, margin+textInset, pdfY(d+bodySize), lineHeight, p.palette.Text, lines)
	p.cursor.Advance(h + sectionSpacing)
}

func (p *page) items(items []entities.LineItem) {
	p.banner(layout.TitleItems)

	d := p.reserve(rowHeight)
	p.content.fillRect(margin, pdfY(d+rowHeight), contentWidth, rowHeight, headerGray)
	base := pdfY(d + 12)
	p.content.text(fontBold, tableSize, colDescription, base, p.palette.Text, layout.ColumnDescription)
	p.content.text(fontBold, tableSize, colQuantity, base, p.palette.Text, layout.ColumnQuantity)
	p.rightText(fontBold, tableSize, colUnitRight, base, p.palette.Text, layout.ColumnUnitPrice)
	p.rightText(fontBold, tableSize, colTotalRight, base, p.palette.Text, layout.ColumnTotal)
	p.cursor.Advance(rowHeight)

	for i, it := range items {
		d := p.reserve(rowHeight)
		if i%2 == 1 {
			p.content.fillRect(margin, pdfY(d+rowHeight), contentWidth, rowHeight, zebraGray)
		}
		base := pdfY(d + 12)
		p.content.text(fontRegular, tableSize, colDescription, base, p.palette.Text, format.Ellipsize(it.Description, maxDescriptionChars))
		p.content.text(fontRegular, tableSize, colQuantity, base, p.palette.Text, strconv.Itoa(it.Quantity))
		p.rightText(fontRegular, tableSize, colUnitRight, base, p.palette.Text, format.ASCIIMoney(it.UnitPrice))
		p.rightText(fontRegular, tableSize, colTotalRight, base, p.palette.Text, format.ASCIIMoney(it.Total))
		p.cursor.Advance(rowHeight)
	}
	p.cursor.Advance(sectionSpacing)
}

func (p *page) totals(doc entities.QuoteDocument) {
	lines := 1
	if doc.HasDiscount() {
		lines++
	}
	h := float64(lines)*totalsLine + 10 + totalsRow
	d := p.reserve(h)

	x := margin + totalsOffset
	right := x + totalsWidth - 10
	p.content.fillStrokeRect(x, pdfY(d+h), totalsWidth, h, 0.75, p.palette.Primary.Tint(0.92), p.palette.Primary)

	ly := d + 5 + 11
	p.content.text(fontRegular, bodySize, x+10, pdfY(ly), p.palette.Text, layout.LabelSubtotal)
	p.rightText(fontRegular, bodySize, right, pdfY(ly), p.palette.Text, format.ASCIIMoney(doc.Subtotal()))
	if doc.HasDiscount() {
		ly += totalsLine
		p.content.text(fontRegular, bodySize, x+10, pdfY(ly), p.palette.Text, layout.DiscountLabel(format.ASCIIPercent(doc.DiscountPercent)))
		p.rightText(fontRegular, bodySize, right, pdfY(ly), p.palette.Text, "- "+format.ASCIIMoney(doc.DiscountAmount()))
	}

	p.content.fillRect(x, pdfY(d+h), totalsWidth, totalsRow, p.palette.Primary)
	p.content.text(fontBold, 12, x+10, pdfY(d+h-8), white, layout.LabelTotal)
	p.rightText(fontBold, 12, right, pdfY(d+h-8), white, format.ASCIIMoney(doc.FinalTotal()))
	p.cursor.Advance(h + sectionSpacing)
}

func (p *page) callToAction(c entities.Company) {
	d := p.reserve(ctaHeight)
	p.content.fillRect(margin, pdfY(d+ctaHeight), contentWidth, ctaHeight, p.palette.Accent)
	p.content.text(fontBold, 12, margin+textInset, pdfY(d+15), white, layout.CallToAction)
	if contact := layout.Contact(format.Truncate(c.Phone, maxPhoneChars), format.Truncate(c.Email, maxEmailChars)); contact != "" {
		p.content.text(fontRegular, tableSize, margin+textInset, pdfY(d+29), white, contact)
	}
	p.cursor.Advance(ctaHeight)
}

// footer sits at a fixed position below contentBottom.
func (p *page) footer(doc entities.QuoteDocument, gen entities.GenerationContext, fingerprint string) {
	p.content.line(margin, 60, margin+contentWidth, 60, 0.5, mutedGray)
	generated := format.Date(gen.GeneratedAt)
	expires := format.Date(format.ExpiryDate(gen.GeneratedAt, doc.ValidityDays))
	p.content.text(fontRegular, tableSize, margin, 45, mutedGray, layout.FooterLine(generated, expires))

	p.content.saveState()
	p.content.graphicsState(gsWatermark)
	p.content.text(fontRegular, 7, margin, 30, mutedGray, trace.Watermark(fingerprint, gen.GeneratedAt))
	p.content.restoreState()
}

func info(doc entities.QuoteDocument, gen entities.GenerationContext) string {
	title := pdfString("Orçamento - " + format.Truncate(doc.Client.Name, maxNameChars))
	author := pdfString(format.Truncate(doc.Company.Name, maxNameChars))
	created := pdfString(gen.GeneratedAt.UTC().Format("D:20060102150405Z"))
	return fmt.Sprintf("<< /Title %s /Author %s /Producer (gerador_orcamentos) /CreationDate %s >>", title, author, created)
}

func assemble(content []byte, infoDict string) ([]byte, error) {
	d := NewDocument()
	catalog := d.Reserve()
	pages := d.Reserve()
	pg := d.Reserve()
	stream := d.AddStream("", content)
	bold := d.Add("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold /Encoding /WinAnsiEncoding >>")
	regular := d.Add("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")
	gs := d.Add("<< /Type /ExtGState /ca " + watermarkOpacity + " /CA " + watermarkOpacity + " >>")
	infoObj := d.Add(infoDict)

	err := errors.Join(
		d.Set(catalog, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pages)),
		d.Set(pages, fmt.Sprintf("<< /Type /Pages /Kids [%d 0 R] /Count 1 >>", pg)),
		d.Set(pg, fmt.Sprintf("<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %s %s] /Contents %d 0 R "+
			"/Resources << /Font << /%s %d 0 R /%s %d 0 R >> /ExtGState << /%s %d 0 R >> >> >>",
			pages, num(pageWidth), num(pageHeight), stream, fontBold, bold, fontRegular, regular, gsWatermark, gs)),
	)
	if err != nil {
		return nil, entities.NewRenderError("build raw pdf objects", err)
	}
	d.SetRoot(catalog)
	d.SetInfo(infoObj)

	out, err := d.Bytes()
	if err != nil {
		return nil, entities.NewRenderError("serialize raw pdf", err)
	}
	return out, nil
}
