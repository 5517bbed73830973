package fpdfrender

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strconv"
	"strings"

	"gerador_orcamentos/internal/domain/entities"
	"gerador_orcamentos/internal/domain/format"
	"gerador_orcamentos/internal/domain/theme"
	"gerador_orcamentos/internal/infrastructure/pdf/layout"

	"github.com/go-pdf/fpdf"
)

var (
	white      = theme.RGB{R: 255, G: 255, B: 255}
	headerGray = theme.RGB{R: 229, G: 231, B: 235}
	zebraGray  = theme.RGB{R: 247, G: 248, B: 250}
	mutedGray  = theme.RGB{R: 107, G: 114, B: 128}
)

// table column widths, summing to contentWidth
var columns = [4]struct {
	width float64
	align string
}{
	{95, "L"},
	{15, "C"},
	{30, "R"},
	{30, "R"},
}

type builder struct {
	pdf     *fpdf.Fpdf
	tr      func(string) string
	palette theme.Palette
	cursor  *layout.Cursor
	doc     entities.QuoteDocument
	gen     entities.GenerationContext
	// watermark is printed at the foot of every page of accounted generations.
	watermark string
}

func (b *builder) fill(c theme.RGB)      { b.pdf.SetFillColor(c.Ints()) }
func (b *builder) textColor(c theme.RGB) { b.pdf.SetTextColor(c.Ints()) }
func (b *builder) draw(c theme.RGB)      { b.pdf.SetDrawColor(c.Ints()) }

func (b *builder) font(style string, size float64) {
	b.pdf.SetFont(fontFamily, style, size)
}

func (b *builder) cell(x, y, w, h float64, s, align string, fill bool) {
	b.pdf.SetXY(x, y)
	b.pdf.CellFormat(w, h, b.tr(s), "", 0, align, fill, 0, "")
}

func (b *builder) measure(s string) float64 {
	return b.pdf.GetStringWidth(b.tr(s))
}

// header draws the first page banner and returns where content starts.
func (b *builder) header() float64 {
	b.fill(b.palette.Primary)
	b.pdf.Rect(0, 0, pageWidth, headerHeight, "F")

	x := margin
	if b.logo(margin, 8, 24) {
		x += 30
	}
	b.textColor(white)
	b.font("B", 20)
	b.cell(x, 10, contentWidth-(x-margin)-50, 10, b.doc.Company.Name, "L", false)
	b.font("", 12)
	b.cell(x, 22, 60, 8, layout.TitleQuote, "L", false)

	b.font("", bodySize)
	b.cell(margin+contentWidth-50, 12, 50, 6, "Data: "+format.Date(b.gen.GeneratedAt), "R", false)
	b.cell(margin+contentWidth-50, 20, 50, 6, "Validade: "+strconv.Itoa(b.doc.ValidityDays)+" dias", "R", false)
	return headerHeight + 10
}

// logo draws the company logo when it decodes as PNG or JPEG. Anything else is skipped
// so a bad upload never breaks generation.
func (b *builder) logo(x, y, h float64) bool {
	data := b.doc.Company.Logo
	if len(data) == 0 {
		return false
	}
	_, kind, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return false
	}
	opts := fpdf.ImageOptions{ImageType: strings.ToUpper(kind)}
	b.pdf.RegisterImageOptionsReader("logo", opts, bytes.NewReader(data))
	if !b.pdf.Ok() {
		b.pdf.ClearError()
		return false
	}
	b.pdf.ImageOptions("logo", x, y, 0, h, false, opts, 0, "")
	return true
}

// newPage is the cursor break hook: it starts a page with the running header.
func (b *builder) newPage() float64 {
	b.pdf.AddPage()
	b.fill(b.palette.Primary)
	b.pdf.Rect(0, 0, pageWidth, runningHeaderHeight, "F")
	b.textColor(white)
	b.font("B", bodySize)
	b.cell(margin, 4, contentWidth/2, 6, b.doc.Company.Name, "L", false)
	b.font("", bodySize)
	b.cell(margin+contentWidth/2, 4, contentWidth/2, 6, "Orçamento - "+b.doc.Client.Name, "R", false)
	return runningHeaderHeight + 8
}

func (b *builder) pageNumber() {
	b.textColor(mutedGray)
	b.font("", 8)
	b.cell(margin, pageHeight-12, contentWidth, 5, "Página "+strconv.Itoa(b.pdf.PageNo())+" de {nb}", "C", false)
	if b.watermark != "" {
		b.font("", 6)
		b.cell(margin, pageHeight-7, contentWidth, 4, b.watermark, "L", false)
	}
}

// banner keeps room for the first line below it so titles never end a page.
func (b *builder) banner(title string) {
	y := b.cursor.Reserve(bannerHeight + sectionSpacing + rowHeight)
	b.fill(b.palette.Primary.Tint(0.85))
	b.pdf.Rect(margin, y, contentWidth, bannerRect, "F")
	b.textColor(b.palette.Primary)
	b.font("B", 11)
	b.cell(margin+textInset, y, contentWidth-2*textInset, bannerRect, title, "L", false)
	b.cursor.Advance(bannerHeight + sectionSpacing)
}

// wrapped writes text line by line, breaking pages between lines, and returns the
// height consumed.
func (b *builder) wrapped(text string, maxWidth, size float64) float64 {
	b.font("", size)
	b.textColor(b.palette.Text)
	lines := layout.Wrap(text, maxWidth, b.measure)
	for _, l := range lines {
		y := b.cursor.Reserve(lineHeight)
		b.cell(margin+textInset, y, maxWidth, lineHeight, l, "L", false)
		b.cursor.Advance(lineHeight)
	}
	return layout.Height(len(lines), lineHeight)
}

func (b *builder) party(title, name string, details ...string) {
	b.banner(title)
	y := b.cursor.Reserve(lineHeight)
	b.textColor(b.palette.Text)
	b.font("B", bodySize+1)
	b.cell(margin+textInset, y, contentWidth-2*textInset, lineHeight, name, "L", false)
	b.cursor.Advance(lineHeight)
	for _, d := range details {
		if d != "" {
			b.wrapped(d, contentWidth-2*textInset, bodySize)
		}
	}
	b.cursor.Advance(sectionSpacing)
}

func (b *builder) company() {
	c := b.doc.Company
	b.party(layout.TitleCompany, c.Name, c.Email, c.Phone, c.Address)
}

func (b *builder) client() {
	c := b.doc.Client
	b.party(layout.TitleClient, c.Name, c.Email, c.Phone, c.Address)
}

func (b *builder) pitch() {
	b.pdf.SetFont(fontFamily, "I", bodySize)
	b.textColor(b.palette.Text)
	lines := layout.Wrap(layout.Pitch(b.doc.Client.Name), contentWidth-2*textInset, b.measure)
	for _, l := range lines {
		y := b.cursor.Reserve(lineHeight)
		b.cell(margin+textInset, y, contentWidth-2*textInset, lineHeight, l, "L", false)
		b.cursor.Advance(lineHeight)
	}
	b.cursor.Advance(sectionSpacing)
}

func (b *builder) tableHeader(y float64) {
	b.fill(headerGray)
	b.textColor(b.palette.Text)
	b.font("B", tableSize)
	x := margin
	titles := [4]string{layout.ColumnDescription, layout.ColumnQuantity, layout.ColumnUnitPrice, layout.ColumnTotal}
	for i, col := range columns {
		b.cell(x, y, col.width, rowHeight, titles[i], col.align, true)
		x += col.width
	}
}

func (b *builder) items() {
	b.banner(layout.TitleItems)
	y := b.cursor.Reserve(2 * rowHeight)
	b.tableHeader(y)
	b.cursor.Advance(rowHeight)

	for i, it := range b.doc.LineItems {
		pages := b.cursor.Pages()
		y := b.cursor.Reserve(rowHeight)
		if b.cursor.Pages() != pages {
			b.tableHeader(y)
			b.cursor.Advance(rowHeight)
			y = b.cursor.Y()
		}

		zebra := i%2 == 1
		if zebra {
			b.fill(zebraGray)
		}
		b.textColor(b.palette.Text)
		b.font("", tableSize)
		values := [4]string{
			format.Ellipsize(it.Description, maxDescriptionChars),
			strconv.Itoa(it.Quantity),
			format.BRL(it.UnitPrice),
			format.BRL(it.Total),
		}
		x := margin
		for c, col := range columns {
			b.cell(x, y, col.width, rowHeight, values[c], col.align, zebra)
			x += col.width
		}
		b.cursor.Advance(rowHeight)
	}
	b.cursor.Advance(sectionSpacing)
}

func (b *builder) totals() {
	doc := b.doc
	lines := 1
	if doc.HasDiscount() {
		lines++
	}
	h := float64(lines)*totalsLine + 4 + totalsRow
	y := b.cursor.Reserve(h)
	x := margin + totalsOffset
	half := (totalsWidth - 2*textInset) / 2

	b.fill(b.palette.Primary.Tint(0.92))
	b.draw(b.palette.Primary)
	b.pdf.SetLineWidth(0.3)
	b.pdf.Rect(x, y, totalsWidth, h, "FD")

	b.textColor(b.palette.Text)
	b.font("", bodySize)
	ly := y + 2
	b.cell(x+textInset, ly, half, totalsLine, layout.LabelSubtotal, "L", false)
	b.cell(x+textInset+half, ly, half, totalsLine, format.BRL(doc.Subtotal()), "R", false)
	if doc.HasDiscount() {
		ly += totalsLine
		b.cell(x+textInset, ly, half, totalsLine, layout.DiscountLabel(format.Percent(doc.DiscountPercent)), "L", false)
		b.cell(x+textInset+half, ly, half, totalsLine, "- "+format.BRL(doc.DiscountAmount()), "R", false)
	}

	ry := y + h - totalsRow
	b.fill(b.palette.Primary)
	b.pdf.Rect(x, ry, totalsWidth, totalsRow, "F")
	b.textColor(white)
	b.font("B", 13)
	b.cell(x+textInset, ry, half, totalsRow, layout.LabelTotal, "L", false)
	b.cell(x+textInset+half, ry, half, totalsRow, format.BRL(doc.FinalTotal()), "R", false)
	b.cursor.Advance(h + sectionSpacing)
}

func (b *builder) freeText(title, text string) {
	b.banner(title)
	b.wrapped(text, contentWidth-2*textInset, bodySize)
	b.cursor.Advance(sectionSpacing)
}

func (b *builder) callToAction() {
	y := b.cursor.Reserve(ctaHeight)
	b.fill(b.palette.Accent)
	b.pdf.Rect(margin, y, contentWidth, ctaHeight, "F")
	b.textColor(white)
	b.font("B", 12)
	b.cell(margin+textInset, y+2, contentWidth-2*textInset, 7, layout.CallToAction, "C", false)
	if contact := layout.Contact(b.doc.Company.Phone, b.doc.Company.Email); contact != "" {
		b.font("", tableSize)
		b.cell(margin+textInset, y+9, contentWidth-2*textInset, 6, contact, "C", false)
	}
	b.cursor.Advance(ctaHeight + sectionSpacing)
}

func (b *builder) footer() {
	y := b.cursor.Reserve(footerHeight)
	b.draw(mutedGray)
	b.pdf.SetLineWidth(0.2)
	b.pdf.Line(margin, y, margin+contentWidth, y)
	b.textColor(mutedGray)
	b.font("", tableSize)
	generated := format.Date(b.gen.GeneratedAt)
	expires := format.Date(format.ExpiryDate(b.gen.GeneratedAt, b.doc.ValidityDays))
	b.cell(margin, y+2, contentWidth, 6, layout.FooterLine(generated, expires), "C", false)
	b.cursor.Advance(footerHeight)
}
