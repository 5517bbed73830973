package raw

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"gerador_orcamentos/internal/domain/entities"
	"gerador_orcamentos/internal/domain/format"
	"gerador_orcamentos/internal/domain/trace"
	"gerador_orcamentos/internal/infrastructure/pdf/layout"

	"github.com/ledongthuc/pdf"
	"github.com/shopspring/decimal"
)

var generatedAt = time.Date(2026, 1, 15, 18, 30, 0, 0, time.UTC)

func sampleDocument() entities.QuoteDocument {
	doc := entities.QuoteDocument{
		Company: entities.Company{Name: "Acme Ltda", Email: "contato@acme.com.br", Phone: "(11) 4000-1000", Address: "Rua das Flores, 100 - São Paulo"},
		Client:  entities.Client{Name: "João Silva", Email: "joao@exemplo.com"},
		LineItems: []entities.LineItem{
			{ID: "1", Description: "Consultoria", Quantity: 2, UnitPrice: decimal.NewFromInt(150)},
		},
		DiscountPercent: decimal.NewFromInt(10),
		ColorTheme:      "blue",
		ValidityDays:    30,
	}
	doc.Normalize(30)
	return doc
}

func sampleContext() entities.GenerationContext {
	return entities.GenerationContext{GeneratedAt: generatedAt, CallerID: "user-1", DeviceFingerprint: "Mozilla/5.0"}
}

func render(t *testing.T, doc entities.QuoteDocument) []byte {
	t.Helper()
	out, err := NewRenderer().Render(doc, sampleContext())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return out
}

var streamRe = regexp.MustCompile(`/Length (\d+) >>\nstream\n`)

func contentOf(t *testing.T, out []byte) []byte {
	t.Helper()
	m := streamRe.FindSubmatchIndex(out)
	if m == nil {
		t.Fatalf("no content stream found")
	}
	declared, _ := strconv.Atoi(string(out[m[2]:m[3]]))
	start := m[1]
	end := bytes.Index(out[start:], []byte("\nendstream"))
	if end < 0 {
		t.Fatalf("stream is not terminated")
	}
	if end != declared {
		t.Fatalf("declared /Length %d, actual stream length %d", declared, end)
	}
	return out[start : start+end]
}

func xrefOffsets(t *testing.T, out []byte) []int {
	t.Helper()
	idx := bytes.LastIndex(out, []byte("startxref\n"))
	if idx < 0 {
		t.Fatalf("missing startxref")
	}
	rest := strings.SplitN(string(out[idx+len("startxref\n"):]), "\n", 2)
	xref, err := strconv.Atoi(rest[0])
	if err != nil {
		t.Fatalf("bad startxref: %v", err)
	}
	if !bytes.HasPrefix(out[xref:], []byte("xref\n0 ")) {
		t.Fatalf("startxref %d does not point at the xref table", xref)
	}
	lines := strings.Split(string(out[xref:]), "\n")
	n, _ := strconv.Atoi(strings.Fields(lines[1])[1])
	var offsets []int
	for _, l := range lines[3 : 2+n] {
		if len(l)+1 != 20 {
			t.Fatalf("xref entry %q is not 20 bytes", l)
		}
		off, _ := strconv.Atoi(l[:10])
		offsets = append(offsets, off)
	}
	return offsets
}

func TestRender_IsValidPDF(t *testing.T) {
	out := render(t, sampleDocument())
	contentOf(t, out)

	for i, off := range xrefOffsets(t, out) {
		prefix := fmt.Sprintf("%d 0 obj", i+1)
		if !bytes.HasPrefix(out[off:], []byte(prefix)) {
			t.Fatalf("xref entry %d points at %q", i+1, out[off:off+len(prefix)])
		}
	}

	r, err := pdf.NewReader(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatalf("reader rejected output: %v", err)
	}
	if r.NumPage() != 1 {
		t.Fatalf("expected 1 page, got %d", r.NumPage())
	}
}

func TestRender_EndToEndTotalsAndDates(t *testing.T) {
	content := string(contentOf(t, render(t, sampleDocument())))

	for _, want := range []string{
		"(R$ 300.00) Tj",
		"(Desconto 10%:) Tj",
		"(- R$ 30.00) Tj",
		"(R$ 270.00) Tj",
		string(pdfString(layout.FooterLine("15/01/2026", "14/02/2026"))),
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in content stream", want)
		}
	}
}

var moneyRe = regexp.MustCompile(`\((- )?R\$ (-?\d+\.\d{2})\) Tj`)

func TestRender_TotalsRoundTrip(t *testing.T) {
	doc := sampleDocument()
	doc.LineItems = []entities.LineItem{
		{ID: "a", Description: "Instalação", Quantity: 3, UnitPrice: decimal.RequireFromString("89.90")},
		{ID: "b", Description: "Suporte mensal", Quantity: 1, UnitPrice: decimal.RequireFromString("1250.00")},
		{ID: "c", Description: "Cabos", Quantity: 7, UnitPrice: decimal.RequireFromString("12.35")},
	}
	doc.DiscountPercent = decimal.RequireFromString("7.5")
	doc.Normalize(30)

	matches := moneyRe.FindAllStringSubmatch(string(contentOf(t, render(t, doc))), -1)
	if len(matches) < 3 {
		t.Fatalf("expected totals in content, got %v", matches)
	}
	tail := matches[len(matches)-3:]
	got := []string{tail[0][2], tail[1][2], tail[2][2]}
	want := []string{
		doc.Subtotal().StringFixed(2),
		doc.DiscountAmount().StringFixed(2),
		doc.FinalTotal().StringFixed(2),
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("totals box value %d: expected %s, got %s", i, want[i], got[i])
		}
	}
	sub := decimal.RequireFromString(got[0])
	final := sub.Mul(decimal.NewFromInt(1).Sub(doc.DiscountPercent.Div(decimal.NewFromInt(100))))
	if final.StringFixed(2) != got[2] {
		t.Fatalf("final total %s does not match subtotal x (1 - discount) = %s", got[2], final.StringFixed(2))
	}
}

func TestRender_NoDiscountLine(t *testing.T) {
	doc := sampleDocument()
	doc.DiscountPercent = decimal.Zero
	content := string(contentOf(t, render(t, doc)))
	if strings.Contains(content, "Desconto") {
		t.Fatalf("discount line must be absent")
	}
	if !strings.Contains(content, "(R$ 300.00) Tj") {
		t.Fatalf("expected final total equal to subtotal")
	}
}

func TestRender_OptionalSections(t *testing.T) {
	conditions := string(pdfString(layout.TitleConditions))
	observations := string(pdfString(layout.TitleObservations))

	content := string(contentOf(t, render(t, sampleDocument())))
	if strings.Contains(content, conditions) || strings.Contains(content, observations) {
		t.Fatalf("empty sections must not be rendered")
	}

	doc := sampleDocument()
	doc.SpecialConditions = "Pagamento em 2x sem juros."
	content = string(contentOf(t, render(t, doc)))
	if !strings.Contains(content, conditions) {
		t.Fatalf("expected conditions banner")
	}
	if strings.Contains(content, observations) {
		t.Fatalf("observations banner must stay absent")
	}
}

func TestRender_CapsDynamicText(t *testing.T) {
	doc := sampleDocument()
	doc.Company.Name = strings.Repeat("A", 60)
	doc.SpecialConditions = strings.Repeat("x", 260)
	out := render(t, doc)
	content := string(contentOf(t, out))

	if !strings.Contains(content, "("+strings.Repeat("A", 50)+")") {
		t.Fatalf("expected company name cut to 50 chars")
	}
	if strings.Contains(string(out), strings.Repeat("A", 51)) {
		t.Fatalf("company name longer than 50 chars leaked into output")
	}
	if strings.Contains(content, strings.Repeat("x", 201)) {
		t.Fatalf("conditions longer than 200 chars leaked into output")
	}
}

func TestRender_EllipsizesDescriptions(t *testing.T) {
	doc := sampleDocument()
	doc.LineItems[0].Description = "Desenvolvimento de aplicativo mobile multiplataforma"
	content := string(contentOf(t, render(t, doc)))
	want := "(" + format.Ellipsize(doc.LineItems[0].Description, maxDescriptionChars) + ")"
	if !strings.Contains(content, want) {
		t.Fatalf("expected %q in content", want)
	}
}

func TestRender_ValidationFailsWithoutOutput(t *testing.T) {
	for _, tc := range []struct {
		name string
		edit func(*entities.QuoteDocument)
		want error
	}{
		{"empty client", func(d *entities.QuoteDocument) { d.Client.Name = "   " }, entities.ErrClientNameRequired},
		{"empty company", func(d *entities.QuoteDocument) { d.Company.Name = "" }, entities.ErrCompanyNameRequired},
	} {
		t.Run(tc.name, func(t *testing.T) {
			doc := sampleDocument()
			tc.edit(&doc)
			doc.Normalize(30)
			out, err := NewRenderer().Render(doc, sampleContext())
			if !errors.Is(err, tc.want) || !errors.Is(err, entities.ErrValidation) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if out != nil {
				t.Fatalf("expected no output, got %d bytes", len(out))
			}
		})
	}
}

func manyItems(n int) []entities.LineItem {
	items := make([]entities.LineItem, n)
	for i := range items {
		items[i] = entities.LineItem{ID: strconv.Itoa(i), Description: "Item", Quantity: 1, UnitPrice: decimal.NewFromInt(10)}
	}
	return items
}

var headerNameRe = regexp.MustCompile(`BT /F1 ([\d.]+) Tf 50 750 Td \((.*?)\) Tj ET`)

func headerName(t *testing.T, out []byte) (string, float64) {
	t.Helper()
	m := headerNameRe.FindStringSubmatch(string(contentOf(t, out)))
	if m == nil {
		t.Fatalf("header name not found")
	}
	size, _ := strconv.ParseFloat(m[1], 64)
	return m[2], size
}

func TestRender_HeaderNameFitsBesideDate(t *testing.T) {
	metrics, err := layout.NewHelveticaMetrics()
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	room := contentWidth - metrics.Measure(bodySize, false)("Data: 15/01/2026") - headerGap

	t.Run("short name keeps full size", func(t *testing.T) {
		name, size := headerName(t, render(t, sampleDocument()))
		if name != "Acme Ltda" || size != companySize {
			t.Fatalf("unexpected header %q at %v", name, size)
		}
	})

	t.Run("long name shrinks", func(t *testing.T) {
		doc := sampleDocument()
		doc.Company.Name = "Comercial e Industrial de Materiais Eletricos Ltda"
		name, size := headerName(t, render(t, doc))
		if name != doc.Company.Name {
			t.Fatalf("name should not be clipped, got %q", name)
		}
		if size >= companySize || size < companyMinSize {
			t.Fatalf("unexpected size %v", size)
		}
		if w := metrics.Measure(size, true)(name); w > room {
			t.Fatalf("name is %.2fpt wide, room is %.2fpt", w, room)
		}
	})

	t.Run("wide name is clipped at minimum size", func(t *testing.T) {
		doc := sampleDocument()
		doc.Company.Name = strings.Repeat("W", 50)
		name, size := headerName(t, render(t, doc))
		if size != companyMinSize || !strings.HasSuffix(name, "...") {
			t.Fatalf("expected clipped name at minimum size, got %q at %v", name, size)
		}
		if w := metrics.Measure(size, true)(name); w > room {
			t.Fatalf("name is %.2fpt wide, room is %.2fpt", w, room)
		}
	})
}

func TestRender_PageOverflow(t *testing.T) {
	doc := sampleDocument()
	doc.LineItems = manyItems(40)
	doc.Normalize(30)

	out, err := NewRenderer().Render(doc, sampleContext())
	if !errors.Is(err, ErrPageOverflow) || !errors.Is(err, entities.ErrRender) {
		t.Fatalf("expected ErrPageOverflow, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected no output")
	}
}

func TestRender_DeterministicWatermark(t *testing.T) {
	doc := sampleDocument()
	first := render(t, doc)
	second := render(t, doc)
	if !bytes.Equal(first, second) {
		t.Fatalf("same inputs must produce identical bytes")
	}

	fp := trace.Fingerprint("user-1", "Mozilla/5.0", generatedAt)
	mark := string(pdfString(trace.Watermark(fp, generatedAt)))
	content := string(contentOf(t, first))
	if !strings.Contains(content, "/GS1 gs") || !strings.Contains(content, mark) {
		t.Fatalf("expected low-opacity watermark %q", mark)
	}

	other := sampleContext()
	other.DeviceFingerprint = "curl/8.0"
	out, err := NewRenderer().Render(doc, other)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if strings.Contains(string(out), mark) {
		t.Fatalf("different device must change the watermark")
	}
}
