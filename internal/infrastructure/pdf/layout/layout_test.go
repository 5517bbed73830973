package layout

import (
	"math"
	"reflect"
	"testing"
)

func charMeasure(s string) float64 { return float64(len([]rune(s))) }

func TestWrap_Greedy(t *testing.T) {
	got := Wrap("o rato roeu a roupa do rei de roma", 10, charMeasure)
	want := []string{"o rato", "roeu a", "roupa do", "rei de", "roma"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
	for _, l := range got {
		if charMeasure(l) > 10 {
			t.Fatalf("line %q exceeds width", l)
		}
	}
}

func TestWrap_LongWordOnOwnLine(t *testing.T) {
	got := Wrap("ver paralelepipedograndioso aqui", 8, charMeasure)
	want := []string{"ver", "paralelepipedograndioso", "aqui"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWrap_Newlines(t *testing.T) {
	got := Wrap("linha um\r\n\nlinha dois", 100, charMeasure)
	want := []string{"linha um", "", "linha dois"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCursor_ReserveBreaksPage(t *testing.T) {
	breaks := 0
	c := NewCursor(20, 100, func() float64 {
		breaks++
		return 35 // running header occupies 20..35
	})

	if y := c.Reserve(50); y != 20 {
		t.Fatalf("expected start at 20, got %v", y)
	}
	c.Advance(50)
	if y := c.Reserve(30); y != 70 || breaks != 0 {
		t.Fatalf("expected fit at 70 without break, got y=%v breaks=%d", y, breaks)
	}
	c.Advance(30)
	if y := c.Reserve(1); y != 35 || breaks != 1 {
		t.Fatalf("expected break to 35, got y=%v breaks=%d", y, breaks)
	}
	if c.Pages() != 2 {
		t.Fatalf("expected 2 pages, got %d", c.Pages())
	}
}

func TestCursor_OversizedBlockAtTopDoesNotLoop(t *testing.T) {
	breaks := 0
	c := NewCursor(20, 100, func() float64 { breaks++; return 20 })
	if y := c.Reserve(500); y != 20 || breaks != 0 {
		t.Fatalf("expected no break at top, got y=%v breaks=%d", y, breaks)
	}
}

func TestCursor_SinglePage(t *testing.T) {
	c := NewCursor(0, 10, nil)
	c.Advance(8)
	if c.Fits(5) {
		t.Fatalf("expected block not to fit")
	}
	if y := c.Reserve(5); y != 8 || c.Pages() != 1 {
		t.Fatalf("single-page cursor must not break")
	}
	if c.Remaining() != 2 {
		t.Fatalf("expected remaining 2, got %v", c.Remaining())
	}
}

func TestHelveticaMetrics_CoreWidths(t *testing.T) {
	m, err := NewHelveticaMetrics()
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	cases := []struct {
		text string
		size float64
		bold bool
		want float64
	}{
		{"a", 10, false, 5.56},
		{"R$ 1111.11", 12, true, 62.04},
		{"iiiiiiiiii", 12, true, 33.36},
		{"", 12, true, 0},
	}
	for _, tc := range cases {
		if got := m.Measure(tc.size, tc.bold)(tc.text); math.Abs(got-tc.want) > 1e-6 {
			t.Fatalf("%q at %v bold=%v: expected %v, got %v", tc.text, tc.size, tc.bold, tc.want, got)
		}
	}
	if m.Measure(10, false)("ã") != m.Measure(10, false)("a") {
		t.Fatalf("accented letters should measure as their WinAnsi glyph")
	}
}

func TestWinAnsi(t *testing.T) {
	got := WinAnsi("ã€\u4e2d\t")
	want := []byte{0xE3, 0x80, '?', ' '}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected % x, got % x", want, got)
	}
}
