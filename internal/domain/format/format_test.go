package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestBRL(t *testing.T) {
	cases := map[string]string{
		"270":     "R$ 270,00",
		"1234.5":  "R$ 1.234,50",
		"0":       "R$ 0,00",
		"30.005":  "R$ 30,01",
		"1000000": "R$ 1.000.000,00",
	}
	for in, want := range cases {
		if got := BRL(decimal.RequireFromString(in)); got != want {
			t.Fatalf("BRL(%s): expected %q, got %q", in, want, got)
		}
	}
}

func TestASCIIMoney(t *testing.T) {
	if got := ASCIIMoney(decimal.RequireFromString("1234.5")); got != "R$ 1234.50" {
		t.Fatalf("unexpected %q", got)
	}
	if got := ASCIIMoney(decimal.Zero); got != "R$ 0.00" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(decimal.RequireFromString("12.5")); got != "12,5" {
		t.Fatalf("unexpected %q", got)
	}
	if got := ASCIIPercent(decimal.NewFromInt(10)); got != "10" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestDateAndExpiry(t *testing.T) {
	gen := time.Date(2026, 1, 15, 18, 30, 0, 0, time.UTC)
	if got := Date(gen); got != "15/01/2026" {
		t.Fatalf("unexpected date %q", got)
	}
	if got := Date(ExpiryDate(gen, 30)); got != "14/02/2026" {
		t.Fatalf("unexpected expiry %q", got)
	}
	if got := Date(ExpiryDate(gen, 0)); got != "15/01/2026" {
		t.Fatalf("unexpected expiry %q", got)
	}
}

func TestExpiryDate_CalendarDaysAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 23:30 the day before the March DST jump; adding 24h multiples would land on the wrong day.
	gen := time.Date(2026, 3, 7, 23, 30, 0, 0, loc)
	if got := Date(ExpiryDate(gen, 2)); got != "09/03/2026" {
		t.Fatalf("unexpected expiry %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("Ação Rápida", 4); got != "Ação" {
		t.Fatalf("unexpected %q", got)
	}
	if got := Truncate("curto", 50); got != "curto" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestEllipsize(t *testing.T) {
	if got := Ellipsize("Desenvolvimento de sistema completo", 20); got != "Desenvolvimento d..." {
		t.Fatalf("unexpected %q", got)
	}
	if got := Ellipsize("curto", 20); got != "curto" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("João  da Silva", 7); got != "Orcamento_João_da_Silva_0007.pdf" {
		t.Fatalf("unexpected %q", got)
	}
	if got := Filename("Ana/\"Souza\"", 1234); got != "Orcamento_AnaSouza_1234.pdf" {
		t.Fatalf("unexpected %q", got)
	}
}
