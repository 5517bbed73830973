package entities

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func validDocument() QuoteDocument {
	return QuoteDocument{
		Company: Company{Name: "Acme Ltda", Email: "contato@acme.com.br"},
		Client:  Client{Name: "João Silva"},
		LineItems: []LineItem{
			{ID: "1", Description: "Consultoria", Quantity: 2, UnitPrice: decimal.RequireFromString("150.00")},
		},
		DiscountPercent: decimal.NewFromInt(10),
		ValidityDays:    30,
	}
}

func TestQuoteDocument_Totals(t *testing.T) {
	d := validDocument()
	d.Normalize(30)

	if got := d.Subtotal().StringFixed(2); got != "300.00" {
		t.Fatalf("expected subtotal 300.00, got %s", got)
	}
	if got := d.DiscountAmount().StringFixed(2); got != "30.00" {
		t.Fatalf("expected discount 30.00, got %s", got)
	}
	if got := d.FinalTotal().StringFixed(2); got != "270.00" {
		t.Fatalf("expected total 270.00, got %s", got)
	}
	if !d.HasDiscount() {
		t.Fatalf("expected discount line")
	}
}

func TestQuoteDocument_NormalizeRecomputesTotals(t *testing.T) {
	d := validDocument()
	d.LineItems = append(d.LineItems, LineItem{Description: " Hospedagem ", Quantity: 3, UnitPrice: decimal.RequireFromString("19.90"), Total: decimal.NewFromInt(999)})
	d.ValidityDays = 0
	d.Client.Name = "  João Silva  "
	d.Normalize(15)

	if d.LineItems[1].ID != "item-2" {
		t.Fatalf("expected generated id item-2, got %q", d.LineItems[1].ID)
	}
	if got := d.LineItems[1].Total.StringFixed(2); got != "59.70" {
		t.Fatalf("expected recomputed total 59.70, got %s", got)
	}
	if d.LineItems[1].Description != "Hospedagem" {
		t.Fatalf("expected trimmed description, got %q", d.LineItems[1].Description)
	}
	if d.ValidityDays != 15 {
		t.Fatalf("expected default validity 15, got %d", d.ValidityDays)
	}
	if d.Client.Name != "João Silva" {
		t.Fatalf("expected trimmed client name, got %q", d.Client.Name)
	}
	if got := d.Subtotal().StringFixed(2); got != "359.70" {
		t.Fatalf("expected subtotal 359.70, got %s", got)
	}
}

func TestQuoteDocument_NoDiscount(t *testing.T) {
	d := validDocument()
	d.DiscountPercent = decimal.Zero
	d.Normalize(30)
	if d.HasDiscount() {
		t.Fatalf("expected no discount line")
	}
	if !d.FinalTotal().Equal(d.Subtotal()) {
		t.Fatalf("expected total == subtotal")
	}
}

func TestQuoteDocument_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(d *QuoteDocument)
		want   error
	}{
		{name: "valid", mutate: func(d *QuoteDocument) {}},
		{name: "empty company name", mutate: func(d *QuoteDocument) { d.Company.Name = "" }, want: ErrCompanyNameRequired},
		{name: "blank client name", mutate: func(d *QuoteDocument) { d.Client.Name = "   " }, want: ErrClientNameRequired},
		{name: "both names empty reports company", mutate: func(d *QuoteDocument) { d.Company.Name = ""; d.Client.Name = "" }, want: ErrCompanyNameRequired},
		{name: "zero quantity", mutate: func(d *QuoteDocument) { d.LineItems[0].Quantity = 0 }, want: ErrInvalidQuantity},
		{name: "duplicate ids", mutate: func(d *QuoteDocument) {
			d.LineItems = append(d.LineItems, LineItem{ID: "1", Quantity: 1})
		}, want: ErrDuplicateLineItemID},
		{name: "discount above 100 is accepted", mutate: func(d *QuoteDocument) { d.DiscountPercent = decimal.NewFromInt(150) }},
		{name: "negative price is accepted", mutate: func(d *QuoteDocument) { d.LineItems[0].UnitPrice = decimal.NewFromInt(-5) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDocument()
			tc.mutate(&d)
			d.Normalize(30)
			err := d.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation kind, got %v", err)
			}
		})
	}
}
