package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Company is the issuer of the quote.
type Company struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Logo    []byte `json:"logo,omitempty"`
}

// Client is the recipient of the quote.
type Client struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// LineItem is one row of the quote. Total is derived (Quantity x UnitPrice) and is
// recomputed by Normalize; a caller-provided value is never authoritative.
type LineItem struct {
	ID          string          `json:"id" validate:"required"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity" validate:"min=1"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// ThemeOverride carries advanced customization colors as "#RRGGBB" strings.
// Empty fields keep the value of the selected palette.
type ThemeOverride struct {
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
	Accent    string `json:"accent,omitempty"`
	Text      string `json:"text,omitempty"`
}

// QuoteDocument is the input of both PDF generators.
//
// Domain notes:
//   - DiscountPercent is applied to the subtotal: total = subtotal x (1 - pct/100).
//   - Discounts above 100% and negative prices are not rejected here.
//   - The document has no identity of its own; QuoteRecord persists it.
type QuoteDocument struct {
	Company           Company         `json:"company"`
	Client            Client          `json:"client"`
	LineItems         []LineItem      `json:"line_items" validate:"unique=ID,dive"`
	DiscountPercent   decimal.Decimal `json:"discount_percent"`
	ColorTheme        string          `json:"color_theme"`
	ThemeOverride     *ThemeOverride  `json:"theme_override,omitempty"`
	ValidityDays      int             `json:"validity_days"`
	SpecialConditions string          `json:"special_conditions"`
	Observations      string          `json:"observations"`
}

// Normalize trims free text, assigns missing item ids, recomputes item totals and
// applies the default validity. It must run before Validate and before rendering.
func (d *QuoteDocument) Normalize(defaultValidityDays int) {
	d.Company.Name = strings.TrimSpace(d.Company.Name)
	d.Company.Email = strings.TrimSpace(d.Company.Email)
	d.Company.Phone = strings.TrimSpace(d.Company.Phone)
	d.Company.Address = strings.TrimSpace(d.Company.Address)
	d.Client.Name = strings.TrimSpace(d.Client.Name)
	d.Client.Email = strings.TrimSpace(d.Client.Email)
	d.Client.Phone = strings.TrimSpace(d.Client.Phone)
	d.Client.Address = strings.TrimSpace(d.Client.Address)
	d.SpecialConditions = strings.TrimSpace(d.SpecialConditions)
	d.Observations = strings.TrimSpace(d.Observations)
	d.ColorTheme = strings.ToLower(strings.TrimSpace(d.ColorTheme))

	for i := range d.LineItems {
		it := &d.LineItems[i]
		it.ID = strings.TrimSpace(it.ID)
		if it.ID == "" {
			it.ID = fmt.Sprintf("item-%d", i+1)
		}
		it.Description = strings.TrimSpace(it.Description)
		it.Total = it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
	}

	if d.ValidityDays <= 0 {
		d.ValidityDays = defaultValidityDays
	}
}

// Subtotal is the sum of the line item totals.
func (d QuoteDocument) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range d.LineItems {
		sum = sum.Add(it.Total)
	}
	return sum
}

// DiscountAmount is the value removed from the subtotal.
func (d QuoteDocument) DiscountAmount() decimal.Decimal {
	return d.Subtotal().Mul(d.DiscountPercent).Div(hundred)
}

// FinalTotal is subtotal x (1 - DiscountPercent/100).
func (d QuoteDocument) FinalTotal() decimal.Decimal {
	return d.Subtotal().Sub(d.DiscountAmount())
}

// HasDiscount reports whether the discount line must be printed.
func (d QuoteDocument) HasDiscount() bool {
	return d.DiscountPercent.IsPositive()
}
