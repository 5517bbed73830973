package request

import (
	"encoding/base64"
	"errors"
	"strings"

	"gerador_orcamentos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidLogo = errors.New("logo_base64 is not valid base64")

type CompanyRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	LogoBase64 string `json:"logo_base64"`
}

type ClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type LineItemRequest struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price" swaggertype:"number"`
}

type ThemeOverrideRequest struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
	Text      string `json:"text"`
}

// QuoteRequest is the inline quote document accepted by the quote and PDF routes.
// Field checks happen in the domain so both generation paths share them.
type QuoteRequest struct {
	Company           CompanyRequest        `json:"company"`
	Client            ClientRequest         `json:"client"`
	Items             []LineItemRequest     `json:"items"`
	DiscountPercent   decimal.Decimal       `json:"discount_percent" swaggertype:"number"`
	ColorTheme        string                `json:"color_theme"`
	ThemeOverride     *ThemeOverrideRequest `json:"theme_override,omitempty"`
	ValidityDays      int                   `json:"validity_days"`
	SpecialConditions string                `json:"special_conditions"`
	Observations      string                `json:"observations"`
}

func (r QuoteRequest) ToDocument() (entities.QuoteDocument, error) {
	var logo []byte
	if raw := strings.TrimSpace(r.Company.LogoBase64); raw != "" {
		// Accept data URLs as sent by browsers.
		if i := strings.Index(raw, ","); strings.HasPrefix(raw, "data:") && i >= 0 {
			raw = raw[i+1:]
		}
		b, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return entities.QuoteDocument{}, ErrInvalidLogo
		}
		logo = b
	}

	items := make([]entities.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.LineItem{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	doc := entities.QuoteDocument{
		Company: entities.Company{
			Name:    r.Company.Name,
			Email:   r.Company.Email,
			Phone:   r.Company.Phone,
			Address: r.Company.Address,
			Logo:    logo,
		},
		Client: entities.Client{
			Name:    r.Client.Name,
			Email:   r.Client.Email,
			Phone:   r.Client.Phone,
			Address: r.Client.Address,
		},
		LineItems:         items,
		DiscountPercent:   r.DiscountPercent,
		ColorTheme:        r.ColorTheme,
		ValidityDays:      r.ValidityDays,
		SpecialConditions: r.SpecialConditions,
		Observations:      r.Observations,
	}
	if r.ThemeOverride != nil {
		doc.ThemeOverride = &entities.ThemeOverride{
			Primary:   r.ThemeOverride.Primary,
			Secondary: r.ThemeOverride.Secondary,
			Accent:    r.ThemeOverride.Accent,
			Text:      r.ThemeOverride.Text,
		}
	}
	return doc, nil
}
