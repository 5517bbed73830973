package response

import (
	"time"

	"gerador_orcamentos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type LicenseResponse struct {
	OwnerID       string    `json:"owner_id"`
	Plan          string    `json:"plan"`
	Status        string    `json:"status"`
	PDFsGenerated int       `json:"pdfs_generated"`
	PDFLimit      int       `json:"pdf_limit"`
	Remaining     int       `json:"remaining"`
	ExpiresAt     time.Time `json:"expires_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromLicense(l entities.License) LicenseResponse {
	return LicenseResponse{
		OwnerID:       l.OwnerID,
		Plan:          l.Plan,
		Status:        string(l.Status),
		PDFsGenerated: l.PDFsGenerated,
		PDFLimit:      l.PDFLimit,
		Remaining:     l.Remaining(),
		ExpiresAt:     l.ExpiresAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

type UsageLogResponse struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	ClientName  string          `json:"client_name"`
	TotalValue  decimal.Decimal `json:"total_value" swaggertype:"string"`
	Fingerprint string          `json:"fingerprint"`
	Path        string          `json:"path"`
	ClientIP    string          `json:"client_ip,omitempty"`
	UserAgent   string          `json:"user_agent,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func FromUsageLogs(logs []entities.UsageLog) []UsageLogResponse {
	out := make([]UsageLogResponse, 0, len(logs))
	for _, u := range logs {
		out = append(out, UsageLogResponse{
			ID:          u.ID,
			OwnerID:     u.OwnerID,
			ClientName:  u.ClientName,
			TotalValue:  u.TotalValue,
			Fingerprint: u.Fingerprint,
			Path:        string(u.Path),
			ClientIP:    u.ClientIP,
			UserAgent:   u.UserAgent,
			CreatedAt:   u.CreatedAt,
		})
	}
	return out
}
