package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// UsageLog records one accounted secure generation.
//
// Storage model (DynamoDB):
//   - PK: id (the request idempotency key, so a retried request cannot be counted twice)
//   - GSI1 (owner_id-index): owner_id
type UsageLog struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	ClientName  string          `json:"client_name"`
	TotalValue  decimal.Decimal `json:"total_value"`
	Fingerprint string          `json:"fingerprint"`
	Path        RenderPath      `json:"path"`
	ClientIP    string          `json:"client_ip"`
	UserAgent   string          `json:"user_agent"`
	CreatedAt   time.Time       `json:"created_at"`
}
