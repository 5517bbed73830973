package entities

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// LicensePlan is a purchasable quota package.
type LicensePlan struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	PDFLimit int
	Days     int
}

var licensePlans = map[string]LicensePlan{
	"basico":       {ID: "basico", Name: "Básico", Price: decimal.RequireFromString("29.90"), PDFLimit: 50, Days: 30},
	"profissional": {ID: "profissional", Name: "Profissional", Price: decimal.RequireFromString("59.90"), PDFLimit: 200, Days: 30},
	"empresarial":  {ID: "empresarial", Name: "Empresarial", Price: decimal.RequireFromString("119.90"), PDFLimit: 1000, Days: 30},
}

// LookupLicensePlan returns the plan with the given id.
func LookupLicensePlan(id string) (LicensePlan, bool) {
	p, ok := licensePlans[id]
	return p, ok
}

// LicensePlans lists the catalog ordered by price.
func LicensePlans() []LicensePlan {
	out := make([]LicensePlan, 0, len(licensePlans))
	for _, p := range licensePlans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	return out
}

// Activate returns the license granted by buying p: active, counter reset, expiring
// p.Days calendar days after now.
func (p LicensePlan) Activate(ownerID string, now time.Time) License {
	y, m, d := now.Date()
	return License{
		OwnerID:       ownerID,
		Plan:          p.ID,
		Status:        LicenseStatusActive,
		PDFsGenerated: 0,
		PDFLimit:      p.PDFLimit,
		ExpiresAt:     time.Date(y, m, d+p.Days, 23, 59, 59, 0, now.Location()),
		UpdatedAt:     now,
	}
}
