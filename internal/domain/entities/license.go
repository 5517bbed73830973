package entities

import "time"

// LicenseStatus is the entitlement state of a caller.
type LicenseStatus string

const (
	LicenseStatusActive    LicenseStatus = "active"
	LicenseStatusExpired   LicenseStatus = "expired"
	LicenseStatusSuspended LicenseStatus = "suspended"
)

// Valid reports whether s is one of the known statuses.
func (s LicenseStatus) Valid() bool {
	switch s {
	case LicenseStatusActive, LicenseStatusExpired, LicenseStatusSuspended:
		return true
	}
	return false
}

// License is the quota record of a caller.
//
// Storage model (DynamoDB):
//   - PK: owner_id
//
// PDFsGenerated is only ever incremented by the accounting collaborator, under a
// condition that re-checks status, quota and expiry atomically.
type License struct {
	OwnerID       string        `json:"owner_id"`
	Plan          string        `json:"plan"`
	Status        LicenseStatus `json:"status"`
	PDFsGenerated int           `json:"pdfs_generated"`
	PDFLimit      int           `json:"pdf_limit"`
	ExpiresAt     time.Time     `json:"expires_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// CheckUsable is the license gate run before any secure PDF work.
func (l License) CheckUsable(now time.Time) error {
	switch l.Status {
	case LicenseStatusActive:
	case LicenseStatusExpired:
		return ErrLicenseExpired
	default:
		return ErrLicenseInactive
	}
	if l.ExpiresAt.IsZero() || now.After(l.ExpiresAt) {
		return ErrLicenseExpired
	}
	if l.PDFsGenerated >= l.PDFLimit {
		return ErrLicenseQuotaExceeded
	}
	return nil
}

// Remaining is the number of PDFs still allowed, never negative.
func (l License) Remaining() int {
	if r := l.PDFLimit - l.PDFsGenerated; r > 0 {
		return r
	}
	return 0
}
