package entities

import (
	"errors"
	"fmt"
)

// Error kinds raised while generating a quote PDF.
//
// Specific errors wrap one of these with %w, so callers classify with errors.Is:
//   - ErrValidation: caller input is wrong; fix and retry, never falls back.
//   - ErrLicense: license inactive, expired or over quota; needs external action.
//   - ErrRender: document construction failed; a defect, surfaced generically.
//   - ErrDependency: license/accounting/logging collaborator failed; abort generation.
var (
	ErrValidation = errors.New("validation error")
	ErrLicense    = errors.New("license error")
	ErrRender     = errors.New("render error")
	ErrDependency = errors.New("dependency error")
)

var (
	ErrCompanyNameRequired = fmt.Errorf("%w: company name is required", ErrValidation)
	ErrClientNameRequired  = fmt.Errorf("%w: client name is required", ErrValidation)
	ErrInvalidQuantity     = fmt.Errorf("%w: line item quantity must be at least 1", ErrValidation)
	ErrDuplicateLineItemID = fmt.Errorf("%w: line item ids must be unique", ErrValidation)

	// ErrPageOverflow is raised by single-page renderers when the content does not fit.
	ErrPageOverflow = fmt.Errorf("%w: content does not fit on a single page", ErrRender)

	ErrLicenseNotFound      = fmt.Errorf("%w: license not found", ErrLicense)
	ErrLicenseInactive      = fmt.Errorf("%w: license is not active", ErrLicense)
	ErrLicenseExpired       = fmt.Errorf("%w: license expired", ErrLicense)
	ErrLicenseQuotaExceeded = fmt.Errorf("%w: pdf quota exceeded", ErrLicense)

	// ErrDuplicateGeneration is returned when an idempotency key was already accounted.
	// It is not a render or dependency failure, so it never triggers the fallback path.
	ErrDuplicateGeneration = errors.New("generation already accounted for this idempotency key")
)

// NewRenderError wraps a construction failure as ErrRender.
func NewRenderError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrRender, op, err)
}

// NewDependencyError wraps a collaborator failure as ErrDependency.
func NewDependencyError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDependency, op, err)
}
