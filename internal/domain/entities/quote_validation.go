package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var documentValidator = validator.New()

// Validate checks the fields both generation paths require. It runs on a normalized
// document and never touches any output sink.
func (d QuoteDocument) Validate() error {
	err := documentValidator.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	// Company first, then client: the order users fill the form in.
	for _, want := range []string{"QuoteDocument.Company.Name", "QuoteDocument.Client.Name"} {
		for _, fe := range verrs {
			if fe.StructNamespace() == want {
				return mapFieldError(fe)
			}
		}
	}
	return mapFieldError(verrs[0])
}

func mapFieldError(fe validator.FieldError) error {
	ns := fe.StructNamespace()
	switch {
	case ns == "QuoteDocument.Company.Name":
		return ErrCompanyNameRequired
	case ns == "QuoteDocument.Client.Name":
		return ErrClientNameRequired
	case fe.Tag() == "unique" && strings.HasSuffix(ns, "LineItems"):
		return ErrDuplicateLineItemID
	case strings.HasSuffix(ns, ".Quantity"):
		return ErrInvalidQuantity
	default:
		return fmt.Errorf("%w: %s failed on %q", ErrValidation, ns, fe.Tag())
	}
}
