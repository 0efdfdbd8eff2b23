package engine

import (
	"errors"
	"fmt"

	domain "github.com/offerdesk/offerdesk/pkg/types"
)

// Sentinel errors for missing records.
var (
	ErrOfferNotFound    = errors.New("offer not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrBuyerNotFound    = errors.New("buyer not found")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StaleOfferError is returned when a resubmission does not beat the buyer's
// existing offer on the same property. Existing carries the offer that won.
type StaleOfferError struct {
	Existing *domain.Offer
}

func (e *StaleOfferError) Error() string {
	return fmt.Sprintf(
		"an offer of %.2f or higher already exists for this property",
		e.Existing.OfferedPrice,
	)
}
