package repositories

import (
	"context"
	"time"

	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
)

// ChargeReader defines read operations for charge data
type ChargeReader interface {
	// ListCharges retrieves the full charge collection.
	ListCharges(ctx context.Context) ([]domain.Charge, error)
}

// ChargeWriter defines write operations for charge data
type ChargeWriter interface {
	// SaveCharge persists a new charge.
	SaveCharge(ctx context.Context, charge domain.Charge) error

	// UpdateCharge replaces the stored charge with the same ID.
	UpdateCharge(ctx context.Context, charge domain.Charge) error

	// DeleteCharge removes the charge with the given ID.
	DeleteCharge(ctx context.Context, chargeID string) error

	// MarkChargesValidated flips the listed charges to validated.
	MarkChargesValidated(ctx context.Context, chargeIDs []string) error

	// DeletePendingCharges removes every pending charge.
	DeletePendingCharges(ctx context.Context) error

	// ClearLegacyCounters removes the running-counter keys kept by older clients.
	ClearLegacyCounters(ctx context.Context, now time.Time) error
}

// ChargeRepositoryFacade combines all charge-related repository interfaces
type ChargeRepositoryFacade interface {
	ChargeReader
	ChargeWriter
}
