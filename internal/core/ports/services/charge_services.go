package services

import (
	"context"

	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
	"github.com/SoloCompta/solo_compta_app/internal/dto"
)

// ChargeReaderSvc defines read operations for the charge ledger
type ChargeReaderSvc interface {
	// ListCharges retrieves all charges sorted by due date ascending.
	ListCharges(ctx context.Context) ([]domain.Charge, error)
}

// ChargeWriterSvc defines write operations for the charge ledger
type ChargeWriterSvc interface {
	// CreateCharge logs a new revenue entry, deriving its amounts.
	CreateCharge(ctx context.Context, req dto.CreateChargeRequest) (*domain.Charge, error)

	// UpdateCharge applies the non-nil request fields to an existing charge.
	UpdateCharge(ctx context.Context, chargeID string, req dto.UpdateChargeRequest) (*domain.Charge, error)

	// DeleteCharge removes a charge whatever its status.
	DeleteCharge(ctx context.Context, chargeID string) error

	// DeclareContribution creates a contribution charge from a month's
	// pending revenue totals.
	DeclareContribution(ctx context.Context, month domain.MonthKey) (*domain.Charge, error)

	// MarkContributionPaid flips a contribution charge to paid.
	MarkContributionPaid(ctx context.Context, chargeID string) (*domain.Charge, error)

	// ResetPending removes all pending charges and legacy counters.
	ResetPending(ctx context.Context) error
}

// ChargeSvcFacade combines all charge-related service interfaces
type ChargeSvcFacade interface {
	ChargeReaderSvc
	ChargeWriterSvc
}
