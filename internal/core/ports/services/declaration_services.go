package services

import (
	"context"

	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
	"github.com/SoloCompta/solo_compta_app/internal/core/taxcalc"
)

// DeclarationReaderSvc defines read operations over the declaration workflow
type DeclarationReaderSvc interface {
	// MonthlySummary computes the month's obligation totals together with
	// the pending revenue entries they were derived from.
	MonthlySummary(ctx context.Context, month domain.MonthKey) (taxcalc.MonthlyTotals, []domain.Charge, error)

	// ValidationHistory retrieves validated months, newest month first.
	ValidationHistory(ctx context.Context) ([]domain.ValidationEntry, error)

	// YearlySummary recomputes a year's revenue figures from the entries.
	YearlySummary(ctx context.Context, year int) (taxcalc.YearlyTotals, error)
}

// DeclarationWriterSvc defines write operations over the declaration workflow
type DeclarationWriterSvc interface {
	// ValidateMonth freezes the month's pending revenue into a validation
	// entry and marks the entries validated.
	ValidateMonth(ctx context.Context, month domain.MonthKey) (*domain.ValidationEntry, error)
}

// DeclarationSvcFacade combines all declaration-related service interfaces
type DeclarationSvcFacade interface {
	DeclarationReaderSvc
	DeclarationWriterSvc
}
