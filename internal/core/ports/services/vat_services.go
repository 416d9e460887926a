package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
	"github.com/SoloCompta/solo_compta_app/internal/core/taxcalc"
	"github.com/SoloCompta/solo_compta_app/internal/dto"
)

// VATReaderSvc defines read operations for the standalone VAT calculator
type VATReaderSvc interface {
	// Calculate derives the VAT figures for a pre-tax amount. Pure.
	Calculate(base, rate decimal.Decimal) taxcalc.Amounts

	// History retrieves stored calculations, newest first.
	History(ctx context.Context) ([]domain.VATRecord, error)
}

// VATWriterSvc defines write operations for the standalone VAT calculator
type VATWriterSvc interface {
	// SaveCalculation computes and stores a calculation, trimming the
	// history to its retention limit.
	SaveCalculation(ctx context.Context, req dto.CreateVATCalculationRequest) (*domain.VATRecord, error)

	// DeleteRecord removes a stored calculation by ID.
	DeleteRecord(ctx context.Context, recordID string) error
}

// VATSvcFacade combines all VAT-calculator service interfaces
type VATSvcFacade interface {
	VATReaderSvc
	VATWriterSvc
}
