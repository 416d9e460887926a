package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SoloCompta/solo_compta_app/internal/apperrors"
	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
	portsrepo "github.com/SoloCompta/solo_compta_app/internal/core/ports/repositories"
	portssvc "github.com/SoloCompta/solo_compta_app/internal/core/ports/services"
	"github.com/SoloCompta/solo_compta_app/internal/core/taxcalc"
	"github.com/SoloCompta/solo_compta_app/internal/dto"
	"github.com/SoloCompta/solo_compta_app/internal/utils"
)

// vatService backs the standalone VAT calculator and its history.
type vatService struct {
	BaseService
	vatRepo portsrepo.VATRepositoryFacade
	now     func() time.Time
}

// VATServiceOption configures the VAT service.
type VATServiceOption func(*vatService)

// WithVATClock overrides the service clock, used by tests.
func WithVATClock(now func() time.Time) VATServiceOption {
	return func(s *vatService) {
		s.now = now
	}
}

// NewVATService creates a new VAT calculator service.
func NewVATService(vatRepo portsrepo.VATRepositoryFacade, opts ...VATServiceOption) portssvc.VATSvcFacade {
	s := &vatService{
		vatRepo: vatRepo,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *vatService) Calculate(base, rate decimal.Decimal) taxcalc.Amounts {
	return taxcalc.AddVAT(base, rate)
}

func (s *vatService) SaveCalculation(ctx context.Context, req dto.CreateVATCalculationRequest) (*domain.VATRecord, error) {
	if !req.BaseAmount.IsPositive() {
		return nil, fmt.Errorf("base amount must be positive: %w", apperrors.ErrValidation)
	}
	if !domain.ValidVATRate(req.VATRate) {
		return nil, fmt.Errorf("VAT rate %s is not an allowed rate: %w", req.VATRate, apperrors.ErrValidation)
	}

	now := s.now()
	amounts := taxcalc.AddVAT(req.BaseAmount, req.VATRate)
	record := domain.VATRecord{
		RecordID:   utils.NextID(),
		Month:      domain.MonthOf(now),
		BaseAmount: amounts.Base,
		VATAmount:  amounts.VAT,
		VATRate:    req.VATRate,
		CreatedAt:  now,
	}
	if err := s.vatRepo.AppendVATRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save calculation: %w", err)
	}
	return &record, nil
}

func (s *vatService) History(ctx context.Context) ([]domain.VATRecord, error) {
	records, err := s.vatRepo.ListVATRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list VAT history: %w", err)
	}
	if records == nil {
		return []domain.VATRecord{}, nil
	}
	return records, nil
}

func (s *vatService) DeleteRecord(ctx context.Context, recordID string) error {
	if err := s.vatRepo.DeleteVATRecord(ctx, recordID); err != nil {
		return fmt.Errorf("failed to delete VAT record: %w", err)
	}
	return nil
}
