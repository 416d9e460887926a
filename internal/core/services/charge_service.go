package services

import (
	"context"
	"fmt"
	"sort"
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

// chargeService manages the charge ledger: revenue entries and the URSSAF
// contribution entries declared against them.
type chargeService struct {
	BaseService
	chargeRepo   portsrepo.ChargeRepositoryFacade
	vatRepo      portsrepo.VATRepositoryFacade
	settingsRepo portsrepo.SettingsRepositoryFacade
	now          func() time.Time
}

// ChargeServiceOption configures the charge service.
type ChargeServiceOption func(*chargeService)

// WithChargeClock overrides the service clock, used by tests.
func WithChargeClock(now func() time.Time) ChargeServiceOption {
	return func(s *chargeService) {
		s.now = now
	}
}

// NewChargeService creates a new charge service.
func NewChargeService(
	chargeRepo portsrepo.ChargeRepositoryFacade,
	vatRepo portsrepo.VATRepositoryFacade,
	settingsRepo portsrepo.SettingsRepositoryFacade,
	opts ...ChargeServiceOption,
) portssvc.ChargeSvcFacade {
	s := &chargeService{
		chargeRepo:   chargeRepo,
		vatRepo:      vatRepo,
		settingsRepo: settingsRepo,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *chargeService) ListCharges(ctx context.Context) ([]domain.Charge, error) {
	charges, err := s.chargeRepo.ListCharges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list charges: %w", err)
	}
	sort.Slice(charges, func(i, j int) bool {
		return charges[i].DueDate.Before(charges[j].DueDate)
	})
	if charges == nil {
		return []domain.Charge{}, nil
	}
	return charges, nil
}

func (s *chargeService) CreateCharge(ctx context.Context, req dto.CreateChargeRequest) (*domain.Charge, error) {
	if !req.GrossAmount.IsPositive() {
		return nil, fmt.Errorf("gross amount must be positive: %w", apperrors.ErrValidation)
	}

	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	// Without VAT liability the rate is forced to zero, whatever the client sent.
	rate := req.VATRate
	if !settings.VATEnabled {
		rate = decimal.Zero
	} else if !domain.ValidVATRate(rate) {
		return nil, fmt.Errorf("VAT rate %s is not an allowed rate: %w", rate, apperrors.ErrValidation)
	}

	now := s.now()
	amounts := taxcalc.DeriveAmounts(req.GrossAmount, rate)
	charge := domain.Charge{
		ChargeID:         utils.NextID(),
		Type:             domain.ChargeTypeRevenue,
		Amount:           amounts.Base,
		VATRate:          rate,
		VATAmount:        amounts.VAT,
		GrossAmount:      amounts.Total,
		DueDate:          req.DueDate,
		DeclarationMonth: domain.MonthOf(now),
		Status:           domain.ChargeStatusPending,
		CreatedAt:        now,
	}

	if err := s.chargeRepo.SaveCharge(ctx, charge); err != nil {
		return nil, fmt.Errorf("failed to save charge: %w", err)
	}

	// Taxed revenue also feeds the VAT log.
	if rate.IsPositive() {
		record := domain.VATRecord{
			RecordID:   utils.NextID(),
			Month:      charge.DeclarationMonth,
			BaseAmount: amounts.Base,
			VATAmount:  amounts.VAT,
			VATRate:    rate,
			CreatedAt:  now,
		}
		if err := s.vatRepo.AppendVATRecord(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to record VAT entry: %w", err)
		}
	}

	s.LogInfo(ctx, "Revenue charge created",
		"charge_id", charge.ChargeID,
		"month", string(charge.DeclarationMonth),
		"gross", charge.GrossAmount.String())
	return &charge, nil
}

func (s *chargeService) UpdateCharge(ctx context.Context, chargeID string, req dto.UpdateChargeRequest) (*domain.Charge, error) {
	charges, err := s.chargeRepo.ListCharges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list charges: %w", err)
	}

	var charge *domain.Charge
	for i := range charges {
		if charges[i].ChargeID == chargeID {
			charge = &charges[i]
			break
		}
	}
	if charge == nil {
		return nil, fmt.Errorf("charge %s: %w", chargeID, apperrors.ErrNotFound)
	}

	updated := *charge
	if req.DueDate != nil {
		updated.DueDate = *req.DueDate
	}

	gross := updated.GrossAmount
	rate := updated.VATRate
	if req.GrossAmount != nil {
		gross = *req.GrossAmount
	}
	if req.VATRate != nil {
		rate = *req.VATRate
	}

	if req.GrossAmount != nil || req.VATRate != nil {
		if !gross.IsPositive() {
			return nil, fmt.Errorf("gross amount must be positive: %w", apperrors.ErrValidation)
		}
		if updated.IsRevenue() {
			if !domain.ValidVATRate(rate) {
				return nil, fmt.Errorf("VAT rate %s is not an allowed rate: %w", rate, apperrors.ErrValidation)
			}
			amounts := taxcalc.DeriveAmounts(gross, rate)
			updated.Amount = amounts.Base
			updated.VATRate = rate
			updated.VATAmount = amounts.VAT
			updated.GrossAmount = amounts.Total
		} else {
			// Contribution entries carry no VAT; both figures track the amount due.
			updated.Amount = gross
			updated.GrossAmount = gross
		}
	}

	if err := s.chargeRepo.UpdateCharge(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update charge: %w", err)
	}
	return &updated, nil
}

func (s *chargeService) DeleteCharge(ctx context.Context, chargeID string) error {
	if err := s.chargeRepo.DeleteCharge(ctx, chargeID); err != nil {
		return fmt.Errorf("failed to delete charge: %w", err)
	}
	return nil
}

func (s *chargeService) DeclareContribution(ctx context.Context, month domain.MonthKey) (*domain.Charge, error) {
	charges, err := s.chargeRepo.ListCharges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list charges: %w", err)
	}
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	totals := taxcalc.AggregateMonth(charges, settings, month)
	if !totals.Revenue.IsPositive() {
		return nil, fmt.Errorf("no pending revenue for %s: %w", month, apperrors.ErrNoPendingRevenue)
	}

	now := s.now()
	charge := domain.Charge{
		ChargeID:    utils.NextID(),
		Type:        domain.ChargeTypeContribution,
		Amount:      totals.URSSAFDue,
		GrossAmount: totals.URSSAFDue,
		DueDate:     month.Time().AddDate(0, 2, 0).AddDate(0, 0, -1), // end of following month
		Status:      domain.ChargeStatusPending,
		CreatedAt:   now,
	}
	if err := s.chargeRepo.SaveCharge(ctx, charge); err != nil {
		return nil, fmt.Errorf("failed to save contribution: %w", err)
	}

	s.LogInfo(ctx, "Contribution declared",
		"charge_id", charge.ChargeID,
		"month", string(month),
		"amount", charge.Amount.String())
	return &charge, nil
}

func (s *chargeService) MarkContributionPaid(ctx context.Context, chargeID string) (*domain.Charge, error) {
	charges, err := s.chargeRepo.ListCharges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list charges: %w", err)
	}

	for i := range charges {
		if charges[i].ChargeID != chargeID {
			continue
		}
		if charges[i].IsRevenue() {
			return nil, fmt.Errorf("revenue entries cannot be marked paid: %w", apperrors.ErrValidation)
		}
		if charges[i].Status == domain.ChargeStatusPaid {
			return &charges[i], nil
		}
		now := s.now()
		charges[i].Status = domain.ChargeStatusPaid
		charges[i].PaymentDate = &now
		if err := s.chargeRepo.UpdateCharge(ctx, charges[i]); err != nil {
			return nil, fmt.Errorf("failed to mark charge paid: %w", err)
		}
		return &charges[i], nil
	}
	return nil, fmt.Errorf("charge %s: %w", chargeID, apperrors.ErrNotFound)
}

func (s *chargeService) ResetPending(ctx context.Context) error {
	if err := s.chargeRepo.DeletePendingCharges(ctx); err != nil {
		return fmt.Errorf("failed to delete pending charges: %w", err)
	}
	if err := s.chargeRepo.ClearLegacyCounters(ctx, s.now()); err != nil {
		return fmt.Errorf("failed to clear counters: %w", err)
	}
	s.LogInfo(ctx, "Pending charges reset")
	return nil
}
