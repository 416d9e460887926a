package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SoloCompta/solo_compta_app/internal/apperrors"
	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
	portsrepo "github.com/SoloCompta/solo_compta_app/internal/core/ports/repositories"
	portssvc "github.com/SoloCompta/solo_compta_app/internal/core/ports/services"
	"github.com/SoloCompta/solo_compta_app/internal/core/taxcalc"
)

// declarationService runs the monthly validation workflow: summarizing a
// month's pending revenue and freezing it into the validation history.
type declarationService struct {
	BaseService
	chargeRepo     portsrepo.ChargeRepositoryFacade
	validationRepo portsrepo.ValidationRepositoryFacade
	settingsRepo   portsrepo.SettingsRepositoryFacade
	now            func() time.Time
}

// DeclarationServiceOption configures the declaration service.
type DeclarationServiceOption func(*declarationService)

// WithDeclarationClock overrides the service clock, used by tests.
func WithDeclarationClock(now func() time.Time) DeclarationServiceOption {
	return func(s *declarationService) {
		s.now = now
	}
}

// NewDeclarationService creates a new declaration service.
func NewDeclarationService(
	chargeRepo portsrepo.ChargeRepositoryFacade,
	validationRepo portsrepo.ValidationRepositoryFacade,
	settingsRepo portsrepo.SettingsRepositoryFacade,
	opts ...DeclarationServiceOption,
) portssvc.DeclarationSvcFacade {
	s := &declarationService{
		chargeRepo:     chargeRepo,
		validationRepo: validationRepo,
		settingsRepo:   settingsRepo,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *declarationService) MonthlySummary(ctx context.Context, month domain.MonthKey) (taxcalc.MonthlyTotals, []domain.Charge, error) {
	charges, err := s.chargeRepo.ListCharges(ctx)
	if err != nil {
		return taxcalc.MonthlyTotals{}, nil, fmt.Errorf("failed to list charges: %w", err)
	}
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return taxcalc.MonthlyTotals{}, nil, fmt.Errorf("failed to load settings: %w", err)
	}

	totals := taxcalc.AggregateMonth(charges, settings, month)
	pending := taxcalc.PendingRevenue(charges, month)
	if pending == nil {
		pending = []domain.Charge{}
	}
	return totals, pending, nil
}

func (s *declarationService) ValidateMonth(ctx context.Context, month domain.MonthKey) (*domain.ValidationEntry, error) {
	charges, err := s.chargeRepo.ListCharges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list charges: %w", err)
	}
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	pending := taxcalc.PendingRevenue(charges, month)
	if len(pending) == 0 {
		return nil, fmt.Errorf("nothing to validate for %s: %w", month, apperrors.ErrNoPendingRevenue)
	}

	totals := taxcalc.AggregateMonth(charges, settings, month)
	entry := domain.ValidationEntry{
		Month:         month,
		TotalAmount:   totals.Revenue,
		TotalVAT:      totals.VATDue,
		SocialCharges: totals.URSSAFDue,
		FormationFee:  totals.FormationFee,
		ValidatedAt:   s.now(),
		Charges:       pending, // snapshot copy, detached from the ledger
	}

	if err := s.validationRepo.UpsertValidationEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to store validation entry: %w", err)
	}

	ids := make([]string, len(pending))
	for i, c := range pending {
		ids[i] = c.ChargeID
	}
	if err := s.chargeRepo.MarkChargesValidated(ctx, ids); err != nil {
		return nil, fmt.Errorf("failed to mark charges validated: %w", err)
	}

	s.LogInfo(ctx, "Month validated",
		"month", string(month),
		"revenue", entry.TotalAmount.String(),
		"charges", len(ids))
	return &entry, nil
}

func (s *declarationService) ValidationHistory(ctx context.Context) ([]domain.ValidationEntry, error) {
	entries, err := s.validationRepo.ListValidationEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list validations: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Month > entries[j].Month
	})
	if entries == nil {
		return []domain.ValidationEntry{}, nil
	}
	return entries, nil
}

func (s *declarationService) YearlySummary(ctx context.Context, year int) (taxcalc.YearlyTotals, error) {
	charges, err := s.chargeRepo.ListCharges(ctx)
	if err != nil {
		return taxcalc.YearlyTotals{}, fmt.Errorf("failed to list charges: %w", err)
	}
	return taxcalc.AggregateYear(charges, year), nil
}
