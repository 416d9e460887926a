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
	"github.com/SoloCompta/solo_compta_app/internal/dto"
	"github.com/SoloCompta/solo_compta_app/internal/utils"
)

// companyExpenseService manages categorized business expenses.
type companyExpenseService struct {
	BaseService
	expenseRepo portsrepo.CompanyExpenseRepositoryFacade
	now         func() time.Time
}

// CompanyExpenseServiceOption configures the company expense service.
type CompanyExpenseServiceOption func(*companyExpenseService)

// WithCompanyExpenseClock overrides the service clock, used by tests.
func WithCompanyExpenseClock(now func() time.Time) CompanyExpenseServiceOption {
	return func(s *companyExpenseService) {
		s.now = now
	}
}

// NewCompanyExpenseService creates a new company expense service.
func NewCompanyExpenseService(expenseRepo portsrepo.CompanyExpenseRepositoryFacade, opts ...CompanyExpenseServiceOption) portssvc.CompanyExpenseSvcFacade {
	s := &companyExpenseService{
		expenseRepo: expenseRepo,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *companyExpenseService) ListCompanyExpenses(ctx context.Context) ([]domain.CompanyExpense, error) {
	expenses, err := s.expenseRepo.ListCompanyExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list company expenses: %w", err)
	}
	if expenses == nil {
		return []domain.CompanyExpense{}, nil
	}
	return expenses, nil
}

func (s *companyExpenseService) Summary(ctx context.Context) (*domain.CompanyExpenseSummary, error) {
	expenses, err := s.expenseRepo.ListCompanyExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list company expenses: %w", err)
	}

	summary := domain.CompanyExpenseSummary{
		Total:      decimal.Zero,
		ByCategory: make(map[domain.ExpenseCategory]decimal.Decimal, len(domain.ExpenseCategories)),
	}
	for _, category := range domain.ExpenseCategories {
		summary.ByCategory[category] = decimal.Zero
	}
	for _, e := range expenses {
		summary.Total = summary.Total.Add(e.Amount)
		summary.ByCategory[e.Category] = summary.ByCategory[e.Category].Add(e.Amount)
	}
	return &summary, nil
}

func (s *companyExpenseService) CreateCompanyExpense(ctx context.Context, req dto.CreateCompanyExpenseRequest) (*domain.CompanyExpense, error) {
	category := domain.ExpenseCategory(req.Category)
	if !domain.ValidExpenseCategory(category) {
		return nil, fmt.Errorf("unknown expense category %q: %w", req.Category, apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}

	date := req.Date
	if date.IsZero() {
		date = s.now()
	}
	expense := domain.CompanyExpense{
		ExpenseID:   utils.NextID(),
		Category:    category,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
	}
	if err := s.expenseRepo.SaveCompanyExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to save company expense: %w", err)
	}
	return &expense, nil
}

func (s *companyExpenseService) UpdateCompanyExpense(ctx context.Context, expenseID string, req dto.UpdateCompanyExpenseRequest) (*domain.CompanyExpense, error) {
	expenses, err := s.expenseRepo.ListCompanyExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list company expenses: %w", err)
	}

	var expense *domain.CompanyExpense
	for i := range expenses {
		if expenses[i].ExpenseID == expenseID {
			expense = &expenses[i]
			break
		}
	}
	if expense == nil {
		return nil, fmt.Errorf("company expense %s: %w", expenseID, apperrors.ErrNotFound)
	}

	updated := *expense
	if req.Category != nil {
		category := domain.ExpenseCategory(*req.Category)
		if !domain.ValidExpenseCategory(category) {
			return nil, fmt.Errorf("unknown expense category %q: %w", *req.Category, apperrors.ErrValidation)
		}
		updated.Category = category
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
		}
		updated.Amount = *req.Amount
	}
	if req.Date != nil {
		updated.Date = *req.Date
	}

	if err := s.expenseRepo.UpdateCompanyExpense(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update company expense: %w", err)
	}
	return &updated, nil
}

func (s *companyExpenseService) DeleteCompanyExpense(ctx context.Context, expenseID string) error {
	if err := s.expenseRepo.DeleteCompanyExpense(ctx, expenseID); err != nil {
		return fmt.Errorf("failed to delete company expense: %w", err)
	}
	return nil
}

func (s *companyExpenseService) DeleteByCategory(ctx context.Context, category domain.ExpenseCategory) error {
	if !domain.ValidExpenseCategory(category) {
		return fmt.Errorf("unknown expense category %q: %w", category, apperrors.ErrValidation)
	}
	if err := s.expenseRepo.DeleteCompanyExpensesByCategory(ctx, category); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", category, err)
	}
	s.LogInfo(ctx, "Company expense category cleared", "category", string(category))
	return nil
}
