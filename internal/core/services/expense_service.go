package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SoloCompta/solo_compta_app/internal/apperrors"
	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
	portsrepo "github.com/SoloCompta/solo_compta_app/internal/core/ports/repositories"
	portssvc "github.com/SoloCompta/solo_compta_app/internal/core/ports/services"
	"github.com/SoloCompta/solo_compta_app/internal/dto"
	"github.com/SoloCompta/solo_compta_app/internal/utils"
)

// expenseService manages plain personal expenses.
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	now         func() time.Time
}

// ExpenseServiceOption configures the personal expense service.
type ExpenseServiceOption func(*expenseService)

// WithExpenseClock overrides the service clock, used by tests.
func WithExpenseClock(now func() time.Time) ExpenseServiceOption {
	return func(s *expenseService) {
		s.now = now
	}
}

// NewExpenseService creates a new personal expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, opts ...ExpenseServiceOption) portssvc.ExpenseSvcFacade {
	s := &expenseService{
		expenseRepo: expenseRepo,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *expenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}

	date := req.Date
	if date.IsZero() {
		date = s.now()
	}
	expense := domain.Expense{
		ExpenseID:   utils.NextID(),
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
	}
	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}
	return &expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
