package kvrepo

import (
	"context"
	"fmt"

	"github.com/SoloCompta/solo_compta_app/internal/adapters/storage/kv"
	"github.com/SoloCompta/solo_compta_app/internal/apperrors"
	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
)

// ExpenseRepository persists personal expenses.
type ExpenseRepository struct {
	store kv.Store
}

// NewExpenseRepository creates a personal expense repository over the given
// store.
func NewExpenseRepository(store kv.Store) *ExpenseRepository {
	return &ExpenseRepository{store: store}
}

// ListExpenses returns the full personal expense collection.
func (r *ExpenseRepository) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	return loadSlice[domain.Expense](ctx, r.store, keyExpenses)
}

// SaveExpense appends a new personal expense.
func (r *ExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	expenses, err := r.ListExpenses(ctx)
	if err != nil {
		return err
	}
	expenses = append(expenses, expense)
	return saveSlice(ctx, r.store, keyExpenses, expenses)
}

// DeleteExpense removes the expense with the given ID.
func (r *ExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	expenses, err := r.ListExpenses(ctx)
	if err != nil {
		return err
	}
	kept := expenses[:0]
	for _, e := range expenses {
		if e.ExpenseID != expenseID {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(expenses) {
		return fmt.Errorf("expense %s: %w", expenseID, apperrors.ErrNotFound)
	}
	return saveSlice(ctx, r.store, keyExpenses, kept)
}
