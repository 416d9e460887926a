package kvrepo

import (
	"context"
	"fmt"

	"github.com/SoloCompta/solo_compta_app/internal/adapters/storage/kv"
	"github.com/SoloCompta/solo_compta_app/internal/apperrors"
	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
)

// CompanyExpenseRepository persists categorized company expenses.
type CompanyExpenseRepository struct {
	store kv.Store
}

// NewCompanyExpenseRepository creates a company expense repository over the
// given store.
func NewCompanyExpenseRepository(store kv.Store) *CompanyExpenseRepository {
	return &CompanyExpenseRepository{store: store}
}

// ListCompanyExpenses returns the full company expense collection.
func (r *CompanyExpenseRepository) ListCompanyExpenses(ctx context.Context) ([]domain.CompanyExpense, error) {
	return loadSlice[domain.CompanyExpense](ctx, r.store, keyCompanyExpenses)
}

// SaveCompanyExpense appends a new company expense.
func (r *CompanyExpenseRepository) SaveCompanyExpense(ctx context.Context, expense domain.CompanyExpense) error {
	expenses, err := r.ListCompanyExpenses(ctx)
	if err != nil {
		return err
	}
	expenses = append(expenses, expense)
	return saveSlice(ctx, r.store, keyCompanyExpenses, expenses)
}

// UpdateCompanyExpense replaces the stored expense with the same ID.
func (r *CompanyExpenseRepository) UpdateCompanyExpense(ctx context.Context, expense domain.CompanyExpense) error {
	expenses, err := r.ListCompanyExpenses(ctx)
	if err != nil {
		return err
	}
	for i, existing := range expenses {
		if existing.ExpenseID == expense.ExpenseID {
			expenses[i] = expense
			return saveSlice(ctx, r.store, keyCompanyExpenses, expenses)
		}
	}
	return fmt.Errorf("company expense %s: %w", expense.ExpenseID, apperrors.ErrNotFound)
}

// DeleteCompanyExpense removes the expense with the given ID.
func (r *CompanyExpenseRepository) DeleteCompanyExpense(ctx context.Context, expenseID string) error {
	expenses, err := r.ListCompanyExpenses(ctx)
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
		return fmt.Errorf("company expense %s: %w", expenseID, apperrors.ErrNotFound)
	}
	return saveSlice(ctx, r.store, keyCompanyExpenses, kept)
}

// DeleteCompanyExpensesByCategory removes every expense in the category.
// Deleting from an empty category is a no-op.
func (r *CompanyExpenseRepository) DeleteCompanyExpensesByCategory(ctx context.Context, category domain.ExpenseCategory) error {
	expenses, err := r.ListCompanyExpenses(ctx)
	if err != nil {
		return err
	}
	kept := expenses[:0]
	for _, e := range expenses {
		if e.Category != category {
			kept = append(kept, e)
		}
	}
	return saveSlice(ctx, r.store, keyCompanyExpenses, kept)
}
