package repositories

import (
	"context"

	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
)

// CompanyExpenseReader defines read operations for company expense data
type CompanyExpenseReader interface {
	// ListCompanyExpenses retrieves the full company expense collection.
	ListCompanyExpenses(ctx context.Context) ([]domain.CompanyExpense, error)
}

// CompanyExpenseWriter defines write operations for company expense data
type CompanyExpenseWriter interface {
	// SaveCompanyExpense persists a new company expense.
	SaveCompanyExpense(ctx context.Context, expense domain.CompanyExpense) error

	// UpdateCompanyExpense replaces the stored expense with the same ID.
	UpdateCompanyExpense(ctx context.Context, expense domain.CompanyExpense) error

	// DeleteCompanyExpense removes the expense with the given ID.
	DeleteCompanyExpense(ctx context.Context, expenseID string) error

	// DeleteCompanyExpensesByCategory removes every expense in the category.
	DeleteCompanyExpensesByCategory(ctx context.Context, category domain.ExpenseCategory) error
}

// CompanyExpenseRepositoryFacade combines all company expense repository interfaces
type CompanyExpenseRepositoryFacade interface {
	CompanyExpenseReader
	CompanyExpenseWriter
}

// ExpenseReader defines read operations for personal expense data
type ExpenseReader interface {
	// ListExpenses retrieves the full personal expense collection.
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for personal expense data
type ExpenseWriter interface {
	// SaveExpense persists a new personal expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes the expense with the given ID.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all personal expense repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
