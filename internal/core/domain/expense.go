package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies a company expense.
type ExpenseCategory string

const (
	CategorySupplies  ExpenseCategory = "Fournitures"
	CategoryServices  ExpenseCategory = "Services"
	CategoryRent      ExpenseCategory = "Loyer"
	CategoryInsurance ExpenseCategory = "Assurance"
	CategoryMarketing ExpenseCategory = "Marketing"
	CategoryTravel    ExpenseCategory = "Déplacements"
	CategoryOther     ExpenseCategory = "Autres"
)

// ExpenseCategories lists all valid categories in display order.
var ExpenseCategories = []ExpenseCategory{
	CategorySupplies,
	CategoryServices,
	CategoryRent,
	CategoryInsurance,
	CategoryMarketing,
	CategoryTravel,
	CategoryOther,
}

// ValidExpenseCategory reports whether c is one of the known categories.
func ValidExpenseCategory(c ExpenseCategory) bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// CompanyExpense is a categorized business expense. It has no derivation
// linkage to revenue; totals over it are plain sums.
type CompanyExpense struct {
	ExpenseID   string          `json:"expenseID"`
	Category    ExpenseCategory `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
}

// CompanyExpenseSummary totals company expenses per category. Every known
// category is present in ByCategory, zero-filled when empty.
type CompanyExpenseSummary struct {
	Total      decimal.Decimal
	ByCategory map[ExpenseCategory]decimal.Decimal
}

// Expense is a plain personal expense without category.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
}
