package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ChargeRepo         ChargeRepositoryFacade
	ValidationRepo     ValidationRepositoryFacade
	VATRepo            VATRepositoryFacade
	CompanyExpenseRepo CompanyExpenseRepositoryFacade
	ExpenseRepo        ExpenseRepositoryFacade
	SettingsRepo       SettingsRepositoryFacade
}
