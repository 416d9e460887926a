package services

import (
	portsrepo "github.com/SoloCompta/solo_compta_app/internal/core/ports/repositories"
	portssvc "github.com/SoloCompta/solo_compta_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Charge = NewChargeService(repos.ChargeRepo, repos.VATRepo, repos.SettingsRepo)
	container.Declaration = NewDeclarationService(repos.ChargeRepo, repos.ValidationRepo, repos.SettingsRepo)
	container.VAT = NewVATService(repos.VATRepo)
	container.CompanyExpense = NewCompanyExpenseService(repos.CompanyExpenseRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.Settings = NewSettingsService(repos.SettingsRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ChargeSvcFacade         = (*chargeService)(nil)
	_ portssvc.DeclarationSvcFacade    = (*declarationService)(nil)
	_ portssvc.VATSvcFacade            = (*vatService)(nil)
	_ portssvc.CompanyExpenseSvcFacade = (*companyExpenseService)(nil)
	_ portssvc.ExpenseSvcFacade        = (*expenseService)(nil)
	_ portssvc.SettingsSvcFacade       = (*settingsService)(nil)
)
