package kvrepo

import (
	"github.com/SoloCompta/solo_compta_app/internal/adapters/storage/kv"
	portsrepo "github.com/SoloCompta/solo_compta_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository over the same store.
func NewRepositoryProvider(store kv.Store) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		ChargeRepo:         NewChargeRepository(store),
		ValidationRepo:     NewValidationRepository(store),
		VATRepo:            NewVATRepository(store),
		CompanyExpenseRepo: NewCompanyExpenseRepository(store),
		ExpenseRepo:        NewExpenseRepository(store),
		SettingsRepo:       NewSettingsRepository(store),
	}
}
