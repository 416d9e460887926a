// Package kvrepo implements the repository ports on top of the kv.Store
// contract. Each collection lives as one JSON array under a fixed key;
// every mutation is a full read-modify-write of that key's document.
package kvrepo

import "fmt"

// Storage keys. The names mirror the mobile client's historical storage
// layout so an exported data set stays recognizable.
const (
	keyCharges         = "charges"
	keySettings        = "companySettings"
	keyCompanyExpenses = "companyExpenses"
	keyExpenses        = "expenses"
	keyVATHistory      = "vatHistory"
	keyValidations     = "validatedEntries"

	// Legacy running-counter keys. Totals are recomputed from the entry
	// collections nowadays; these keys are only ever removed, on reset.
	keyLegacyValidatedCA     = "@validatedCA"
	keyLegacyCurrentMonthVAT = "@currentMonthVAT"
)

func legacyYearlyVATKey(year int) string {
	return fmt.Sprintf("@yearlyVAT_%d", year)
}
