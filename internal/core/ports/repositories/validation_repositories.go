package repositories

import (
	"context"

	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
)

// ValidationReader defines read operations for the validation history
type ValidationReader interface {
	// ListValidationEntries retrieves the full validation history.
	ListValidationEntries(ctx context.Context) ([]domain.ValidationEntry, error)
}

// ValidationWriter defines write operations for the validation history
type ValidationWriter interface {
	// UpsertValidationEntry stores the entry, replacing any prior record
	// for the same month.
	UpsertValidationEntry(ctx context.Context, entry domain.ValidationEntry) error
}

// ValidationRepositoryFacade combines all validation-related repository interfaces
type ValidationRepositoryFacade interface {
	ValidationReader
	ValidationWriter
}
