package kvrepo

import (
	"context"

	"github.com/SoloCompta/solo_compta_app/internal/adapters/storage/kv"
	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
)

// ValidationRepository persists the month validation history.
type ValidationRepository struct {
	store kv.Store
}

// NewValidationRepository creates a validation repository over the given store.
func NewValidationRepository(store kv.Store) *ValidationRepository {
	return &ValidationRepository{store: store}
}

// ListValidationEntries returns the full validation history.
func (r *ValidationRepository) ListValidationEntries(ctx context.Context) ([]domain.ValidationEntry, error) {
	return loadSlice[domain.ValidationEntry](ctx, r.store, keyValidations)
}

// UpsertValidationEntry appends the entry, replacing any prior record for
// the same month. Re-validating a month is allowed and overwrites.
func (r *ValidationRepository) UpsertValidationEntry(ctx context.Context, entry domain.ValidationEntry) error {
	entries, err := r.ListValidationEntries(ctx)
	if err != nil {
		return err
	}
	kept := entries[:0]
	for _, e := range entries {
		if e.Month != entry.Month {
			kept = append(kept, e)
		}
	}
	kept = append(kept, entry)
	return saveSlice(ctx, r.store, keyValidations, kept)
}
