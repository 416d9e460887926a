package kvrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/SoloCompta/solo_compta_app/internal/adapters/storage/kv"
	"github.com/SoloCompta/solo_compta_app/internal/apperrors"
	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
)

// ChargeRepository persists the charges collection.
type ChargeRepository struct {
	store kv.Store
}

// NewChargeRepository creates a charge repository over the given store.
func NewChargeRepository(store kv.Store) *ChargeRepository {
	return &ChargeRepository{store: store}
}

// ListCharges returns the full charge collection.
func (r *ChargeRepository) ListCharges(ctx context.Context) ([]domain.Charge, error) {
	return loadSlice[domain.Charge](ctx, r.store, keyCharges)
}

// SaveCharge appends a new charge to the collection.
func (r *ChargeRepository) SaveCharge(ctx context.Context, charge domain.Charge) error {
	charges, err := r.ListCharges(ctx)
	if err != nil {
		return err
	}
	charges = append(charges, charge)
	return saveSlice(ctx, r.store, keyCharges, charges)
}

// UpdateCharge replaces the stored charge with the same ID.
func (r *ChargeRepository) UpdateCharge(ctx context.Context, charge domain.Charge) error {
	charges, err := r.ListCharges(ctx)
	if err != nil {
		return err
	}
	for i, existing := range charges {
		if existing.ChargeID == charge.ChargeID {
			charges[i] = charge
			return saveSlice(ctx, r.store, keyCharges, charges)
		}
	}
	return fmt.Errorf("charge %s: %w", charge.ChargeID, apperrors.ErrNotFound)
}

// DeleteCharge removes the charge with the given ID, whatever its status.
func (r *ChargeRepository) DeleteCharge(ctx context.Context, chargeID string) error {
	charges, err := r.ListCharges(ctx)
	if err != nil {
		return err
	}
	kept := charges[:0]
	for _, c := range charges {
		if c.ChargeID != chargeID {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(charges) {
		return fmt.Errorf("charge %s: %w", chargeID, apperrors.ErrNotFound)
	}
	return saveSlice(ctx, r.store, keyCharges, kept)
}

// MarkChargesValidated flips the listed charges to validated in one write.
func (r *ChargeRepository) MarkChargesValidated(ctx context.Context, chargeIDs []string) error {
	charges, err := r.ListCharges(ctx)
	if err != nil {
		return err
	}
	ids := make(map[string]struct{}, len(chargeIDs))
	for _, id := range chargeIDs {
		ids[id] = struct{}{}
	}
	for i := range charges {
		if _, ok := ids[charges[i].ChargeID]; ok {
			charges[i].Status = domain.ChargeStatusValidated
		}
	}
	return saveSlice(ctx, r.store, keyCharges, charges)
}

// DeletePendingCharges removes every pending charge, leaving validated and
// paid entries in place.
func (r *ChargeRepository) DeletePendingCharges(ctx context.Context) error {
	charges, err := r.ListCharges(ctx)
	if err != nil {
		return err
	}
	kept := charges[:0]
	for _, c := range charges {
		if c.Status != domain.ChargeStatusPending {
			kept = append(kept, c)
		}
	}
	return saveSlice(ctx, r.store, keyCharges, kept)
}

// ClearLegacyCounters removes the running-counter keys older clients kept
// alongside the collections. Harmless when the keys are already absent.
func (r *ChargeRepository) ClearLegacyCounters(ctx context.Context, now time.Time) error {
	keys := []string{
		legacyYearlyVATKey(now.Year()),
		keyLegacyValidatedCA,
		keyLegacyCurrentMonthVAT,
	}
	for _, key := range keys {
		if err := r.store.Remove(ctx, key); err != nil {
			return fmt.Errorf("clear counter %s: %w", key, err)
		}
	}
	return nil
}
