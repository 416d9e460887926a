package kvrepo

import (
	"context"
	"fmt"

	"github.com/SoloCompta/solo_compta_app/internal/adapters/storage/kv"
	"github.com/SoloCompta/solo_compta_app/internal/apperrors"
	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
)

// VATRepository persists the VAT calculation history.
type VATRepository struct {
	store kv.Store
}

// NewVATRepository creates a VAT repository over the given store.
func NewVATRepository(store kv.Store) *VATRepository {
	return &VATRepository{store: store}
}

// ListVATRecords returns the full VAT history, newest first.
func (r *VATRepository) ListVATRecords(ctx context.Context) ([]domain.VATRecord, error) {
	return loadSlice[domain.VATRecord](ctx, r.store, keyVATHistory)
}

// AppendVATRecord prepends the record and trims the history to the
// retention limit, dropping the oldest entries beyond it.
func (r *VATRepository) AppendVATRecord(ctx context.Context, record domain.VATRecord) error {
	records, err := r.ListVATRecords(ctx)
	if err != nil {
		return err
	}
	records = append([]domain.VATRecord{record}, records...)
	if len(records) > domain.VATHistoryLimit {
		records = records[:domain.VATHistoryLimit]
	}
	return saveSlice(ctx, r.store, keyVATHistory, records)
}

// DeleteVATRecord removes the record with the given ID.
func (r *VATRepository) DeleteVATRecord(ctx context.Context, recordID string) error {
	records, err := r.ListVATRecords(ctx)
	if err != nil {
		return err
	}
	kept := records[:0]
	for _, rec := range records {
		if rec.RecordID != recordID {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		return fmt.Errorf("vat record %s: %w", recordID, apperrors.ErrNotFound)
	}
	return saveSlice(ctx, r.store, keyVATHistory, kept)
}

// ClearVATHistory removes every stored VAT record.
func (r *VATRepository) ClearVATHistory(ctx context.Context) error {
	if err := r.store.Remove(ctx, keyVATHistory); err != nil {
		return fmt.Errorf("clear %s: %w", keyVATHistory, err)
	}
	return nil
}
