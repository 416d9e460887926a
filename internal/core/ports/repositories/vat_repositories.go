package repositories

import (
	"context"

	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
)

// VATReader defines read operations for the VAT history
type VATReader interface {
	// ListVATRecords retrieves the VAT history, newest first.
	ListVATRecords(ctx context.Context) ([]domain.VATRecord, error)
}

// VATWriter defines write operations for the VAT history
type VATWriter interface {
	// AppendVATRecord stores a new record at the head of the history.
	AppendVATRecord(ctx context.Context, record domain.VATRecord) error

	// DeleteVATRecord removes the record with the given ID.
	DeleteVATRecord(ctx context.Context, recordID string) error

	// ClearVATHistory removes every stored VAT record.
	ClearVATHistory(ctx context.Context) error
}

// VATRepositoryFacade combines all VAT-related repository interfaces
type VATRepositoryFacade interface {
	VATReader
	VATWriter
}
