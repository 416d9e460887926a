package kvrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SoloCompta/solo_compta_app/internal/adapters/storage/kv"
)

// loadSlice decodes the JSON array stored under key. A missing key yields
// an empty slice. A malformed payload is a load failure: it is logged and
// the collection falls back to empty rather than poisoning business logic.
// Only a storage-level failure is returned as an error.
func loadSlice[T any](ctx context.Context, store kv.Store, key string) ([]T, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if !found {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		slog.WarnContext(ctx, "Discarding malformed stored collection",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, nil
	}
	return items, nil
}

// saveSlice serializes items as a JSON array under key.
func saveSlice[T any](ctx context.Context, store kv.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
