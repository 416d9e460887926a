package kv_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoloCompta/solo_compta_app/internal/adapters/storage/kv"
)

// exerciseStore runs the contract checks shared by every backend.
func exerciseStore(t *testing.T, store kv.Store) {
	t.Helper()
	ctx := context.Background()

	// missing key is not an error
	_, found, err := store.Get(ctx, "charges")
	require.NoError(t, err)
	assert.False(t, found)

	// set then get round-trips
	require.NoError(t, store.Set(ctx, "charges", `[{"chargeID":"1"}]`))
	value, found, err := store.Get(ctx, "charges")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `[{"chargeID":"1"}]`, value)

	// set replaces
	require.NoError(t, store.Set(ctx, "charges", `[]`))
	value, _, err = store.Get(ctx, "charges")
	require.NoError(t, err)
	assert.Equal(t, `[]`, value)

	// remove, and removing twice stays silent
	require.NoError(t, store.Remove(ctx, "charges"))
	_, found, err = store.Get(ctx, "charges")
	require.NoError(t, err)
	assert.False(t, found)
	require.NoError(t, store.Remove(ctx, "charges"))
}

func TestMemoryStore(t *testing.T) {
	store := kv.NewMemoryStore()
	defer store.Close()
	exerciseStore(t, store)
}

func TestFileStore(t *testing.T) {
	store, err := kv.NewFileStore(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	defer store.Close()
	exerciseStore(t, store)
}

func TestFileStore_AwkwardKeys(t *testing.T) {
	store, err := kv.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	// legacy counter keys start with '@'
	require.NoError(t, store.Set(ctx, "@yearlyVAT_2025", "123.45"))
	value, found, err := store.Get(ctx, "@yearlyVAT_2025")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "123.45", value)
	require.NoError(t, store.Remove(ctx, "@yearlyVAT_2025"))
}
