package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T, path string) *SQLiteStorage {
	s, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	require.NoError(t, s.RunMigrations())
	return s
}

func TestSQLite_SetGet(t *testing.T) {
	s := setupTestDB(t, ":memory:")
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "cart-state-v1", []byte(`{"cart":{}}`)))
	require.NoError(t, s.Set(ctx, "cart-state-v1", []byte(`{"cart":{"isOpen":true}}`)))

	got, err := s.Get(ctx, "cart-state-v1")
	require.NoError(t, err)
	assert.Equal(t, `{"cart":{"isOpen":true}}`, string(got))
}

func TestSQLite_Missing(t *testing.T) {
	s := setupTestDB(t, ":memory:")
	defer s.Close()

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLite_Delete(t *testing.T) {
	s := setupTestDB(t, ":memory:")
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	require.NoError(t, s.Delete(ctx, "k"))

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.db")
	ctx := context.Background()

	first := setupTestDB(t, path)
	require.NoError(t, first.Set(ctx, "k", []byte("persisted")))
	require.NoError(t, first.Close())

	second := setupTestDB(t, path)
	defer second.Close()

	got, err := second.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "persisted", string(got))
}

func TestSQLite_CancelledContext(t *testing.T) {
	s := setupTestDB(t, ":memory:")
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Get(ctx, "k")
	assert.ErrorContains(t, err, "context canceled")
}
