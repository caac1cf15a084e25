package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsc-protocol/dsc-indexer/internal/store/schema"
)

func TestMemoryStore(t *testing.T) {
	RunStoreTests(t, func(t *testing.T) Store { return NewMemoryStore() }, func(t *testing.T) {})
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.UpsertUser(ctx, &schema.User{ID: alice, TotalDeposited: "1", TotalMinted: "0", TotalBurned: "0"}))

	user, err := s.GetUser(ctx, alice)
	require.NoError(t, err)
	user.TotalDeposited = "999"

	again, err := s.GetUser(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, "1", again.TotalDeposited)
}

func TestMemoryStoreNestedTx(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	err := s.WithTx(ctx, func(tx Store) error {
		return tx.WithTx(ctx, func(inner Store) error {
			return inner.SetBlockCursor(ctx, "eip155:1", 42)
		})
	})
	require.NoError(t, err)

	cursor, err := s.GetBlockCursor(ctx, "eip155:1")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cursor)
}
