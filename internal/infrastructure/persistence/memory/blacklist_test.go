package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBlacklist(t *testing.T) {
	b := NewTokenBlacklist()
	ctx := context.Background()

	revoked, err := b.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, b.Revoke(ctx, "token-a", time.Hour))

	revoked, err = b.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, revoked)

	// Other tokens are unaffected.
	revoked, err = b.IsRevoked(ctx, "token-b")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenBlacklist_EntryExpires(t *testing.T) {
	b := NewTokenBlacklist()
	ctx := context.Background()

	require.NoError(t, b.Revoke(ctx, "token-a", -time.Second))

	revoked, err := b.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)
}
