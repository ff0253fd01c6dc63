package main

import (
	"context"
	"testing"

	"skillswap_server/models"
	"skillswap_server/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	accounts := store.NewMemoryStore().Accounts()

	n, err := seed(ctx, accounts, seedAccounts)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = seed(ctx, accounts, seedAccounts)
	require.NoError(t, err)
	assert.Zero(t, n)

	admin, err := accounts.FindByEmail(ctx, "admin@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.False(t, admin.Public)

	all, err := accounts.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
