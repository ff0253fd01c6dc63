package store

import (
	"context"
	"strings"
	"testing"

	"skillswap_server/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAccounts(t *testing.T) {
	ctx := context.Background()
	accounts := NewMemoryStore().Accounts()

	a := &models.Account{Name: "A", Email: "a@x.com", Password: "p", Public: true}
	b := &models.Account{Name: "B", Email: "b@x.com", Password: "q", Public: false}
	require.NoError(t, accounts.Insert(ctx, a))
	require.NoError(t, accounts.Insert(ctx, b))
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)

	t.Run("find by email", func(t *testing.T) {
		found, err := accounts.FindByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, a.ID, found.ID)
		assert.Equal(t, "p", found.Password)
	})

	t.Run("find is case sensitive", func(t *testing.T) {
		_, err := accounts.FindByEmail(ctx, "A@X.com")
		assert.ErrorIs(t, err, ErrAccountNotFound)
		assert.True(t, IsNotFoundError(err))
	})

	t.Run("list public only", func(t *testing.T) {
		all, err := accounts.List(ctx, false)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		public, err := accounts.List(ctx, true)
		require.NoError(t, err)
		require.Len(t, public, 1)
		assert.Equal(t, "a@x.com", public[0].Email)
	})

	t.Run("update by email", func(t *testing.T) {
		loc := "Pune"
		n, err := accounts.UpdateByEmail(ctx, "b@x.com", models.AccountPatch{Location: &loc})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		found, err := accounts.FindByEmail(ctx, "b@x.com")
		require.NoError(t, err)
		assert.Equal(t, "Pune", found.Location)
		assert.Equal(t, "B", found.Name)
	})

	t.Run("update unknown email matches nothing", func(t *testing.T) {
		loc := "Nowhere"
		n, err := accounts.UpdateByEmail(ctx, "nobody@x.com", models.AccountPatch{Location: &loc})
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("malformed id", func(t *testing.T) {
		banned := true
		_, err := accounts.UpdateByID(ctx, "not-an-id", models.AccountPatch{Banned: &banned})
		assert.ErrorIs(t, err, ErrInvalidID)

		_, err = accounts.DeleteByID(ctx, "not-an-id")
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("well formed missing id", func(t *testing.T) {
		n, err := accounts.DeleteByID(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("delete by id", func(t *testing.T) {
		n, err := accounts.DeleteByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		_, err = accounts.FindByEmail(ctx, "b@x.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryAccountsReturnCopies(t *testing.T) {
	ctx := context.Background()
	accounts := NewMemoryStore().Accounts()

	require.NoError(t, accounts.Insert(ctx, &models.Account{Email: "a@x.com", SkillsOffered: []string{"Go"}}))

	found, err := accounts.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	found.SkillsOffered[0] = "Rust"

	again, err := accounts.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, again.SkillsOffered)
}

func TestMemorySwaps(t *testing.T) {
	ctx := context.Background()
	swaps := NewMemoryStore().Swaps()

	ab := &models.SwapRequest{FromUserEmail: "a@x.com", ToUserEmail: "b@x.com", Status: "pending"}
	ca := &models.SwapRequest{FromUserEmail: "c@x.com", ToUserEmail: "a@x.com", Status: "pending"}
	bc := &models.SwapRequest{FromUserEmail: "b@x.com", ToUserEmail: "c@x.com", Status: "pending"}
	for _, s := range []*models.SwapRequest{ab, ca, bc} {
		require.NoError(t, swaps.Insert(ctx, s))
	}

	forA, err := swaps.ListByParticipant(ctx, "a@x.com")
	require.NoError(t, err)
	ids := []string{forA[0].ID, forA[1].ID}
	assert.ElementsMatch(t, []string{ab.ID, ca.ID}, ids)

	none, err := swaps.ListByParticipant(ctx, "z@x.com")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	n, err := swaps.UpdateStatus(ctx, ab.ID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	all, err := swaps.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, s := range all {
		if s.ID == ab.ID {
			assert.Equal(t, "accepted", s.Status)
		}
	}

	_, err = swaps.UpdateStatus(ctx, "xyz", "accepted")
	assert.ErrorIs(t, err, ErrInvalidID)

	n, err = swaps.Delete(ctx, bc.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = swaps.Delete(ctx, bc.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMemorySwapFindByID(t *testing.T) {
	ctx := context.Background()
	swaps := NewMemoryStore().Swaps()

	sw := &models.SwapRequest{FromUserEmail: "a@x.com", ToUserEmail: "b@x.com", Status: models.SwapStatusPending}
	require.NoError(t, swaps.Insert(ctx, sw))

	found, err := swaps.FindByID(ctx, strings.ToUpper(sw.ID))
	require.NoError(t, err)
	assert.Equal(t, sw.ID, found.ID)
	assert.Equal(t, "a@x.com", found.FromUserEmail)

	_, err = swaps.FindByID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrSwapNotFound)

	_, err = swaps.FindByID(ctx, "abc")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestMemoryAnnouncements(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	a := models.NewAnnouncement(models.AnnouncementInput{"title": "Hi", "body": "x", "priority": 2.0}, "2024-01-01T00:00:00Z")
	require.NoError(t, m.Announcements().Insert(ctx, a))
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, 1, m.AnnouncementCount())

	a.Body["title"] = "changed"
	stored, ok := m.LastAnnouncement()
	require.True(t, ok)
	assert.Equal(t, a.ID, stored.ID)
	assert.Equal(t, map[string]interface{}{"title": "Hi", "body": "x", "priority": 2.0}, stored.Body)
}
