package services

import (
	"context"
	"strings"
	"testing"

	"skillswap_server/logger"
	"skillswap_server/models"
	"skillswap_server/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSwapService() (*SwapService, *recordingNotifier) {
	n := &recordingNotifier{}
	return NewSwapService(store.NewMemoryStore(), n, logger.Discard()), n
}

func TestCreateForcesPending(t *testing.T) {
	ctx := context.Background()
	svc, n := newSwapService()

	swap, err := svc.Create(ctx, models.SwapInput{
		FromUserEmail: "a@x.com",
		ToUserEmail:   "b@x.com",
		SkillOffered:  "HTML",
		SkillWanted:   "Python",
		Message:       "hi",
		Status:        "accepted",
	})
	require.NoError(t, err)

	assert.Equal(t, models.SwapStatusPending, swap.Status)
	assert.NotEmpty(t, swap.ID)
	assert.NotEmpty(t, swap.CreatedAt)

	require.Len(t, n.users, 1)
	assert.Equal(t, "b@x.com", n.users[0].target)
	assert.Equal(t, EventSwapRequested, n.users[0].event)
}

func TestListForUserIsUnionOfSentAndReceived(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSwapService()

	pairs := [][2]string{
		{"a@x.com", "b@x.com"},
		{"c@x.com", "a@x.com"},
		{"b@x.com", "c@x.com"},
		{"a@x.com", "c@x.com"},
	}
	var wantIDs []string
	for _, p := range pairs {
		swap, err := svc.Create(ctx, models.SwapInput{FromUserEmail: p[0], ToUserEmail: p[1]})
		require.NoError(t, err)
		if p[0] == "a@x.com" || p[1] == "a@x.com" {
			wantIDs = append(wantIDs, swap.ID)
		}
	}

	swaps, err := svc.ListForUser(ctx, "a@x.com")
	require.NoError(t, err)

	var gotIDs []string
	for _, s := range swaps {
		gotIDs = append(gotIDs, s.ID)
	}
	assert.ElementsMatch(t, wantIDs, gotIDs)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	svc, n := newSwapService()

	swap, err := svc.Create(ctx, models.SwapInput{FromUserEmail: "a@x.com", ToUserEmail: "b@x.com"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, swap.ID, "anything goes"))

	swaps, err := svc.ListForUser(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, swaps, 1)
	assert.Equal(t, "anything goes", swaps[0].Status)

	require.Len(t, n.rooms, 1)
	assert.Equal(t, SwapRoom(swap.ID), n.rooms[0].target)
	assert.Equal(t, EventSwapUpdated, n.rooms[0].event)
}

func TestUpdateStatusNotifiesStoredID(t *testing.T) {
	ctx := context.Background()
	svc, n := newSwapService()

	swap, err := svc.Create(ctx, models.SwapInput{FromUserEmail: "a@x.com", ToUserEmail: "b@x.com"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, strings.ToUpper(swap.ID), "accepted"))

	require.Len(t, n.rooms, 1)
	assert.Equal(t, SwapRoom(swap.ID), n.rooms[0].target)
	assert.Equal(t, map[string]string{"_id": swap.ID, "status": "accepted"}, n.rooms[0].payload)
}

func TestCheckParticipant(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSwapService()

	swap, err := svc.Create(ctx, models.SwapInput{FromUserEmail: "a@x.com", ToUserEmail: "b@x.com"})
	require.NoError(t, err)

	assert.NoError(t, svc.CheckParticipant(ctx, swap.ID, "a@x.com"))
	assert.NoError(t, svc.CheckParticipant(ctx, swap.ID, "b@x.com"))
	assert.ErrorIs(t, svc.CheckParticipant(ctx, swap.ID, "c@x.com"), ErrNotParticipant)
	assert.NoError(t, svc.CheckParticipant(ctx, uuid.New().String(), "c@x.com"), "unknown swap stays a no-op")
	assert.ErrorIs(t, svc.CheckParticipant(ctx, "abc", "a@x.com"), store.ErrInvalidID)
}

func TestMissingAndMalformedSwapIDs(t *testing.T) {
	ctx := context.Background()
	svc, n := newSwapService()
	missing := uuid.New().String()

	assert.NoError(t, svc.UpdateStatus(ctx, missing, "accepted"))
	assert.NoError(t, svc.Delete(ctx, missing))
	assert.Empty(t, n.rooms, "no event for an update that matched nothing")

	assert.ErrorIs(t, svc.UpdateStatus(ctx, "abc", "accepted"), store.ErrInvalidID)
	assert.ErrorIs(t, svc.Delete(ctx, "abc"), store.ErrInvalidID)
}

func TestDeleteSwap(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSwapService()

	swap, err := svc.Create(ctx, models.SwapInput{FromUserEmail: "a@x.com", ToUserEmail: "b@x.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, swap.ID))

	swaps, err := svc.ListForUser(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, swaps)
}
