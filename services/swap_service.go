package services

import (
	"context"
	"log/slog"
	"time"

	"skillswap_server/models"
	"skillswap_server/store"
)

type SwapService struct {
	store    store.Store
	notifier Notifier
	logger   *slog.Logger
}

func NewSwapService(s store.Store, notifier Notifier, logger *slog.Logger) *SwapService {
	return &SwapService{store: s, notifier: notifier, logger: logger.With("component", "swap_service")}
}

// Create stores a new swap request in pending state and tells the recipient.
// Neither participant is checked for existence.
func (ss *SwapService) Create(ctx context.Context, input models.SwapInput) (*models.SwapRequest, error) {
	swap := &models.SwapRequest{
		FromUserEmail: input.FromUserEmail,
		ToUserEmail:   input.ToUserEmail,
		SkillOffered:  input.SkillOffered,
		SkillWanted:   input.SkillWanted,
		Message:       input.Message,
		Status:        models.SwapStatusPending,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := ss.store.Swaps().Insert(ctx, swap); err != nil {
		return nil, err
	}

	ss.logger.Info("swap request created", "swap_id", swap.ID)
	ss.notifier.NotifyUser(swap.ToUserEmail, EventSwapRequested, swap)
	return swap, nil
}

// ListForUser returns every swap the email sent or received.
func (ss *SwapService) ListForUser(ctx context.Context, email string) ([]models.SwapRequest, error) {
	return ss.store.Swaps().ListByParticipant(ctx, email)
}

// CheckParticipant returns ErrNotParticipant unless email sent or received
// swap id. A swap that does not exist passes, so the caller's update or
// delete stays a no-op.
func (ss *SwapService) CheckParticipant(ctx context.Context, id, email string) error {
	swap, err := ss.store.Swaps().FindByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil
		}
		return err
	}
	if swap.FromUserEmail != email && swap.ToUserEmail != email {
		ss.logger.Warn("swap access denied", "swap_id", swap.ID, "email", email)
		return ErrNotParticipant
	}
	return nil
}

// UpdateStatus overwrites the status with any value. An unknown but
// well-formed id is not an error.
func (ss *SwapService) UpdateStatus(ctx context.Context, id, status string) error {
	matched, err := ss.store.Swaps().UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if matched == 0 {
		ss.logger.Debug("swap status update matched nothing", "swap_id", id)
		return nil
	}

	// Clients join the room by the stored id, which may be spelled
	// differently from the one in the request.
	swap, err := ss.store.Swaps().FindByID(ctx, id)
	if err != nil {
		ss.logger.Warn("updated swap could not be reloaded", "swap_id", id, "error", err)
		return nil
	}

	ss.notifier.NotifyRoom(SwapRoom(swap.ID), EventSwapUpdated, map[string]string{"_id": swap.ID, "status": status})
	return nil
}

func (ss *SwapService) Delete(ctx context.Context, id string) error {
	deleted, err := ss.store.Swaps().Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		ss.logger.Debug("swap delete matched nothing", "swap_id", id)
	}
	return nil
}
