package services

import (
	"context"
	"log/slog"
	"time"

	"skillswap_server/models"
	"skillswap_server/store"
)

// ModerationService backs the admin endpoints.
type ModerationService struct {
	store    store.Store
	notifier Notifier
	logger   *slog.Logger
}

func NewModerationService(s store.Store, notifier Notifier, logger *slog.Logger) *ModerationService {
	return &ModerationService{store: s, notifier: notifier, logger: logger.With("component", "moderation_service")}
}

func (ms *ModerationService) allAccounts(ctx context.Context) ([]models.Account, error) {
	accounts, err := ms.store.Accounts().List(ctx, false)
	if err != nil {
		return nil, err
	}
	return models.SanitizeAccounts(accounts), nil
}

func (ms *ModerationService) allSwaps(ctx context.Context) ([]models.SwapRequest, error) {
	return ms.store.Swaps().List(ctx)
}

// ListAccounts returns every account without passwords.
func (ms *ModerationService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return ms.allAccounts(ctx)
}

// ReportAccounts is the reporting view of ListAccounts.
func (ms *ModerationService) ReportAccounts(ctx context.Context) ([]models.Account, error) {
	return ms.allAccounts(ctx)
}

func (ms *ModerationService) ListSwaps(ctx context.Context) ([]models.SwapRequest, error) {
	return ms.allSwaps(ctx)
}

func (ms *ModerationService) ReportSwaps(ctx context.Context) ([]models.SwapRequest, error) {
	return ms.allSwaps(ctx)
}

// BanAccount marks the account banned. Only the flag is recorded.
func (ms *ModerationService) BanAccount(ctx context.Context, id string) error {
	banned := true
	matched, err := ms.store.Accounts().UpdateByID(ctx, id, models.AccountPatch{Banned: &banned})
	if err != nil {
		return err
	}
	ms.logger.Info("account banned", "account_id", id, "matched", matched)
	return nil
}

func (ms *ModerationService) DeleteAccount(ctx context.Context, id string) error {
	deleted, err := ms.store.Accounts().DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	ms.logger.Info("account deleted", "account_id", id, "matched", deleted)
	return nil
}

func (ms *ModerationService) DeleteSwap(ctx context.Context, id string) error {
	deleted, err := ms.store.Swaps().Delete(ctx, id)
	if err != nil {
		return err
	}
	ms.logger.Info("swap deleted by admin", "swap_id", id, "matched", deleted)
	return nil
}

// PostAnnouncement stores the body as given, stamped with created_at, and
// pushes it to every client.
func (ms *ModerationService) PostAnnouncement(ctx context.Context, input models.AnnouncementInput) (*models.Announcement, error) {
	announcement := models.NewAnnouncement(input, time.Now().UTC().Format(time.RFC3339))
	if err := ms.store.Announcements().Insert(ctx, announcement); err != nil {
		return nil, err
	}

	ms.logger.Info("announcement posted", "announcement_id", announcement.ID, "fields", len(announcement.Body))
	ms.notifier.Broadcast(EventAnnouncement, announcement)
	return announcement, nil
}
