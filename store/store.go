package store

import (
	"context"

	"skillswap_server/models"
)

// AccountStore persists accounts.
type AccountStore interface {
	// Insert stores a new account and assigns its ID.
	Insert(ctx context.Context, account *models.Account) error

	// FindByEmail returns the account with the given email.
	// Returns ErrAccountNotFound if none exists.
	FindByEmail(ctx context.Context, email string) (*models.Account, error)

	// List returns all accounts, or only those with public == true.
	List(ctx context.Context, publicOnly bool) ([]models.Account, error)

	// UpdateByEmail applies patch to the account with the given email and
	// returns the number of matched documents.
	UpdateByEmail(ctx context.Context, email string, patch models.AccountPatch) (int64, error)

	// UpdateByID applies patch to the account with the given id.
	// Returns ErrInvalidID for malformed ids.
	UpdateByID(ctx context.Context, id string, patch models.AccountPatch) (int64, error)

	// DeleteByID removes the account with the given id.
	// Returns ErrInvalidID for malformed ids.
	DeleteByID(ctx context.Context, id string) (int64, error)
}

// SwapStore persists swap requests.
type SwapStore interface {
	Insert(ctx context.Context, swap *models.SwapRequest) error

	// ListByParticipant returns swaps where email is the sender or recipient.
	ListByParticipant(ctx context.Context, email string) ([]models.SwapRequest, error)

	List(ctx context.Context) ([]models.SwapRequest, error)

	// FindByID returns the swap with the given id. Returns ErrInvalidID for
	// malformed ids and ErrSwapNotFound if none exists.
	FindByID(ctx context.Context, id string) (*models.SwapRequest, error)

	// UpdateStatus sets the status of one swap and returns the matched count.
	UpdateStatus(ctx context.Context, id, status string) (int64, error)

	Delete(ctx context.Context, id string) (int64, error)
}

// AnnouncementStore is a write-only sink for announcements.
type AnnouncementStore interface {
	Insert(ctx context.Context, announcement *models.Announcement) error
}

// Store groups the collections of one backend. It is opened once at startup
// and closed on shutdown.
type Store interface {
	Accounts() AccountStore
	Swaps() SwapStore
	Announcements() AnnouncementStore
	Close(ctx context.Context) error
}
