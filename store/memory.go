package store

import (
	"context"
	"sync"

	"skillswap_server/models"

	"github.com/google/uuid"
)

// MemoryStore keeps every collection in process memory. It backs the
// "memory" driver and the package tests. Documents are returned as copies.
type MemoryStore struct {
	mu            sync.RWMutex
	accounts      []models.Account
	swaps         []models.SwapRequest
	announcements []models.Announcement
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Accounts() AccountStore           { return memoryAccounts{m} }
func (m *MemoryStore) Swaps() SwapStore                 { return memorySwaps{m} }
func (m *MemoryStore) Announcements() AnnouncementStore { return memoryAnnouncements{m} }
func (m *MemoryStore) Close(ctx context.Context) error  { return nil }

// AnnouncementCount reports how many announcements were stored.
func (m *MemoryStore) AnnouncementCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.announcements)
}

// LastAnnouncement returns the most recently stored announcement.
func (m *MemoryStore) LastAnnouncement() (models.Announcement, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.announcements) == 0 {
		return models.Announcement{}, false
	}
	return m.announcements[len(m.announcements)-1], true
}

func parseUUID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", invalidID(id)
	}
	return parsed.String(), nil
}

func copyAccount(a models.Account) models.Account {
	a.SkillsOffered = append([]string{}, a.SkillsOffered...)
	a.SkillsWanted = append([]string{}, a.SkillsWanted...)
	return a
}

type memoryAccounts struct{ m *MemoryStore }

func (s memoryAccounts) Insert(ctx context.Context, account *models.Account) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	account.ID = uuid.New().String()
	s.m.accounts = append(s.m.accounts, copyAccount(*account))
	return nil
}

func (s memoryAccounts) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	for _, a := range s.m.accounts {
		if a.Email == email {
			found := copyAccount(a)
			return &found, nil
		}
	}
	return nil, ErrAccountNotFound
}

func (s memoryAccounts) List(ctx context.Context, publicOnly bool) ([]models.Account, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	accounts := make([]models.Account, 0, len(s.m.accounts))
	for _, a := range s.m.accounts {
		if publicOnly && !a.Public {
			continue
		}
		accounts = append(accounts, copyAccount(a))
	}
	return accounts, nil
}

func (s memoryAccounts) UpdateByEmail(ctx context.Context, email string, patch models.AccountPatch) (int64, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for i := range s.m.accounts {
		if s.m.accounts[i].Email == email {
			patch.Apply(&s.m.accounts[i])
			return 1, nil
		}
	}
	return 0, nil
}

func (s memoryAccounts) UpdateByID(ctx context.Context, id string, patch models.AccountPatch) (int64, error) {
	id, err := parseUUID(id)
	if err != nil {
		return 0, err
	}

	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for i := range s.m.accounts {
		if s.m.accounts[i].ID == id {
			patch.Apply(&s.m.accounts[i])
			return 1, nil
		}
	}
	return 0, nil
}

func (s memoryAccounts) DeleteByID(ctx context.Context, id string) (int64, error) {
	id, err := parseUUID(id)
	if err != nil {
		return 0, err
	}

	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for i := range s.m.accounts {
		if s.m.accounts[i].ID == id {
			s.m.accounts = append(s.m.accounts[:i], s.m.accounts[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type memorySwaps struct{ m *MemoryStore }

func (s memorySwaps) Insert(ctx context.Context, swap *models.SwapRequest) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	swap.ID = uuid.New().String()
	s.m.swaps = append(s.m.swaps, *swap)
	return nil
}

func (s memorySwaps) ListByParticipant(ctx context.Context, email string) ([]models.SwapRequest, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	swaps := make([]models.SwapRequest, 0)
	for _, sw := range s.m.swaps {
		if sw.FromUserEmail == email || sw.ToUserEmail == email {
			swaps = append(swaps, sw)
		}
	}
	return swaps, nil
}

func (s memorySwaps) List(ctx context.Context) ([]models.SwapRequest, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	return append(make([]models.SwapRequest, 0, len(s.m.swaps)), s.m.swaps...), nil
}

func (s memorySwaps) FindByID(ctx context.Context, id string) (*models.SwapRequest, error) {
	id, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	for _, sw := range s.m.swaps {
		if sw.ID == id {
			return &sw, nil
		}
	}
	return nil, ErrSwapNotFound
}

func (s memorySwaps) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	id, err := parseUUID(id)
	if err != nil {
		return 0, err
	}

	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for i := range s.m.swaps {
		if s.m.swaps[i].ID == id {
			s.m.swaps[i].Status = status
			return 1, nil
		}
	}
	return 0, nil
}

func (s memorySwaps) Delete(ctx context.Context, id string) (int64, error) {
	id, err := parseUUID(id)
	if err != nil {
		return 0, err
	}

	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for i := range s.m.swaps {
		if s.m.swaps[i].ID == id {
			s.m.swaps = append(s.m.swaps[:i], s.m.swaps[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type memoryAnnouncements struct{ m *MemoryStore }

func (s memoryAnnouncements) Insert(ctx context.Context, announcement *models.Announcement) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	announcement.ID = uuid.New().String()
	stored := *announcement
	stored.Body = make(map[string]interface{}, len(announcement.Body))
	for k, v := range announcement.Body {
		stored.Body[k] = v
	}
	s.m.announcements = append(s.m.announcements, stored)
	return nil
}
