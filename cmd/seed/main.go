// Command seed inserts the sample accounts used for local development.
// Accounts whose email already exists are left alone.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"skillswap_server/config"
	"skillswap_server/logger"
	"skillswap_server/models"
	"skillswap_server/store"
)

var seedAccounts = []models.Account{
	{
		Name:          "Sujal Sule",
		Email:         "sujal@gmail.com",
		Password:      "1234",
		SkillsOffered: []string{"HTML", "CSS"},
		SkillsWanted:  []string{"Python"},
		Availability:  "Weekends",
		Role:          models.RoleUser,
		Public:        true,
	},
	{
		Name:          "Admin User",
		Email:         "admin@gmail.com",
		Password:      "admin123",
		SkillsOffered: []string{},
		SkillsWanted:  []string{},
		Availability:  "Anytime",
		Role:          models.RoleAdmin,
		Public:        false,
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	log := logger.Setup(cfg.Server)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st, err := store.Open(ctx, cfg.Store, log)
	if err != nil {
		log.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.Close(ctx)

	inserted, err := seed(ctx, st.Accounts(), seedAccounts)
	if err != nil {
		log.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	log.Info("seeding finished", "inserted", inserted, "skipped", len(seedAccounts)-inserted)
}

// seed inserts every account whose email is not already registered and
// returns how many were inserted.
func seed(ctx context.Context, accounts store.AccountStore, seeds []models.Account) (int, error) {
	inserted := 0
	for _, a := range seeds {
		_, err := accounts.FindByEmail(ctx, a.Email)
		if err == nil {
			continue
		}
		if !store.IsNotFoundError(err) {
			return inserted, fmt.Errorf("failed to check %s: %w", a.Email, err)
		}

		account := a
		if err := accounts.Insert(ctx, &account); err != nil {
			return inserted, fmt.Errorf("failed to insert %s: %w", a.Email, err)
		}
		inserted++
	}
	return inserted, nil
}
