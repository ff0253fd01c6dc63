package services

import (
	"context"
	"fmt"
	"log/slog"

	"skillswap_server/helpers"
	"skillswap_server/models"
	"skillswap_server/store"
)

// AccountService handles signup, login and profile management.
type AccountService struct {
	store  store.Store
	logger *slog.Logger
}

func NewAccountService(s store.Store, logger *slog.Logger) *AccountService {
	return &AccountService{store: s, logger: logger.With("component", "account_service")}
}

// Signup creates a user account. Emails are unique; the check and the insert
// are separate round-trips, so two concurrent signups can both succeed.
func (as *AccountService) Signup(ctx context.Context, input models.SignupInput) error {
	_, err := as.store.Accounts().FindByEmail(ctx, input.Email)
	if err == nil {
		return ErrEmailExists
	}
	if !store.IsNotFoundError(err) {
		return fmt.Errorf("failed to check existing account: %w", err)
	}

	account := &models.Account{
		Name:          input.Name,
		Email:         input.Email,
		Password:      input.Password,
		Location:      input.Location,
		SkillsOffered: nonNil(input.SkillsOffered),
		SkillsWanted:  nonNil(input.SkillsWanted),
		Availability:  input.Availability,
		Role:          models.RoleUser,
		Public:        true,
		Banned:        false,
	}
	if err := as.store.Accounts().Insert(ctx, account); err != nil {
		return err
	}

	as.logger.Info("account created", "account_id", account.ID)
	return nil
}

// Login returns the account matching email and password, without its
// password. Unknown emails and wrong passwords fail identically.
func (as *AccountService) Login(ctx context.Context, email, password string) (*models.Account, error) {
	account, err := as.store.Accounts().FindByEmail(ctx, email)
	if err != nil {
		if store.IsNotFoundError(err) {
			as.logger.Debug("login failed: unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if account.Password != password {
		as.logger.Debug("login failed: wrong password", "account_id", account.ID)
		return nil, ErrInvalidCredentials
	}

	as.logger.Info("user logged in", "trace_id", helpers.GetTraceID(ctx), "account_id", account.ID)
	clean := account.Sanitized()
	return &clean, nil
}

// GetByEmail returns the account without its password.
func (as *AccountService) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	account, err := as.store.Accounts().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	clean := account.Sanitized()
	return &clean, nil
}

// UpdateProfile merges the supplied fields into the account with email.
// Matching nothing is not an error.
func (as *AccountService) UpdateProfile(ctx context.Context, email string, update models.ProfileUpdate) error {
	matched, err := as.store.Accounts().UpdateByEmail(ctx, email, update.Patch())
	if err != nil {
		return err
	}
	if matched == 0 {
		as.logger.Debug("profile update matched no account")
	}
	return nil
}

// SetVisibility toggles whether the account appears in the public directory.
func (as *AccountService) SetVisibility(ctx context.Context, email string, public bool) error {
	matched, err := as.store.Accounts().UpdateByEmail(ctx, email, models.AccountPatch{Public: &public})
	if err != nil {
		return err
	}
	if matched == 0 {
		as.logger.Debug("visibility update matched no account")
	}
	return nil
}

// ListPublic returns the accounts with public set, without passwords.
func (as *AccountService) ListPublic(ctx context.Context) ([]models.Account, error) {
	accounts, err := as.store.Accounts().List(ctx, true)
	if err != nil {
		return nil, err
	}
	return models.SanitizeAccounts(accounts), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
