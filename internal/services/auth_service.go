package services

import (
	"context"
	"log"
	"slices"

	"github.com/google/uuid"
	"github.com/localnerve/decideforme/internal/events"
	"github.com/localnerve/decideforme/internal/kvstore"
	"github.com/localnerve/decideforme/internal/metrics"
	"github.com/localnerve/decideforme/internal/models"
)

// LoginResult is the outcome of a sign in attempt
type LoginResult string

// Login outcomes
const (
	LoginUser    LoginResult = "user"
	LoginAdmin   LoginResult = "admin"
	LoginInvalid LoginResult = "invalid"
	LoginBanned  LoginResult = "banned"
)

// AuthService manages the session flags of one profile and checks credentials
// against the account table
type AuthService struct {
	store   kvstore.Store
	storage *StorageService
	users   *UserService
	events  events.Publisher
	opts    Options
}

// NewAuthService creates the session flag manager
func NewAuthService(store kvstore.Store, storage *StorageService, users *UserService, pub events.Publisher, opts Options) *AuthService {
	return &AuthService{
		store:   store,
		storage: storage,
		users:   users,
		events:  pub,
		opts:    opts.withDefaults(),
	}
}

// IsAuthenticated reports the user session flag
func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	return readFlag(ctx, s.store, KeyAuthenticated)
}

// IsAdminAuthenticated reports the admin session flag
func (s *AuthService) IsAdminAuthenticated(ctx context.Context) bool {
	return readFlag(ctx, s.store, KeyAdminAuthenticated)
}

// IsAdminCredential reports whether identifier and password are the admin credential
func (s *AuthService) IsAdminCredential(identifier, password string) bool {
	return slices.Contains(s.opts.AdminIdentifiers, identifier) &&
		HashPassword(password) == s.opts.AdminPasswordHash
}

// Login signs identifier (an email or a username) in.
// Banned accounts are refused before their credential is looked at and never get a session flag.
// An account without a stored hash has no credential and cannot sign in.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (LoginResult, error) {
	result, err := s.login(ctx, identifier, password)
	if err == nil {
		metrics.LoginOutcomes.WithLabelValues(string(result)).Inc()
	}
	return result, err
}

func (s *AuthService) login(ctx context.Context, identifier, password string) (LoginResult, error) {
	if err := wait(ctx, s.opts.AuthDelay); err != nil {
		return LoginInvalid, err
	}
	if password == "" {
		return LoginInvalid, nil
	}

	if s.IsAdminCredential(identifier, password) {
		if err := s.AdminLogin(ctx); err != nil {
			return LoginInvalid, err
		}
		return LoginAdmin, nil
	}

	var account *models.UserAccount
	for _, u := range s.storage.Users(ctx) {
		if u.Email == identifier || u.Username == identifier {
			account = &u
			break
		}
	}
	if account == nil {
		return LoginInvalid, nil
	}
	if account.IsBanned() {
		log.Printf("Refused sign in for banned account %s", account.ID)
		return LoginBanned, nil
	}
	if account.PasswordHash == "" || account.PasswordHash != HashPassword(password) {
		return LoginInvalid, nil
	}

	if err := writeSlot(ctx, s.store, KeyAuthenticated, true); err != nil {
		return LoginInvalid, err
	}
	if err := s.users.setSession(ctx, sessionProfile(*account)); err != nil {
		return LoginInvalid, err
	}

	s.events.Publish(events.AuthChange)
	return LoginUser, nil
}

// sessionProfile keeps the identity fields of account needed by the app
func sessionProfile(account models.UserAccount) models.UserAccount {
	profile := models.UserAccount{
		ID:          account.ID,
		Name:        account.Name,
		Username:    account.Username,
		Email:       account.Email,
		Avatar:      account.Avatar,
		Age:         account.Age,
		Gender:      account.Gender,
		Preferences: account.Preferences,
	}
	if profile.Username == "" {
		profile.Username = "@user"
	}
	if profile.Preferences == nil {
		prefs := models.DefaultPreferences()
		profile.Preferences = &prefs
	}
	return profile
}

// AdminLogin opens an admin session without a credential check
func (s *AuthService) AdminLogin(ctx context.Context) error {
	if err := writeSlot(ctx, s.store, KeyAdminAuthenticated, true); err != nil {
		return err
	}
	if err := writeSlot(ctx, s.store, KeyAuthenticated, true); err != nil {
		return err
	}
	if err := s.users.setSession(ctx, adminUser()); err != nil {
		return err
	}

	s.events.Publish(events.AuthChange)
	s.events.Publish(events.AdminAuthChange)
	return nil
}

// Signup creates an account and signs it in. It always succeeds; an email that is
// already registered leaves the account table unchanged but still opens the session.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) (models.UserAccount, error) {
	if err := wait(ctx, s.opts.AuthDelay); err != nil {
		return models.UserAccount{}, err
	}
	metrics.Signups.Inc()

	prefs := models.DefaultPreferences()
	account := models.UserAccount{
		ID:           uuid.Must(uuid.NewV7()).String(),
		Name:         username,
		Username:     "@" + username,
		Email:        email,
		PasswordHash: HashPassword(password),
		Preferences:  &prefs,
	}

	if err := writeSlot(ctx, s.store, KeyAuthenticated, true); err != nil {
		return account, err
	}
	if err := s.storage.SaveUser(ctx, account); err != nil {
		return account, err
	}
	if err := s.users.setSession(ctx, account); err != nil {
		return account, err
	}

	s.events.Publish(events.AuthChange)
	s.events.Publish(events.UserChange)
	return account, nil
}

// ResetPassword pretends to send a reset link. It resolves true after the configured delay
// and changes nothing.
func (s *AuthService) ResetPassword(ctx context.Context, email string) (bool, error) {
	if err := wait(ctx, s.opts.ResetPasswordDelay); err != nil {
		return false, err
	}
	log.Printf("Password reset link sent to %s", email)
	return true, nil
}

// Logout clears both session flags and the cached quiz vibe
func (s *AuthService) Logout(ctx context.Context) error {
	for _, key := range []string{KeyAuthenticated, KeyAdminAuthenticated, KeyVibe} {
		if err := s.store.Delete(ctx, key); err != nil {
			return err
		}
	}

	s.events.Publish(events.AuthChange)
	s.events.Publish(events.AdminAuthChange)
	return nil
}

// AdminLogout clears both session flags
func (s *AuthService) AdminLogout(ctx context.Context) error {
	for _, key := range []string{KeyAdminAuthenticated, KeyAuthenticated} {
		if err := s.store.Delete(ctx, key); err != nil {
			return err
		}
	}

	s.events.Publish(events.AdminAuthChange)
	s.events.Publish(events.AuthChange)
	return nil
}
