// internal/auth/service.go
// Service layer for mock email/password accounts and sessions

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/imadgeboyega/soulconnect-backend/internal/common/utils"
)

// Errors surfaced to users keep the wording of the sign-in screen.
var (
	ErrAccountNotFound = errors.New("Account not found. Please sign up first.")
	ErrInvalidPassword = errors.New("Invalid password. Please try again.")
	ErrAccountExists   = errors.New("An account with this email already exists. Please sign in instead.")
	ErrInvalidSession  = errors.New("invalid or expired session")
)

// Demo account
const (
	DemoEmail    = "demo@soulconnect.com"
	DemoPassword = "demo123"
	DemoUserID   = "1"
	DemoName     = "Alex Johnson"
)

const (
	userKeyPrefix     = "soulconnect_user:"
	passwordKeyPrefix = "password_"
	sessionKeyPrefix  = "soulconnect_session:"
)

func userKey(email string) string { return userKeyPrefix + email }
func passwordKey(email string) string { return passwordKeyPrefix + email }
func sessionKey(sessionID string) string { return sessionKeyPrefix + sessionID }

// Service is the session collaborator used by handlers and middleware.
type Service interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password, name string) (*Session, error)
	SignOut(ctx context.Context, token string) error
	CurrentSession(ctx context.Context, token string) (*AuthUser, error)
}

// Config holds service configuration
type Config struct {
	JWTSecret     string
	BCryptCost    int
	SessionExpiry time.Duration
}

// AccountService implements Service on top of a Store.
type AccountService struct {
	store  Store
	config *Config
	logger *slog.Logger
	now    func() time.Time
}

func NewService(store Store, config *Config, logger *slog.Logger) *AccountService {
	return &AccountService{
		store:  store,
		config: config,
		logger: logger,
		now:    time.Now,
	}
}

// SeedDemoAccount registers the demo account unless it already exists.
func (s *AccountService) SeedDemoAccount(ctx context.Context) error {
	user := &AuthUser{
		ID:        DemoUserID,
		Email:     DemoEmail,
		Name:      DemoName,
		CreatedAt: s.now().UTC(),
	}
	created, err := s.createAccount(ctx, user, DemoPassword)
	if err != nil {
		return fmt.Errorf("seed demo account: %w", err)
	}
	if created {
		s.logger.Info("demo account seeded", "email", DemoEmail)
	}
	return nil
}

func (s *AccountService) SignIn(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)

	user, err := s.loadUser(ctx, userKey(email))
	if errors.Is(err, ErrKeyNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	hash, err := s.store.Get(ctx, passwordKey(email))
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, ErrInvalidPassword
		}
		return nil, fmt.Errorf("load password: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}

	return s.createSession(ctx, user)
}

func (s *AccountService) SignUp(ctx context.Context, email, password, name string) (*Session, error) {
	user := &AuthUser{
		ID:        "user_" + uuid.NewString(),
		Email:     normalizeEmail(email),
		Name:      strings.TrimSpace(name),
		CreatedAt: s.now().UTC(),
	}

	created, err := s.createAccount(ctx, user, password)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrAccountExists
	}

	s.logger.Info("account created", "user_id", user.ID)
	return s.createSession(ctx, user)
}

func (s *AccountService) SignOut(ctx context.Context, token string) error {
	claims, err := utils.ValidateJWT(token, s.config.JWTSecret)
	if err != nil {
		return ErrInvalidSession
	}
	if err := s.store.Delete(ctx, sessionKey(claims.SessionID)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// CurrentSession resolves a token to its user. Tokens of signed-out
// sessions are rejected even before they expire.
func (s *AccountService) CurrentSession(ctx context.Context, token string) (*AuthUser, error) {
	claims, err := utils.ValidateJWT(token, s.config.JWTSecret)
	if err != nil {
		return nil, ErrInvalidSession
	}

	user, err := s.loadUser(ctx, sessionKey(claims.SessionID))
	if errors.Is(err, ErrKeyNotFound) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, err
	}
	if user.ID != claims.UserID {
		return nil, ErrInvalidSession
	}
	return user, nil
}

// createAccount stores the user record and then the password hash. It
// reports false without writing anything when the email is taken. A failed
// hash write removes the user record again so the email stays usable.
func (s *AccountService) createAccount(ctx context.Context, user *AuthUser, password string) (bool, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.config.BCryptCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	data, err := json.Marshal(user)
	if err != nil {
		return false, err
	}

	created, err := s.store.SetIfAbsent(ctx, userKey(user.Email), string(data), 0)
	if err != nil {
		return false, fmt.Errorf("store user: %w", err)
	}
	if !created {
		return false, nil
	}

	if err := s.store.Set(ctx, passwordKey(user.Email), string(hash), 0); err != nil {
		if delErr := s.store.Delete(ctx, userKey(user.Email)); delErr != nil {
			s.logger.Error("failed to roll back user record",
				"email", user.Email, "error", delErr)
		}
		return false, fmt.Errorf("store password: %w", err)
	}
	return true, nil
}

func (s *AccountService) createSession(ctx context.Context, user *AuthUser) (*Session, error) {
	now := s.now()
	session := &Session{
		ID:        uuid.NewString(),
		User:      user,
		ExpiresAt: now.Add(s.config.SessionExpiry),
	}

	token, err := utils.GenerateJWT(&utils.SessionClaims{
		UserID:    user.ID,
		SessionID: session.ID,
		Email:     user.Email,
		IssuedAt:  now,
		ExpiresAt: session.ExpiresAt,
	}, s.config.JWTSecret)
	if err != nil {
		return nil, err
	}
	session.Token = token

	data, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, sessionKey(session.ID), string(data), s.config.SessionExpiry); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return session, nil
}

func (s *AccountService) loadUser(ctx context.Context, key string) (*AuthUser, error) {
	data, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	var user AuthUser
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return &user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
