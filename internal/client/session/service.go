// Package session owns the authentication lifecycle: login, registration,
// logout, and silent restore of a persisted token at startup. All other
// stores obtain their bearer token through this service.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/booshananamudara/zoura-mobile/internal/client/api"
	"github.com/booshananamudara/zoura-mobile/internal/client/models"
	"github.com/booshananamudara/zoura-mobile/internal/client/state"
	"github.com/booshananamudara/zoura-mobile/internal/common"
	"github.com/booshananamudara/zoura-mobile/internal/logging"
)

// Service caches the current user in memory and the bearer token in the
// state store. It implements api.TokenSource so the transport always reads
// the latest token.
type Service struct {
	api   api.Client
	store state.Store
	log   logging.Logger

	mu        sync.RWMutex
	user      *models.User
	restoring bool
}

var _ api.TokenSource = (*Service)(nil)

func New(apiClient api.Client, store state.Store, log logging.Logger) *Service {
	return &Service{api: apiClient, store: store, log: log}
}

// Token returns the persisted bearer token, or "" when logged out.
func (s *Service) Token(ctx context.Context) (string, error) {
	return s.store.Token(ctx)
}

// User returns the cached profile, or nil when not authenticated.
func (s *Service) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Restoring reports whether the startup restore is still in flight, so
// dependent navigation can wait for session resolution before rendering.
func (s *Service) Restoring() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.restoring
}

func (s *Service) setUser(u *models.User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

func (s *Service) setRestoring(v bool) {
	s.mu.Lock()
	s.restoring = v
	s.mu.Unlock()
}

// Restore checks for a persisted token and, if present, fetches the profile
// to re-establish the session. Every failure is demoted to "logged out":
// the token is cleared and no error reaches the caller, so a stale token
// can never block startup.
func (s *Service) Restore(ctx context.Context) {
	s.setRestoring(true)
	defer s.setRestoring(false)

	token, err := s.store.Token(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to read stored token", "error", err)
		return
	}
	if token == "" {
		return
	}

	if tokenExpired(token) {
		s.log.Info(ctx, "stored token expired, clearing session")
		s.clearToken(ctx)
		return
	}

	user, err := s.api.Profile(ctx)
	if err != nil {
		s.log.Warn(ctx, "session restore failed, clearing token", "error", err)
		s.clearToken(ctx)
		return
	}

	s.setUser(user)
}

// tokenExpired decodes the JWT claims without verifying the signature
// (the client has no key) just to skip the doomed profile round trip when
// the expiry has already passed. Undecodable tokens are left for the
// server to judge.
func tokenExpired(token string) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now())
}

// Login authenticates, persists the returned token, then fetches the
// profile with it. A server rejection surfaces the backend's own message.
func (s *Service) Login(ctx context.Context, email, password string) error {
	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrAuthFailed, authMessage(err))
	}

	if err := s.store.SetToken(ctx, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}

	user, err := s.api.Profile(ctx)
	if err != nil {
		s.clearToken(ctx)
		return fmt.Errorf("fetch profile: %w", err)
	}

	s.setUser(user)
	return nil
}

// Register creates the account and then logs in with the same credentials;
// registration alone does not establish a session.
func (s *Service) Register(ctx context.Context, name, email, password string) error {
	if err := s.api.Register(ctx, name, email, password); err != nil {
		return fmt.Errorf("registration failed: %v", authMessage(err))
	}
	return s.Login(ctx, email, password)
}

// Logout drops the persisted token and cached user. Storage errors are
// logged and swallowed; logout never fails.
func (s *Service) Logout(ctx context.Context) {
	s.clearToken(ctx)
	s.setUser(nil)
}

func (s *Service) clearToken(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn(ctx, "failed to clear stored token", "error", err)
	}
}

// authMessage prefers the server's message field, falling back to the
// underlying error text.
func authMessage(err error) string {
	var serr *api.ServerError
	if errors.As(err, &serr) && serr.Message != "" {
		return serr.Message
	}
	return err.Error()
}
