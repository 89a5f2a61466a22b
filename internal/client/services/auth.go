// Package services contains application services for the tradedash client.
// This file defines the session manager: login, signup, logout and
// restore-on-start of the authenticated user.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/tradedash/internal/client/client"
	"github.com/dmitrijs2005/tradedash/internal/client/models"
	"github.com/dmitrijs2005/tradedash/internal/common"
	"github.com/dmitrijs2005/tradedash/internal/logging"
)

// State is the session lifecycle state.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateRestoring       State = "restoring"
	StateAuthenticated   State = "authenticated"
)

// SessionManager owns "who is logged in". It is the only writer of the
// session token and the only holder of the authenticated user; the user is
// set iff a token was exchanged for a successful current-user fetch.
//
// Every transition attempt takes a sequence number. Login, signup and
// restore results commit only while their number is still the latest, so a
// logout that lands while a login is in flight wins.
type SessionManager struct {
	api      client.AuthAPI
	tokens   *TokenStore
	notifier Notifier
	logger   logging.Logger
	now      func() time.Time

	mu    sync.RWMutex
	state State
	user  *models.User
	seq   uint64
}

// NewSessionManager wires a session manager. notifier and logger may be nil.
// The manager starts unauthenticated; call Init to restore a stored session.
func NewSessionManager(api client.AuthAPI, tokens *TokenStore, notifier Notifier, logger logging.Logger) *SessionManager {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &SessionManager{
		api:      api,
		tokens:   tokens,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
		state:    StateUnauthenticated,
	}
}

// State reports the current lifecycle state.
func (s *SessionManager) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns the authenticated user, if any.
func (s *SessionManager) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *SessionManager) IsAuthenticated() bool {
	_, ok := s.User()
	return ok
}

// Init restores a stored session. With no stored token the manager stays
// unauthenticated. Otherwise it enters restoring and verifies the token with
// a current-user fetch; on failure the token is deleted. A JWT whose exp is
// already past is dropped without a network call.
//
// An unreadable token row is deleted as well, so a later request cannot pick
// it up while no user is set.
func (s *SessionManager) Init(ctx context.Context) {
	attempt := s.begin()

	token, err := s.tokens.Token(ctx)
	if err != nil {
		s.logger.Warn(ctx, "reading stored token failed", "error", err)
		s.mu.Lock()
		if attempt == s.seq {
			s.resetLocked(ctx)
		}
		s.mu.Unlock()
		return
	}
	if token == "" {
		s.setState(attempt, StateUnauthenticated)
		return
	}
	s.setState(attempt, StateRestoring)

	if exp, ok := client.TokenExpiry(token); ok && !exp.After(s.now()) {
		s.failRestore(ctx, attempt, common.ErrTokenExpired)
		return
	}

	apiUser, err := s.api.CurrentUser(client.WithAccessToken(ctx, token))
	if err != nil {
		s.failRestore(ctx, attempt, err)
		return
	}

	user := apiUser.Projection()
	s.mu.Lock()
	if attempt != s.seq {
		s.mu.Unlock()
		s.logger.Info(ctx, "restore result discarded, session changed meanwhile")
		return
	}
	s.state = StateAuthenticated
	s.user = &user
	s.mu.Unlock()

	s.logger.Info(ctx, "session restored", "user_id", user.ID)
	s.notify(ctx, Notification{
		Kind:        EventSessionRestored,
		Title:       "Session restored",
		Description: fmt.Sprintf("Signed in as %s.", user.Email),
		Variant:     VariantDefault,
		State:       StateAuthenticated,
	})
}

func (s *SessionManager) failRestore(ctx context.Context, attempt uint64, cause error) {
	s.mu.Lock()
	if attempt != s.seq {
		s.mu.Unlock()
		return
	}
	s.resetLocked(ctx)
	s.mu.Unlock()

	s.logger.Info(ctx, "stored session rejected", "reason", cause)
	s.notify(ctx, Notification{
		Kind:        EventSessionExpired,
		Title:       "Session expired",
		Description: "Please log in again.",
		Variant:     VariantDefault,
		State:       StateUnauthenticated,
	})
}

// Login exchanges credentials for a token, fetches the current user with it
// and only then persists the token. On any failure nothing is written, a
// failure notification is emitted and the error is returned. If the session
// changed while the call was in flight, common.ErrSuperseded is returned and
// nothing is committed.
func (s *SessionManager) Login(ctx context.Context, email, password string) error {
	return s.login(ctx, s.begin(), email, password)
}

func (s *SessionManager) login(ctx context.Context, attempt uint64, email, password string) error {
	apiUser, token, err := s.authenticate(ctx, email, password)
	if err == nil {
		err = s.commit(ctx, attempt, token, apiUser.Projection())
	}
	if errors.Is(err, common.ErrSuperseded) {
		s.logger.Info(ctx, "login result discarded, session changed meanwhile")
		return err
	}
	if err != nil {
		s.logger.Warn(ctx, "login failed", "error", err)
		s.settleRestore(ctx, attempt)
		s.notify(ctx, Notification{
			Kind:        EventLoginFailed,
			Title:       "Login failed",
			Description: describe(err, "Invalid credentials"),
			Variant:     VariantDestructive,
			State:       s.State(),
		})
		return err
	}

	s.logger.Info(ctx, "logged in", "user_id", apiUser.ID)
	s.notify(ctx, Notification{
		Kind:        EventLoginSucceeded,
		Title:       "Login successful!",
		Description: fmt.Sprintf("Welcome back, %s!", apiUser.Username),
		Variant:     VariantDefault,
		State:       StateAuthenticated,
	})
	return nil
}

func (s *SessionManager) authenticate(ctx context.Context, email, password string) (models.APIUser, string, error) {
	tok, err := s.api.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return models.APIUser{}, "", err
	}
	if exp, ok := client.TokenExpiry(tok.AccessToken); ok {
		s.logger.Debug(ctx, "access token issued", "expires_at", exp)
	}

	apiUser, err := s.api.CurrentUser(client.WithAccessToken(ctx, tok.AccessToken))
	if err != nil {
		return models.APIUser{}, "", err
	}
	return apiUser, tok.AccessToken, nil
}

func (s *SessionManager) commit(ctx context.Context, attempt uint64, token string, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if attempt != s.seq {
		return common.ErrSuperseded
	}
	if err := s.tokens.save(ctx, token); err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}
	s.state = StateAuthenticated
	s.user = &user
	return nil
}

// Signup registers an account (username = local part of email) and then
// logs in with the same credentials. A failed registration makes no login
// attempt.
func (s *SessionManager) Signup(ctx context.Context, email, password, displayName string) error {
	attempt := s.begin()

	req := models.RegisterRequest{
		Email:    email,
		Username: common.UsernameFromEmail(email),
		Password: password,
		FullName: displayName,
	}
	if _, err := s.api.Register(ctx, req); err != nil {
		s.logger.Warn(ctx, "registration failed", "error", err)
		s.settleRestore(ctx, attempt)
		s.notify(ctx, Notification{
			Kind:        EventSignupFailed,
			Title:       "Registration failed",
			Description: describe(err, "Could not create account"),
			Variant:     VariantDestructive,
			State:       s.State(),
		})
		return err
	}

	s.notify(ctx, Notification{
		Kind:        EventSignupSucceeded,
		Title:       "Registration successful!",
		Description: "Please login with your credentials.",
		Variant:     VariantDefault,
		State:       s.State(),
	})

	return s.login(ctx, attempt, email, password)
}

// Logout drops the token and the user unconditionally. Storage errors are
// logged; the in-memory session is cleared regardless.
func (s *SessionManager) Logout(ctx context.Context) {
	s.mu.Lock()
	s.seq++
	s.resetLocked(ctx)
	s.mu.Unlock()

	s.logger.Info(ctx, "logged out")
	s.notify(ctx, Notification{
		Kind:        EventLoggedOut,
		Title:       "Logged out",
		Description: "You have been successfully logged out.",
		Variant:     VariantDefault,
		State:       StateUnauthenticated,
	})
}

// settleRestore ends a restore that attempt superseded. The restore drops
// its own result once it is stale, so if attempt fails without committing,
// the unverified token would otherwise stay stored while the state stays
// restoring.
func (s *SessionManager) settleRestore(ctx context.Context, attempt uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if attempt != s.seq || s.state != StateRestoring {
		return
	}
	s.logger.Info(ctx, "dropping unverified token left by an interrupted restore")
	s.resetLocked(ctx)
}

// resetLocked deletes the stored token and the user. s.mu must be held.
// Storage errors are logged; the in-memory session is cleared regardless.
func (s *SessionManager) resetLocked(ctx context.Context) {
	if err := s.tokens.clear(context.WithoutCancel(ctx)); err != nil {
		s.logger.Error(ctx, "clearing stored token failed", "error", err)
	}
	s.state = StateUnauthenticated
	s.user = nil
}

func (s *SessionManager) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

func (s *SessionManager) setState(attempt uint64, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if attempt == s.seq {
		s.state = state
	}
}

func (s *SessionManager) notify(ctx context.Context, n Notification) {
	n.At = s.now()
	s.notifier.Notify(ctx, n)
}

// describe picks the message shown to the user. Only APIErrors are trusted
// to carry user-facing text.
func describe(err error, fallback string) string {
	if apiErr, ok := client.AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
