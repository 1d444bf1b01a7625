package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Memetgms/kitapinceleme/internal/repositories"
	"github.com/Memetgms/kitapinceleme/internal/services"
	"github.com/Memetgms/kitapinceleme/internal/shared"
	"github.com/charmbracelet/log"
)

// AdminRole is the role name gating the admin commands.
const AdminRole = "Admin"

// Store manages the persisted session through the key-value repository.
type Store struct {
	kv     *repositories.KVStore
	api    *services.Client
	logger *log.Logger
	now    func() time.Time
}

// NewStore creates a session store backed by kv, authenticating through api.
func NewStore(kv *repositories.KVStore, api *services.Client, logger *log.Logger) *Store {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Store{
		kv:     kv,
		api:    api,
		logger: logger,
		now:    time.Now,
	}
}

// SetClock overrides the store's clock. Tests use it to exercise expiry.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// TokenSource returns a [services.TokenSource] yielding the current session's
// token, so the API client always sends whatever token is live right now.
func (s *Store) TokenSource() services.TokenSource {
	return func() string {
		return s.Current().Token
	}
}

// Login posts credentials, decodes the returned token's claims and persists
// both the raw token and the derived claims. Any non-2xx response surfaces
// as [shared.ErrAuth] carrying the server's message when one was sent.
func (s *Store) Login(ctx context.Context, email, password string) (Session, error) {
	token, err := s.api.Login(ctx, services.LoginInput{Email: email, Password: password})
	if err != nil {
		if errors.Is(err, shared.ErrAuth) {
			return Session{}, err
		}
		return Session{}, fmt.Errorf("%w: %v", shared.ErrAuth, err)
	}

	claims, err := DecodeClaims(token)
	if err != nil {
		return Session{}, err
	}

	sess := Session{
		Token:    token,
		UserID:   claims.UserID,
		UserName: claims.UserName,
		UserRole: claims.Role,
	}

	if err := s.persist(sess); err != nil {
		return Session{}, err
	}

	s.logger.Debug("session established", "user", sess.UserName, "role", sess.UserRole)
	return sess, nil
}

// Current returns the live session. An absent token yields an anonymous
// session; an expired or undecodable token additionally clears the persisted
// state before returning anonymous.
func (s *Store) Current() Session {
	token, err := s.kv.Get(repositories.KeyAuthToken)
	if err != nil {
		s.logger.Warn("failed to read session", "err", err)
		return Session{}
	}
	if token == "" {
		return Session{}
	}

	claims, err := DecodeClaims(token)
	if err != nil {
		s.logger.Warn("clearing undecodable session token", "err", err)
		s.clear()
		return Session{}
	}

	if claims.Expired(s.now()) {
		s.clear()
		return Session{}
	}

	return Session{
		Token:    token,
		UserID:   claims.UserID,
		UserName: claims.UserName,
		UserRole: claims.Role,
	}
}

// Logout clears the persisted token and claims. The remembered login email
// survives a logout.
func (s *Store) Logout() error {
	return s.clear()
}

// RequireRole fails unless the current session is authenticated and holds
// the given role. Commands guarding admin surfaces abort on the error.
func (s *Store) RequireRole(role string) error {
	sess := s.Current()
	if sess.Anonymous() {
		return fmt.Errorf("%w: login required", shared.ErrNotLoggedIn)
	}
	if sess.UserRole != role {
		return fmt.Errorf("%w: %s role required", shared.ErrForbidden, role)
	}
	return nil
}

// RememberUser stores the login email for pre-filling the next login.
func (s *Store) RememberUser(email string) error {
	return s.kv.Set(repositories.KeyRememberedUser, email)
}

// RememberedUser returns the stored login email, or "" when none is stored.
func (s *Store) RememberedUser() string {
	email, err := s.kv.Get(repositories.KeyRememberedUser)
	if err != nil {
		s.logger.Warn("failed to read remembered user", "err", err)
		return ""
	}
	return email
}

// ForgetUser removes the stored login email.
func (s *Store) ForgetUser() error {
	return s.kv.Delete(repositories.KeyRememberedUser)
}

func (s *Store) persist(sess Session) error {
	if err := s.kv.Set(repositories.KeyAuthToken, sess.Token); err != nil {
		return err
	}

	info, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode user info: %w", err)
	}
	return s.kv.Set(repositories.KeyUserInfo, string(info))
}

func (s *Store) clear() error {
	if err := s.kv.Delete(repositories.KeyAuthToken); err != nil {
		return err
	}
	return s.kv.Delete(repositories.KeyUserInfo)
}
