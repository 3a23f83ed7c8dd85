package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"chargili/internal/config"
	apperrors "chargili/internal/errors"
	"chargili/internal/logger"
	"chargili/internal/models"
	"chargili/internal/repositories"
)

// LegacyUser is the identity given to every restored session in legacy mode.
var LegacyUser = models.User{Email: "admin@example.com", Role: models.RoleAdmin}

// UserFetcher resolves the operator behind the token carried by ctx.
type UserFetcher interface {
	CurrentUser(ctx context.Context) (*models.User, error)
}

// EndFunc is called with the id of a session that logged out or expired.
type EndFunc func(sid string)

type Manager struct {
	store repositories.TokenStore
	users UserFetcher
	mode  string
	log   *logger.Logger
	now   func() time.Time

	mu    sync.RWMutex
	onEnd []EndFunc
}

func NewManager(store repositories.TokenStore, users UserFetcher, mode string, log *logger.Logger) *Manager {
	if mode == "" {
		mode = config.RestoreModeFetch
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Manager{store: store, users: users, mode: mode, log: log, now: time.Now}
}

// OnEnd subscribes fn to logouts and expirations.
func (m *Manager) OnEnd(fn EndFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onEnd = append(m.onEnd, fn)
}

func (m *Manager) ended(sid string) {
	m.mu.RLock()
	subscribers := append([]EndFunc(nil), m.onEnd...)
	m.mu.RUnlock()
	for _, fn := range subscribers {
		fn(sid)
	}
}

// Restore rebuilds the session sid from the token store. A missing or
// expired token yields an anonymous state.
func (m *Manager) Restore(ctx context.Context, sid string) (*State, error) {
	state := NewState(sid)
	if sid == "" {
		return state, nil
	}

	token, err := m.store.Token(ctx, sid)
	if err != nil {
		return state, fmt.Errorf("read session token: %w", err)
	}
	if token == "" {
		// The token is gone from the store (logout elsewhere or TTL), so
		// anything still held for sid is stale.
		m.ended(sid)
		return state, nil
	}
	if Expired(token, m.now()) {
		m.log.Infow("stored token expired", "sid", sid)
		m.discard(ctx, sid)
		return state, nil
	}

	user, err := m.identity(ctx, sid, token)
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			m.log.Infow("stored token rejected by the API", "sid", sid)
			m.discard(ctx, sid)
			return state, nil
		}
		return state, err
	}

	state.Restore(token, user)
	return state, nil
}

// discard deletes the stored token of sid and ends the session.
func (m *Manager) discard(ctx context.Context, sid string) {
	if err := m.store.Delete(ctx, sid); err != nil {
		m.log.Warnw("delete session token", "sid", sid, "error", err)
	}
	m.ended(sid)
}

func (m *Manager) identity(ctx context.Context, sid, token string) (*models.User, error) {
	if m.mode == config.RestoreModeLegacy {
		user := LegacyUser
		return &user, nil
	}

	user, err := m.store.User(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("read session user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	pending := NewState(sid)
	pending.Token = token
	user, err = m.users.CurrentUser(WithState(ctx, pending))
	if err != nil {
		return nil, err
	}
	if err := m.store.SaveUser(ctx, sid, user); err != nil {
		m.log.Warnw("cache session user", "sid", sid, "error", err)
	}
	return user, nil
}

// Login persists a successful sign-in under sid and updates state.
func (m *Manager) Login(ctx context.Context, state *State, token string, user *models.User) error {
	if err := m.store.SaveToken(ctx, state.ID, token); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}
	if err := m.store.SaveUser(ctx, state.ID, user); err != nil {
		return fmt.Errorf("save session user: %w", err)
	}
	state.LoginSuccess(token, user)
	m.log.Infow("operator signed in", "email", user.Email, "role", user.Role)
	return nil
}

// ReplaceToken stores a refreshed token for an authenticated session.
func (m *Manager) ReplaceToken(ctx context.Context, state *State, token string) error {
	if err := m.store.SaveToken(ctx, state.ID, token); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}
	state.Token = token
	return nil
}

// Logout drops the stored token and identity of state.
func (m *Manager) Logout(ctx context.Context, state *State) error {
	sid := state.ID
	state.Logout()
	if sid == "" {
		return nil
	}
	err := m.store.Delete(ctx, sid)
	m.ended(sid)
	return err
}

// Expire handles a 401 from the API for the session carried by ctx.
func (m *Manager) Expire(ctx context.Context) {
	state := FromContext(ctx)
	if state == nil || state.ID == "" {
		return
	}
	sid := state.ID
	state.Expire()

	if err := m.store.Delete(context.WithoutCancel(ctx), sid); err != nil {
		m.log.Errorw("clear expired session", "sid", sid, "error", err)
	}
	m.log.Infow("session expired", "sid", sid)
	m.ended(sid)
}
