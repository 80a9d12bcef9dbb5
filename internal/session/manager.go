// Package session tracks who is logged in on behalf of a client and keeps
// that state durable across restarts.
package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/yu-shop/storefront-api/internal/core/domain"
	"github.com/yu-shop/storefront-api/internal/core/ports"
	"github.com/yu-shop/storefront-api/pkg/apiclient"
)

const (
	loginFailedMessage      = "登入失敗，請檢查帳號密碼"
	adminLoginFailedMessage = "管理員登入失敗，請檢查帳號密碼"
)

// Manager owns the auth state. All transitions replace the state wholesale
// and persist it before the in-memory copy changes, so a crash between the
// two can only lose the newest transition, never corrupt the stored one.
type Manager struct {
	api   *apiclient.Client
	store ports.SessionStore
	log   zerolog.Logger

	mu          sync.RWMutex
	state       domain.AuthState
	initialized bool
}

func NewManager(api *apiclient.Client, store ports.SessionStore, log zerolog.Logger) *Manager {
	return &Manager{
		api:   api,
		store: store,
		log:   log,
		state: domain.LoggedOut(),
	}
}

// Initialize rehydrates the auth state from storage. Unreadable state is
// discarded rather than propagated: the session falls back to logged out.
func (m *Manager) Initialize() {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.store.Load()
	switch {
	case err != nil:
		m.log.Warn().Err(err).Msg("stored auth state unreadable, resetting")
		_ = m.store.Clear()
		m.state = domain.LoggedOut()
	case state == nil:
		m.state = domain.LoggedOut()
	default:
		m.state = *state
	}
	m.initialized = true
}

// Initialized reports whether rehydration has completed. Callers should not
// trust State before this returns true.
func (m *Manager) Initialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// State returns a copy of the current auth state.
func (m *Manager) State() domain.AuthState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *Manager) IsMember() bool {
	s := m.State()
	return s.IsLoggedIn && s.UserType != nil && *s.UserType == domain.UserTypeMember
}

func (m *Manager) IsAdmin() bool {
	s := m.State()
	return s.IsLoggedIn && s.UserType != nil && *s.UserType == domain.UserTypeAdmin
}

// Login authenticates a member. Success requires both a 200 code and a
// non-null payload; either alone is a failure. Fields the backend omits fall
// back to the request-supplied email.
func (m *Manager) Login(ctx context.Context, email, password string) (bool, string) {
	resp := m.api.Post(ctx, "/member/login", map[string]string{
		"email":    email,
		"password": password,
	})

	if resp.Code != 200 || resp.Data == nil {
		return false, failureMessage(resp.Message, loginFailedMessage)
	}

	user := memberFromPayload(resp.Data)
	if user.Name == "" {
		user.Name = email
	}
	if user.Email == "" {
		user.Email = email
	}

	if err := m.commit(domain.LoggedInAs(user, domain.UserTypeMember)); err != nil {
		m.log.Error().Err(err).Msg("persisting auth state failed")
		return false, loginFailedMessage
	}
	return true, resp.Message
}

// AdminLogin authenticates a back-office account. The admin payload carries
// no email, so the account doubles as one for display purposes.
func (m *Manager) AdminLogin(ctx context.Context, account, password string) (bool, string) {
	resp := m.api.Post(ctx, "/user/users/login", map[string]string{
		"account":  account,
		"password": password,
	})

	if resp.Code != 200 || resp.Data == nil {
		return false, failureMessage(resp.Message, adminLoginFailedMessage)
	}

	user := adminFromPayload(resp.Data)
	if user.Name == "" {
		user.Name = account
	}
	if user.Email == "" {
		user.Email = account
	}

	if err := m.commit(domain.LoggedInAs(user, domain.UserTypeAdmin)); err != nil {
		m.log.Error().Err(err).Msg("persisting auth state failed")
		return false, adminLoginFailedMessage
	}
	return true, resp.Message
}

// Register creates a member account. It never logs the member in; the client
// is expected to follow up with Login.
func (m *Manager) Register(ctx context.Context, name, email, password, phone, address string) (bool, string) {
	resp := m.api.Post(ctx, "/member", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"phone":    phone,
		"address":  address,
	})
	return resp.Code == 200 || resp.Code == 201, resp.Message
}

// Logout resets to the logged-out state and clears storage.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Clear(); err != nil {
		m.log.Warn().Err(err).Msg("clearing auth state failed")
	}
	m.state = domain.LoggedOut()
}

// commit persists the new state, then swaps it in. Storage failure leaves the
// in-memory state untouched.
func (m *Manager) commit(state domain.AuthState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Save(state); err != nil {
		return err
	}
	m.state = state
	return nil
}

func failureMessage(got, fallback string) string {
	if got != "" {
		return got
	}
	return fallback
}

// memberFromPayload reads a member out of a decoded JSON object. Unknown
// shapes produce a zero member rather than an error.
func memberFromPayload(data any) *domain.Member {
	obj, _ := data.(map[string]any)
	return &domain.Member{
		MemberID: intField(obj, "member_id"),
		Name:     strField(obj, "name"),
		Email:    strField(obj, "email"),
		Phone:    strField(obj, "phone"),
		Address:  strField(obj, "address"),
		CreateAt: strField(obj, "create_at"),
	}
}

func adminFromPayload(data any) *domain.Member {
	obj, _ := data.(map[string]any)
	return &domain.Member{
		MemberID: intField(obj, "userId"),
		Name:     strField(obj, "name"),
	}
}

func strField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

func intField(obj map[string]any, key string) int {
	// encoding/json decodes numbers into float64 behind an any.
	f, _ := obj[key].(float64)
	return int(f)
}
