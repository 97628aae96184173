// Package session tracks the single signed-in principal of the process.
package session

import (
	"encoding/json"
	"log/slog"
	"sync"

	"shopdata/pkg/domain"
	"shopdata/pkg/env"
	"shopdata/pkg/storage"
)

// Key is the backend key holding the serialized AuthUser.
const Key = "auth_user"

// Route targets used by the guards.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// Navigator performs a one-way redirect to a route path.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

type Option func(*Holder)

// WithLogger sets the logger used for swallowed storage failures.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Holder) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// Holder keeps at most one current user. It does not consult the user
// collection, so it may reference a user that no longer exists.
type Holder struct {
	mu      sync.RWMutex
	backend storage.Backend
	env     env.Environment
	nav     Navigator
	logger  *slog.Logger
	current *domain.AuthUser
}

// New builds a holder with no current user. Call Restore to pick up a
// persisted session. A nil environment probes the backend directly.
func New(backend storage.Backend, environment env.Environment, nav Navigator, opts ...Option) *Holder {
	if environment == nil {
		environment = env.Probe{Backend: backend}
	}
	h := &Holder{
		backend: backend,
		env:     environment,
		nav:     nav,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Restore loads the persisted session. Unreadable data means no session.
func (h *Holder) Restore() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = nil
	if !h.storageReady() {
		return
	}
	raw, ok, err := h.backend.Get(Key)
	if err != nil {
		h.logger.Error("read session from storage failed", "key", Key, "err", err)
		return
	}
	if !ok {
		return
	}
	var u *domain.AuthUser
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		h.logger.Error("parse stored session failed", "key", Key, "err", err)
		return
	}
	h.current = u
}

// Login replaces the current user and persists it. Credentials must have
// been checked by the caller.
func (h *Holder) Login(u domain.AuthUser) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = &u
	if !h.storageReady() {
		return
	}
	data, err := json.Marshal(u)
	if err != nil {
		h.logger.Error("encode session failed", "err", err)
		return
	}
	if err := h.backend.Set(Key, string(data)); err != nil {
		h.logger.Error("save session to storage failed", "key", Key, "err", err)
	}
}

// Logout clears the current user, drops the persisted session and redirects
// to the login view.
func (h *Holder) Logout() {
	h.mu.Lock()
	h.current = nil
	if h.storageReady() {
		if err := h.backend.Remove(Key); err != nil {
			h.logger.Error("remove session from storage failed", "key", Key, "err", err)
		}
	}
	h.mu.Unlock()
	h.navigate(LoginPath)
}

// CurrentUser returns the held user, if any.
func (h *Holder) CurrentUser() (domain.AuthUser, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return domain.AuthUser{}, false
	}
	return *h.current, true
}

// IsAuthenticated reports whether a user is held.
func (h *Holder) IsAuthenticated() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current != nil
}

// IsAdmin reports whether the held user has the admin role.
func (h *Holder) IsAdmin() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current != nil && h.current.Role == domain.RoleAdmin
}

// RequireAuth redirects to the login view when nobody is signed in. It
// reports whether a user is held.
func (h *Holder) RequireAuth() bool {
	if h.IsAuthenticated() {
		return true
	}
	h.navigate(LoginPath)
	return false
}

// RequireAdmin applies RequireAuth, then redirects non-admins to the
// dashboard. An anonymous caller therefore sees both redirects, the
// dashboard one last. It reports whether the held user is an admin.
func (h *Holder) RequireAdmin() bool {
	h.RequireAuth()
	if h.IsAdmin() {
		return true
	}
	h.navigate(DashboardPath)
	return false
}

func (h *Holder) storageReady() bool {
	return h.backend != nil && h.env.StorageAvailable()
}

func (h *Holder) navigate(path string) {
	if h.nav == nil || !h.env.NavigationAvailable() {
		return
	}
	h.nav.Navigate(path)
}
