// Package session holds the authenticated identity for the running
// process. The identity and bearer token are the only state shared across
// pages; they are written by Login/Signup/Logout and read everywhere else
// through the token provider.
package session

import (
	"context"
	"errors"
	"sync"

	"salesdash/internal/erp"
	"salesdash/internal/logging"
)

// Identity is the authenticated user as shown in the UI.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session pairs an identity with its opaque credential.
type Session struct {
	User  Identity `json:"user"`
	Token string   `json:"token"`
}

// Manager owns the session lifecycle: restore on start, login/signup,
// best-effort logout. Construct it, then hand Manager.Token to erp.New and
// attach the resulting client.
type Manager struct {
	mu      sync.RWMutex
	store   *Store
	client  *erp.Client
	current *Session
}

// NewManager creates a manager backed by the given store.
func NewManager(store *Store) *Manager {
	return &Manager{store: store}
}

// AttachClient wires the API client used for remote auth calls. Separate
// from the constructor because the client itself needs Manager.Token.
func (m *Manager) AttachClient(client *erp.Client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.client = client
}

// Restore reloads a previously persisted session, if any. The credential
// is not re-validated; it is trusted until the remote rejects it.
func (m *Manager) Restore() {
	sess, err := m.store.Load()
	if err != nil {
		logging.SessionWarn("restore failed: %v", err)
		return
	}
	if sess == nil {
		return
	}
	m.mu.Lock()
	m.current = sess
	m.mu.Unlock()
	logging.Session("restored session for %s", sess.User.Email)
}

// Current returns the active session, or nil when logged out.
func (m *Manager) Current() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// LoggedIn reports whether an identity is held.
func (m *Manager) LoggedIn() bool {
	return m.Current() != nil
}

// Token is an erp.TokenProvider over the current session.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return ""
	}
	return m.current.Token
}

// Login authenticates and persists the resulting session. The remote's
// failure detail is logged but not surfaced: callers get a fixed
// "invalid email or password". (Signup keeps the remote message; the
// difference is deliberate and matches the remote's existing clients.)
func (m *Manager) Login(ctx context.Context, email, password string) error {
	resp, err := m.client.Login(ctx, email, password)
	if err != nil {
		var authErr *erp.AuthError
		if errors.As(err, &authErr) {
			logging.SessionWarn("login rejected for %s: %s", email, authErr.RemoteMessage)
		}
		return &erp.AuthError{Message: "invalid email or password"}
	}
	m.install(resp)
	logging.Session("logged in as %s", resp.User.Email)
	return nil
}

// Signup registers a new account and behaves like Login on success. On
// failure the remote-supplied message is passed through when present.
func (m *Manager) Signup(ctx context.Context, name, email, password, role string) error {
	resp, err := m.client.Register(ctx, name, email, password, role)
	if err != nil {
		return err
	}
	m.install(resp)
	logging.Session("registered and logged in as %s", resp.User.Email)
	return nil
}

// Logout notifies the remote, then clears local state no matter what the
// remote said.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.client.Logout(ctx); err != nil {
		logging.SessionWarn("remote logout failed (clearing local state anyway): %v", err)
	}

	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	if err := m.store.Clear(); err != nil {
		logging.SessionError("clear persisted session: %v", err)
	}
	logging.Session("logged out")
}

func (m *Manager) install(resp erp.AuthResponse) {
	sess := &Session{
		User: Identity{
			Name:  resp.User.Name,
			Email: resp.User.Email,
			Role:  resp.User.Role,
		},
		Token: resp.Token,
	}

	m.mu.Lock()
	m.current = sess
	m.mu.Unlock()

	if err := m.store.Save(sess); err != nil {
		logging.SessionError("persist session: %v", err)
	}
}
