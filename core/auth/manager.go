package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/macgcloud/adminkit/core/logger"
)

// Manager drives session transitions and owns the in-memory snapshot.
// All methods are safe for concurrent use; the persisted store is the
// source of truth shared with the transport layer.
type Manager struct {
	repo          Repository
	authenticator Authenticator
	log           *slog.Logger

	mu      sync.Mutex
	token   string
	user    *User
	status  Status
	loading bool
	errMsg  string
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger used for transition logging.
func WithLogger(log *slog.Logger) ManagerOption {
	return func(m *Manager) {
		m.log = log
	}
}

// NewManager creates a session manager over the given store and
// authenticator. The manager starts Anonymous; call Restore to hydrate
// from a previously persisted session.
func NewManager(repo Repository, authenticator Authenticator, opts ...ManagerOption) *Manager {
	m := &Manager{
		repo:          repo,
		authenticator: authenticator,
		log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		status:        StatusAnonymous,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Session returns a snapshot of the current state.
func (m *Manager) Session() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Session{
		Token:   m.token,
		User:    m.user,
		Status:  m.status,
		Loading: m.loading,
		Err:     m.errMsg,
	}
}

// Login exchanges credentials for a token, persists the session, and
// transitions to Authenticated. A success response without a token is a
// failed login (ErrMissingToken) and persists nothing. Any failure
// leaves the machine Anonymous with the error message recorded for
// display.
func (m *Manager) Login(ctx context.Context, creds Credentials) (Session, error) {
	m.begin()

	token, err := m.authenticator.Authenticate(ctx, creds)
	if err != nil {
		m.log.Warn("login failed",
			logger.Component("auth"),
			slog.String("username", creds.Username),
			logger.Error(err))
		return m.fail(err)
	}
	if token == "" {
		m.log.Warn("login response carried no token",
			logger.Component("auth"),
			slog.String("username", creds.Username))
		return m.fail(ErrMissingToken)
	}

	user := User{Username: creds.Username, Token: token}
	if err := m.repo.Write(ctx, token, user); err != nil {
		m.log.Error("failed to persist session",
			logger.Component("auth"),
			logger.Error(err))
		return m.fail(err)
	}

	m.log.Info("login succeeded",
		logger.Component("auth"),
		slog.String("username", creds.Username))
	return m.succeed(token, user), nil
}

// Logout clears the persisted session and transitions to Anonymous.
// It is idempotent and never fails from the caller's point of view;
// storage-clear errors are logged only.
func (m *Manager) Logout(ctx context.Context) Session {
	m.begin()

	if err := m.repo.Clear(ctx); err != nil {
		m.log.Error("failed to clear session store on logout",
			logger.Component("auth"),
			logger.Error(err))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.user = nil
	m.status = StatusAnonymous
	m.loading = false
	m.errMsg = ""
	return m.snapshotLocked()
}

// Restore rehydrates the session from the persisted store without a
// network round-trip. A missing token or user record yields
// ErrNoSession; an unreadable record yields ErrCorruptSession. Both
// clear the store and leave the machine Anonymous.
func (m *Manager) Restore(ctx context.Context) (Session, error) {
	m.begin()

	token, err := m.repo.ReadToken(ctx)
	if err != nil {
		return m.failRestore(ctx, errors.Join(ErrCorruptSession, err))
	}

	user, err := m.repo.ReadUser(ctx)
	if err != nil {
		return m.failRestore(ctx, errors.Join(ErrCorruptSession, err))
	}

	if token == "" || user == nil {
		return m.failRestore(ctx, ErrNoSession)
	}

	m.log.Info("session restored",
		logger.Component("auth"),
		slog.String("username", user.Username))
	return m.succeed(token, *user), nil
}

func (m *Manager) begin() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = StatusAuthenticating
	m.loading = true
	m.errMsg = ""
}

func (m *Manager) succeed(token string, user User) Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.user = &user
	m.status = StatusAuthenticated
	m.loading = false
	m.errMsg = ""
	return m.snapshotLocked()
}

// fail settles a transition into Anonymous with no partial state.
func (m *Manager) fail(err error) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.user = nil
	m.status = StatusAnonymous
	m.loading = false
	m.errMsg = err.Error()
	return m.snapshotLocked(), err
}

func (m *Manager) failRestore(ctx context.Context, err error) (Session, error) {
	if clearErr := m.repo.Clear(ctx); clearErr != nil {
		m.log.Error("failed to clear session store after restore failure",
			logger.Component("auth"),
			logger.Error(clearErr))
	}
	m.log.Warn("session restore failed",
		logger.Component("auth"),
		logger.Error(err))
	return m.fail(err)
}

func (m *Manager) snapshotLocked() Session {
	return Session{
		Token:   m.token,
		User:    m.user,
		Status:  m.status,
		Loading: m.loading,
		Err:     m.errMsg,
	}
}
