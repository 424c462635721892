package file

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/macgcloud/adminkit/core/auth"
)

var (
	// ErrStorePath is returned when no usable store location can be determined.
	ErrStorePath = errors.New("failed to resolve session store path")
	// ErrReadStore is returned when the store file exists but cannot be read.
	ErrReadStore = errors.New("failed to read session store")
	// ErrWriteStore is returned when persisting the session fails.
	ErrWriteStore = errors.New("failed to write session store")
	// ErrCorruptRecord is returned when a stored record cannot be parsed.
	ErrCorruptRecord = errors.New("stored session record is not valid")
)

// Config holds the store location.
type Config struct {
	// Path of the session file. Defaults to
	// <user config dir>/adminkit/session.json.
	Path string `env:"SESSION_FILE_PATH"`
}

// record mirrors the two persisted keys. User holds the serialized
// user document, kept as a string so a corrupt record is detected at
// read time exactly like a bad local-storage value.
type record struct {
	Token string `json:"token,omitempty"`
	User  string `json:"user,omitempty"`
}

// Store is a file-backed auth.Repository.
type Store struct {
	path string
	mu   sync.Mutex
}

// New creates a file store at the configured or default location.
func New(cfg Config) (*Store, error) {
	path := cfg.Path
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, errors.Join(ErrStorePath, err)
		}
		path = filepath.Join(dir, "adminkit", "session.json")
	}
	return &Store{path: path}, nil
}

// ReadToken returns the stored token, or "" when no session is persisted.
func (s *Store) ReadToken(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.read()
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", nil
	}
	return rec.Token, nil
}

// ReadUser returns the stored user record, nil when no session is
// persisted, or an error when a record exists but does not parse.
func (s *Store) ReadUser(_ context.Context) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.read()
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.User == "" {
		return nil, nil
	}

	var user auth.User
	if err := json.Unmarshal([]byte(rec.User), &user); err != nil {
		return nil, errors.Join(ErrCorruptRecord, err)
	}
	return &user, nil
}

// Write persists token and user together.
func (s *Store) Write(_ context.Context, token string, user auth.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	serialized, err := json.Marshal(user)
	if err != nil {
		return errors.Join(ErrWriteStore, err)
	}

	buf, err := json.Marshal(record{Token: token, User: string(serialized)})
	if err != nil {
		return errors.Join(ErrWriteStore, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Join(ErrWriteStore, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o600); err != nil {
		return errors.Join(ErrWriteStore, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Join(ErrWriteStore, err)
	}
	return nil
}

// Clear removes the persisted session. Clearing an absent session is a
// no-op.
func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Join(ErrWriteStore, err)
	}
	return nil
}

// read loads the record, returning nil when no file exists. A file that
// is not valid JSON is reported as corrupt rather than absent.
func (s *Store) read() (*record, error) {
	buf, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrReadStore, err)
	}

	var rec record
	if err := json.Unmarshal(buf, &rec); err != nil {
		return nil, errors.Join(ErrCorruptRecord, err)
	}
	return &rec, nil
}
