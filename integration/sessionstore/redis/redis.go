package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/macgcloud/adminkit/core/auth"
)

var (
	// ErrEmptyConnectionURL is returned when no Redis URL is configured.
	ErrEmptyConnectionURL = errors.New("empty redis connection URL")
	// ErrParseConnString is returned for malformed Redis URLs.
	ErrParseConnString = errors.New("failed to parse redis connection string")
	// ErrConnectFailed is returned when Redis does not answer the
	// connect-time ping.
	ErrConnectFailed = errors.New("failed to connect to redis")
	// ErrCorruptRecord is returned when a stored user record cannot be parsed.
	ErrCorruptRecord = errors.New("stored session record is not valid")
)

// Config holds Redis store configuration.
type Config struct {
	ConnectionURL  string        `env:"SESSION_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	KeyPrefix      string        `env:"SESSION_REDIS_KEY_PREFIX" envDefault:"adminkit:session"`
	TTL            time.Duration `env:"SESSION_REDIS_TTL" envDefault:"0"`
	ConnectTimeout time.Duration `env:"SESSION_REDIS_CONNECT_TIMEOUT" envDefault:"5s"`
}

// Store is a Redis-backed auth.Repository.
type Store struct {
	client goredis.UniversalClient
	prefix string
	ttl    time.Duration
}

// Connect creates a store and verifies connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	opts, err := goredis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrParseConnString, err)
	}

	client := goredis.NewClient(opts)

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Join(ErrConnectFailed, err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient wraps an existing Redis client, for callers that manage
// their own connection pool.
func NewWithClient(client goredis.UniversalClient, cfg Config) *Store {
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "adminkit:session"
	}
	return &Store{client: client, prefix: prefix, ttl: cfg.TTL}
}

func (s *Store) tokenKey() string { return s.prefix + ":token" }
func (s *Store) userKey() string  { return s.prefix + ":user" }

// ReadToken returns the stored token, or "" when none is held.
func (s *Store) ReadToken(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.tokenKey()).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// ReadUser returns the stored user record, nil when none is held, or an
// error when a record exists but does not parse.
func (s *Store) ReadUser(ctx context.Context) (*auth.User, error) {
	raw, err := s.client.Get(ctx, s.userKey()).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user auth.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, errors.Join(ErrCorruptRecord, err)
	}
	return &user, nil
}

// Write persists token and user together under the configured TTL.
func (s *Store) Write(ctx context.Context, token string, user auth.User) error {
	serialized, err := json.Marshal(user)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.tokenKey(), token, s.ttl)
	pipe.Set(ctx, s.userKey(), serialized, s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// Clear removes token and user together.
func (s *Store) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.tokenKey(), s.userKey()).Err()
}

// Close releases the underlying Redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
