package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macgcloud/adminkit/core/client"
)

// fakeStore implements TokenSource and SessionInvalidator over plain
// fields so tests can observe the 401 side effect.
type fakeStore struct {
	mu      sync.Mutex
	token   string
	user    string
	readErr error
	cleared bool
}

func (s *fakeStore) ReadToken(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return "", s.readErr
	}
	return s.token, nil
}

func (s *fakeStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = ""
	s.cleared = true
	return nil
}

func (s *fakeStore) snapshot() (string, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.user, s.cleared
}

func newClient(t *testing.T, baseURL string, opts ...client.Option) *client.Client {
	t.Helper()
	c, err := client.New(client.Config{BaseURL: baseURL, Timeout: 5 * time.Second}, opts...)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires base URL", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(client.Config{})
		require.ErrorIs(t, err, client.ErrMissingBaseURL)
	})
}

func TestEnvelopeSuccess(t *testing.T) {
	t.Parallel()

	t.Run("resolves full envelope with payload unchanged", func(t *testing.T) {
		t.Parallel()

		type payload struct {
			Name string `json:"name"`
		}

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"code":200,"message":"ok","data":{"name":"gpt-4"}}`))
		}))
		defer srv.Close()

		env, err := client.Get[payload](context.Background(), newClient(t, srv.URL), "/api/models")
		require.NoError(t, err)
		assert.Equal(t, 200, env.Code)
		assert.Equal(t, "ok", env.Message)
		require.NotNil(t, env.Data)
		assert.Equal(t, "gpt-4", env.Data.Name)
	})

	t.Run("treats 201 as success", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"code":201,"message":"created"}`))
		}))
		defer srv.Close()

		env, err := client.Post[struct{}](context.Background(), newClient(t, srv.URL), "/api/users", map[string]string{"name": "a"})
		require.NoError(t, err)
		assert.Equal(t, 201, env.Code)
		assert.Nil(t, env.Data)
	})
}

func TestEnvelopeFailure(t *testing.T) {
	t.Parallel()

	t.Run("non-success code rejects with envelope message and code", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"code":409,"message":"username already exists"}`))
		}))
		defer srv.Close()

		_, err := client.Get[struct{}](context.Background(), newClient(t, srv.URL), "/api/users")
		require.Error(t, err)

		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 409, apiErr.Code)
		assert.Equal(t, "username already exists", apiErr.Error())
	})

	t.Run("falls back to fixed message when envelope has none", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"code":500,"message":""}`))
		}))
		defer srv.Close()

		_, err := client.Get[struct{}](context.Background(), newClient(t, srv.URL), "/api/users")
		require.Error(t, err)
		assert.Equal(t, "request failed", err.Error())
	})
}

func TestBearerInjection(t *testing.T) {
	t.Parallel()

	t.Run("attaches bearer token from the store", func(t *testing.T) {
		t.Parallel()

		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`{"code":200,"message":"ok"}`))
		}))
		defer srv.Close()

		store := &fakeStore{token: "T"}
		c := newClient(t, srv.URL, client.WithTokenSource(store))

		_, err := client.Get[struct{}](context.Background(), c, "/api/dashboard")
		require.NoError(t, err)
		assert.Equal(t, "Bearer T", gotAuth)
	})

	t.Run("sends no header without a stored token", func(t *testing.T) {
		t.Parallel()

		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`{"code":200,"message":"ok"}`))
		}))
		defer srv.Close()

		c := newClient(t, srv.URL, client.WithTokenSource(&fakeStore{}))

		_, err := client.Get[struct{}](context.Background(), c, "/api/dashboard")
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("token source failure fails the call fast", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("request should not have been dispatched")
		}))
		defer srv.Close()

		readErr := errors.New("store unavailable")
		c := newClient(t, srv.URL, client.WithTokenSource(&fakeStore{readErr: readErr}))

		_, err := client.Get[struct{}](context.Background(), c, "/api/dashboard")
		require.ErrorIs(t, err, readErr)
	})
}

func TestUnauthorized(t *testing.T) {
	t.Parallel()

	t.Run("clears session and fires expiry hook regardless of endpoint", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		for _, path := range []string{"/api/users", "/api/tickets", "/api/dashboard"} {
			store := &fakeStore{token: "T", user: "U"}
			expired := false
			c := newClient(t, srv.URL,
				client.WithTokenSource(store),
				client.WithSessionInvalidator(store),
				client.WithOnSessionExpired(func() { expired = true }),
			)

			_, err := client.Get[struct{}](context.Background(), c, path)
			require.ErrorIs(t, err, client.ErrSessionExpired, "path %s", path)
			assert.Equal(t, "session expired, please log in again", err.Error())

			token, user, cleared := store.snapshot()
			assert.Empty(t, token, "path %s", path)
			assert.Empty(t, user, "path %s", path)
			assert.True(t, cleared, "path %s", path)
			assert.True(t, expired, "path %s", path)
		}
	})
}

func TestHTTPStatusClasses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"forbidden", http.StatusForbidden, "", client.ErrPermissionDenied},
		{"not found", http.StatusNotFound, "", client.ErrNotFound},
		{"server error", http.StatusInternalServerError, "", client.ErrServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := client.Get[struct{}](context.Background(), newClient(t, srv.URL), "/api/users")
			require.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("other status uses envelope message when present", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"code":429,"message":"rate limit exceeded"}`))
		}))
		defer srv.Close()

		_, err := client.Get[struct{}](context.Background(), newClient(t, srv.URL), "/api/users")
		require.Error(t, err)

		var httpErr *client.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusTooManyRequests, httpErr.Status)
		assert.Equal(t, "rate limit exceeded", httpErr.Error())
	})

	t.Run("other status without message templates the status code", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := client.Get[struct{}](context.Background(), newClient(t, srv.URL), "/api/users")
		require.Error(t, err)
		assert.Equal(t, "request failed (502)", err.Error())
	})
}

func TestTransportErrors(t *testing.T) {
	t.Parallel()

	t.Run("timeout classifies as the fixed timeout error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(time.Second)
		}))
		defer srv.Close()

		c, err := client.New(client.Config{BaseURL: srv.URL, Timeout: 20 * time.Millisecond})
		require.NoError(t, err)

		_, err = client.Get[struct{}](context.Background(), c, "/api/dashboard")
		require.ErrorIs(t, err, client.ErrRequestTimeout)
		assert.Equal(t, "request timed out, please try again later", err.Error())
	})

	t.Run("context deadline classifies as timeout", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(time.Second)
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := client.Get[struct{}](ctx, newClient(t, srv.URL), "/api/dashboard")
		require.ErrorIs(t, err, client.ErrRequestTimeout)
	})

	t.Run("unreachable server classifies as network failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // nothing listens anymore

		_, err := client.Get[struct{}](context.Background(), newClient(t, srv.URL), "/api/dashboard")
		require.ErrorIs(t, err, client.ErrNetworkFailure)
		assert.Equal(t, "network connection failed, please check your network", err.Error())
	})
}

func TestRequestShape(t *testing.T) {
	t.Parallel()

	t.Run("JSON body and request id header", func(t *testing.T) {
		t.Parallel()

		var gotBody map[string]string
		var gotRequestID, gotContentType string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotRequestID = r.Header.Get("X-Request-ID")
			gotContentType = r.Header.Get("Content-Type")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_, _ = w.Write([]byte(`{"code":200,"message":"ok"}`))
		}))
		defer srv.Close()

		_, err := client.Post[struct{}](context.Background(), newClient(t, srv.URL), "/api/login",
			map[string]string{"username": "a", "password": "b"})
		require.NoError(t, err)
		assert.Equal(t, "application/json", gotContentType)
		assert.NotEmpty(t, gotRequestID)
		assert.Equal(t, map[string]string{"username": "a", "password": "b"}, gotBody)
	})
}

func TestEnvelopePayload(t *testing.T) {
	t.Parallel()

	t.Run("reports payload presence", func(t *testing.T) {
		t.Parallel()

		data := 42
		env := &client.Envelope[int]{Code: 200, Data: &data}
		v, ok := env.Payload()
		require.True(t, ok)
		assert.Equal(t, 42, v)

		empty := &client.Envelope[int]{Code: 200}
		_, ok = empty.Payload()
		assert.False(t, ok)
	})
}
