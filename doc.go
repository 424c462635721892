// Package adminkit is the Go client SDK for the MACG AI-API reselling
// platform's admin console API. It packages the client-side request
// pipeline the console is built on: a single transport wrapper around
// the API's response envelope, a session state machine over a pluggable
// durable store, and a generic fetcher that drives one asynchronous
// data source per UI consumer.
//
// # Package Organization
//
//	github.com/macgcloud/adminkit/core/client  - HTTP transport: bearer injection, envelope decoding, error taxonomy, 401 session invalidation
//	github.com/macgcloud/adminkit/core/auth    - session lifecycle: login, logout, restore, persisted token/user record
//	github.com/macgcloud/adminkit/core/fetch   - per-consumer data fetcher with mount-once auto-fetch and explicit refetch
//	github.com/macgcloud/adminkit/core/config  - type-safe environment configuration with per-type caching
//	github.com/macgcloud/adminkit/core/logger  - slog attribute helpers
//	github.com/macgcloud/adminkit/admin        - typed API surface: users, dashboard, services, tickets, announcements, token usage
//
// Session persistence backends live under integration/:
//
//	github.com/macgcloud/adminkit/integration/sessionstore/file   - JSON file store (local console use)
//	github.com/macgcloud/adminkit/integration/sessionstore/redis  - Redis store (shared deployments)
//
// # Wiring
//
// The durable session store is the seam between the pieces: the session
// manager writes it, the transport reads the token from it on every
// request and clears it on 401, and a restore on startup rehydrates
// state from it without a network round-trip.
//
//	var cfg client.Config
//	config.MustLoad(&cfg)
//
//	repo, err := file.New(file.Config{})
//	// ...
//	c, err := client.New(cfg,
//		client.WithTokenSource(repo),
//		client.WithSessionInvalidator(repo),
//		client.WithOnSessionExpired(showLogin),
//	)
//	// ...
//	svc := admin.NewService(c)
//	mgr := auth.NewManager(repo, svc)
package adminkit
