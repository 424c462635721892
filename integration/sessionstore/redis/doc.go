// Package redis persists the session in Redis for deployments where
// several processes share one operator session (for example a console
// CLI and a reporting job on the same host). The layout mirrors the
// local stores: a raw token string and a serialized user record under a
// common key prefix, written and cleared together.
//
//	store, err := redis.Connect(ctx, redis.Config{
//		ConnectionURL: "redis://localhost:6379/0",
//	})
//	if err != nil {
//		return err
//	}
//	mgr := auth.NewManager(store, svc)
//
// Connection establishment validates the URL and verifies connectivity
// with a ping before the store is handed out.
package redis
