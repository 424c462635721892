// Package auth implements the client-side session state machine.
//
// A session moves between three states: Anonymous (no token),
// Authenticating (login or restore in flight), and Authenticated (token
// and user present). Transitions happen only through Manager.Login,
// Manager.Logout, and Manager.Restore, plus the 401-triggered
// invalidation performed by the transport layer against the shared
// Repository.
//
// # Restore Without a Network Round-Trip
//
// Restore rehydrates the session from the persisted store without
// contacting the server. The token itself is the durable credential: the
// transport attaches it to every request, and the server authoritatively
// rejects it with a 401 if it has actually expired. Validation is
// therefore deferred to the first real request, keeping restore cheap on
// startup.
//
// # Usage
//
//	repo, err := file.New(file.Config{})
//	// ...
//	mgr := auth.NewManager(repo, svc)
//
//	if _, err := mgr.Restore(ctx); err != nil {
//		// no stored session; show the login flow
//	}
//
//	sess, err := mgr.Login(ctx, auth.Credentials{Username: "a", Password: "b"})
//
// The same Repository must be handed to the transport client (as
// TokenSource and SessionInvalidator) so requests pick up the persisted
// token and 401 responses clear it.
package auth
