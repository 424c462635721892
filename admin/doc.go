// Package admin is the typed surface of the admin REST API: one method
// per endpoint, all routed through the core/client transport so every
// call shares the same envelope handling, bearer injection, and session
// expiry behavior.
//
//	c, err := client.New(cfg, client.WithTokenSource(repo))
//	// ...
//	svc := admin.NewService(c)
//
//	env, err := svc.Users(ctx)
//	if err != nil {
//		return err
//	}
//	fmt.Println(env.Data.Total)
//
// Service also implements auth.Authenticator, so it plugs straight into
// the session manager:
//
//	mgr := auth.NewManager(repo, svc)
package admin
