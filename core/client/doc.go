// Package client implements the HTTP transport layer for the admin API.
//
// Every outbound call in the SDK goes through a single *Client, which
// attaches the bearer token from the persisted session store, unwraps the
// API's response envelope, and normalizes failures into a small, stable
// error taxonomy. Callers never see raw transport errors.
//
// # Envelope Contract
//
// The API wraps every response body in an envelope:
//
//	{ "code": 200, "message": "ok", "data": { ... } }
//
// Envelope codes 200 and 201 denote success; any other code is a business
// failure even when the HTTP status is 2xx. Successful calls resolve with
// the full envelope so callers keep access to Code and Message:
//
//	env, err := client.Get[admin.UsersPage](ctx, c, "/api/users")
//	if err != nil {
//		return err
//	}
//	users := env.Data.Users
//
// Business failures are returned as *APIError carrying the envelope code,
// so callers can branch on it:
//
//	var apiErr *client.APIError
//	if errors.As(err, &apiErr) && apiErr.Code == 409 {
//		// duplicate
//	}
//
// # Session Expiry
//
// A 401 from any endpoint clears the persisted session through the
// injected SessionInvalidator and fires the OnSessionExpired hook before
// the call returns ErrSessionExpired. This is a deliberate global side
// effect: an expired session invalidates every consumer at once instead
// of leaving stale state behind whichever component happened to trigger
// the request.
//
// # Error Taxonomy
//
//   - *APIError: success HTTP status, non-success envelope code
//   - ErrSessionExpired, ErrPermissionDenied, ErrNotFound, ErrServerError:
//     fixed-message classes for 401/403/404/500
//   - *HTTPError: any other HTTP status, message from the envelope when
//     present
//   - ErrRequestTimeout, ErrNetworkFailure: transport-level failures with
//     no HTTP response; unrecognized transport errors pass through
//     unchanged
package client
