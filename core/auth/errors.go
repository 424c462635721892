package auth

import "errors"

var (
	// ErrMissingToken is returned when a login call succeeds at the HTTP
	// level but the response carries no token. The server response is
	// malformed and nothing is persisted.
	ErrMissingToken = errors.New("login failed: no token received")
	// ErrNoSession is returned by Restore when the store holds no
	// token or no user record.
	ErrNoSession = errors.New("no session to restore")
	// ErrCorruptSession is returned by Restore when a stored record
	// exists but cannot be read or parsed. The store is cleared.
	ErrCorruptSession = errors.New("corrupt session data")
)
