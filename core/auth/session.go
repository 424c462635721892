package auth

import "context"

// Status identifies the session lifecycle state.
type Status int

const (
	// StatusAnonymous means no session is held.
	StatusAnonymous Status = iota
	// StatusAuthenticating means a login or restore is in flight.
	StatusAuthenticating
	// StatusAuthenticated means a token and user record are present.
	StatusAuthenticated
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusAuthenticating:
		return "authenticating"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// User is the authenticated user record persisted alongside the token.
type User struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Credentials carry a login request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session is an immutable snapshot of the state machine. Token and User
// are always set or cleared together; IsAuthenticated is derived from
// their presence and holds after every settled transition.
type Session struct {
	Token   string
	User    *User
	Status  Status
	Loading bool
	Err     string
}

// IsAuthenticated reports whether the snapshot holds a complete session.
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

// Repository is the durable session store shared by the state machine
// and the transport layer. ReadToken returns "" and ReadUser returns nil
// (both with nil error) when nothing is stored; a non-nil ReadUser error
// means a record exists but cannot be parsed. Write persists token and
// user together; Clear removes both.
type Repository interface {
	ReadToken(ctx context.Context) (string, error)
	ReadUser(ctx context.Context) (*User, error)
	Write(ctx context.Context, token string, user User) error
	Clear(ctx context.Context) error
}

// Authenticator performs the credential exchange against the API.
// Implemented by the admin service; returns the issued token, which may
// legitimately be empty when the server sends a malformed success
// response (the manager treats that as a failed login).
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (string, error)
}
