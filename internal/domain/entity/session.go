package entity

// Identity is the read-only view of the claims carried by the bearer token.
// It exists only while a decodable token is installed; it is recomputed on
// every token change and never cached independently of the token.
type Identity struct {
	Email    string
	FullName string
	Role     string
}

// Session pairs the opaque bearer token with the identity decoded from it.
type Session struct {
	Token    string
	Identity Identity
}

// SessionState models the authentication lifecycle of the gateway.
type SessionState int

const (
	// StateLoading is the initial state, held until the one-shot session
	// restore at startup has completed.
	StateLoading SessionState = iota

	// StateUnauthenticated means no valid token is installed.
	StateUnauthenticated

	// StateAuthenticated means a decodable token is installed and an
	// identity is available.
	StateAuthenticated
)

// String implements fmt.Stringer for log output.
func (s SessionState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}
