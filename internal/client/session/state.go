package session

// State is the stage the resolver reached on its last run.
type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticatingViaCredentials
	StateResolvingUserID
	StateResolvingLevel
	StateReady
	StateFailed
	// StateUserIDPending: token stored, id lookup failed without rejecting the token.
	StateUserIDPending
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticatingViaCredentials:
		return "authenticating"
	case StateResolvingUserID:
		return "resolving user id"
	case StateResolvingLevel:
		return "resolving level"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	case StateUserIDPending:
		return "user id pending"
	default:
		return "unknown"
	}
}
