package session

import (
	"errors"

	"github.com/iudanet/progressboard/internal/client/api"
)

var (
	// ErrInvalidCredentialFormat is returned by Login when sign-in succeeded but
	// the body carries neither a token string nor a {token} object
	ErrInvalidCredentialFormat = errors.New("invalid token format received")

	// ErrMissingUserID is returned when the backend returns no user row for the credential
	ErrMissingUserID = errors.New("user id not found in response")

	// ErrInvalidUserID is returned when the user id is not a positive integer
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrLoggedOut is returned while the logged-out marker is set
	ErrLoggedOut = errors.New("logged out")

	// ErrProfileNotFound is returned when the profile query yields no user row
	ErrProfileNotFound = errors.New("user data not found")
)

// RequiresLogin reports whether err means the user has to sign in again.
// It has no side effects; teardown already happened where the error was produced.
func RequiresLogin(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrLoggedOut) ||
		errors.Is(err, ErrMissingUserID) ||
		errors.Is(err, ErrInvalidUserID) ||
		api.IsCredentialError(err)
}
