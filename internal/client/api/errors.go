package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNoCredential is returned before any network call when no token is stored
	ErrNoCredential = errors.New("no authentication token found")

	// ErrInvalidCredentials is returned when the sign-in endpoint rejects the credentials
	ErrInvalidCredentials = errors.New("username or password incorrect")
)

// HTTPError is a transport-level failure: the endpoint answered non-2xx.
type HTTPError struct {
	Body       string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error %d: %s", e.StatusCode, e.Body)
}

// GraphQLError is an application-level failure: a well-formed response
// carrying an "errors" array. Message is the first error's message.
type GraphQLError struct {
	Message string
	Errors  []string
}

func (e *GraphQLError) Error() string {
	return e.Message
}

// credentialPatterns mark failure texts that mean the token is invalid or expired.
var credentialPatterns = []string{"jwt", "token"}

// IsCredentialError reports whether err means the stored credential is missing,
// invalid or expired. It has no side effects.
func IsCredentialError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNoCredential) {
		return true
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.StatusCode == http.StatusUnauthorized {
			return true
		}
		return matchesCredentialPattern(httpErr.Body)
	}

	var gqlErr *GraphQLError
	if errors.As(err, &gqlErr) {
		if matchesCredentialPattern(gqlErr.Message) {
			return true
		}
		for _, msg := range gqlErr.Errors {
			if matchesCredentialPattern(msg) {
				return true
			}
		}
	}

	return false
}

func matchesCredentialPattern(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range credentialPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
