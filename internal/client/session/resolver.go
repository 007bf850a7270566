package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/iudanet/progressboard/internal/client/api"
	"github.com/iudanet/progressboard/internal/client/auth"
	"github.com/iudanet/progressboard/internal/client/storage"
)

// Backend is the part of api.Client the resolver needs.
type Backend interface {
	Execute(ctx context.Context, query string, variables map[string]any, out any) error
	SignIn(ctx context.Context, identifier, password string) (any, error)
}

// Session is the minimal state required for personalized queries.
type Session struct {
	Token  string
	UserID int64
}

// Resolver drives login, user id resolution and profile loading.
type Resolver struct {
	backend Backend
	tokens  *auth.TokenStore
	mu      sync.Mutex
	state   State
}

// NewResolver creates a Resolver.
func NewResolver(backend Backend, tokens *auth.TokenStore) *Resolver {
	return &Resolver{
		backend: backend,
		tokens:  tokens,
		state:   StateUnauthenticated,
	}
}

// State returns the last state reached.
func (r *Resolver) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Resolver) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
	slog.Debug("session state", "state", s.String())
}

// Login exchanges credentials for a token and stores it. The own-id lookup
// afterwards is best effort: a transport failure is logged, the state is
// StateUserIDPending and Ensure retries the lookup. A rejected credential
// fails the login.
func (r *Resolver) Login(ctx context.Context, identifier, password string) error {
	r.setState(StateAuthenticatingViaCredentials)

	resp, err := r.backend.SignIn(ctx, identifier, password)
	if err != nil {
		r.setState(StateUnauthenticated)
		return err
	}

	token, ok := auth.NormalizeToken(resp)
	if !ok {
		r.setState(StateUnauthenticated)
		return ErrInvalidCredentialFormat
	}

	if err := r.storeSession(ctx, token); err != nil {
		r.setState(StateFailed)
		return err
	}

	r.setState(StateResolvingUserID)
	id, err := r.fetchUserID(ctx)
	if err != nil {
		// Токен отклонен сразу после входа: сессии нет
		if api.IsCredentialError(err) {
			r.teardown(ctx)
			r.setState(StateFailed)
			return fmt.Errorf("credential rejected right after login: %w", err)
		}
		slog.Warn("failed to fetch user id after login", "error", err)
		r.setState(StateUserIDPending)
		return nil
	}
	if err := r.tokens.SetUserID(ctx, id); err != nil {
		slog.Warn("failed to cache user id after login", "error", err)
		r.setState(StateUserIDPending)
		return nil
	}

	slog.Info("login successful", "user_id", id)
	r.setState(StateReady)
	return nil
}

func (r *Resolver) storeSession(ctx context.Context, token string) error {
	if err := r.tokens.Store(ctx, token); err != nil {
		return err
	}
	// Старый id мог принадлежать другому пользователю
	if err := r.tokens.ClearUserID(ctx); err != nil {
		return err
	}
	if err := r.tokens.SetFlag(ctx, storage.KeyLoggedOut, false); err != nil {
		return err
	}
	return r.tokens.SetFlag(ctx, storage.KeyFetchLevel, true)
}

// Ensure returns a usable session, resolving and caching the user id when it
// is not cached yet. Identity failures clear the stored session.
func (r *Resolver) Ensure(ctx context.Context) (*Session, error) {
	loggedOut, err := r.tokens.Flag(ctx, storage.KeyLoggedOut)
	if err != nil {
		return nil, err
	}
	if loggedOut {
		r.setState(StateUnauthenticated)
		return nil, ErrLoggedOut
	}

	token, err := r.tokens.Get(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		r.teardown(ctx)
		r.setState(StateUnauthenticated)
		return nil, api.ErrNoCredential
	}

	cached, err := r.tokens.UserID(ctx)
	if err != nil {
		return nil, err
	}

	if cached == "" {
		r.setState(StateResolvingUserID)
		id, err := r.fetchUserID(ctx)
		if err != nil {
			if errors.Is(err, ErrMissingUserID) || errors.Is(err, ErrInvalidUserID) {
				r.teardown(ctx)
			}
			r.setState(StateFailed)
			return nil, err
		}
		if err := r.tokens.SetUserID(ctx, id); err != nil {
			return nil, err
		}
		r.setState(StateReady)
		return &Session{Token: token, UserID: id}, nil
	}

	id, err := CoerceUserID(cached)
	if err != nil {
		slog.Error("cached user id is invalid", "value", cached)
		r.teardown(ctx)
		r.setState(StateFailed)
		return nil, err
	}

	r.setState(StateReady)
	return &Session{Token: token, UserID: id}, nil
}

// Logout clears the credential, the cached id and the level flag and marks
// the session as logged out. Repeated and concurrent calls are safe.
func (r *Resolver) Logout(ctx context.Context) error {
	if err := r.tokens.Clear(ctx); err != nil {
		return err
	}
	if err := r.tokens.SetFlag(ctx, storage.KeyFetchLevel, false); err != nil {
		return err
	}
	if err := r.tokens.SetFlag(ctx, storage.KeyLoggedOut, true); err != nil {
		return err
	}
	r.setState(StateUnauthenticated)
	slog.Info("logged out")
	return nil
}

func (r *Resolver) teardown(ctx context.Context) {
	// Очистка не должна зависеть от отмены контекста запроса
	if err := r.tokens.Clear(context.WithoutCancel(ctx)); err != nil {
		slog.Error("failed to clear session", "error", err)
	}
}

type userIDResponse struct {
	User []struct {
		ID json.RawMessage `json:"id"`
	} `json:"user"`
}

func (r *Resolver) fetchUserID(ctx context.Context) (int64, error) {
	var resp userIDResponse
	if err := r.backend.Execute(ctx, api.QueryUserID, nil, &resp); err != nil {
		return 0, fmt.Errorf("failed to get user id: %w", err)
	}
	if len(resp.User) == 0 {
		return 0, ErrMissingUserID
	}
	return CoerceUserID(string(resp.User[0].ID))
}

// CoerceUserID converts a stored or received id into a positive integer.
// Leading digits are used and the rest ignored, so "42", `"42"` and "42.0"
// all give 42. Anything that yields no digits or a value <= 0 is
// ErrInvalidUserID.
func CoerceUserID(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.Trim(s, `"`))

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserID, raw)
	}

	id, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserID, raw)
	}
	return id, nil
}
