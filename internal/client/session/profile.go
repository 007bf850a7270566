package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/progressboard/internal/client/api"
	"github.com/iudanet/progressboard/internal/client/storage"
	"github.com/iudanet/progressboard/internal/models"
)

var errNoLevelRows = errors.New("no level rows")

// event_user is decoded separately so a malformed level never fails the profile
type profileResponse struct {
	User      []models.UserProfile `json:"user"`
	EventUser json.RawMessage      `json:"event_user"`
}

type levelResponse struct {
	EventUser json.RawMessage `json:"event_user"`
}

// Profile loads the user's profile with level, normalized attrs and campus.
// Level and attrs are enrichments: their failures fall back to defaults.
// Credential failures are never defaulted.
func (r *Resolver) Profile(ctx context.Context) (*models.UserProfile, error) {
	sess, err := r.Ensure(ctx)
	if err != nil {
		return nil, err
	}

	var resp profileResponse
	vars := map[string]any{"userId": sess.UserID}
	if err := r.backend.Execute(ctx, api.QueryUserProfile, vars, &resp); err != nil {
		r.setState(StateFailed)
		return nil, fmt.Errorf("failed to fetch user data: %w", err)
	}
	if len(resp.User) == 0 {
		r.setState(StateFailed)
		return nil, ErrProfileNotFound
	}
	profile := resp.User[0]

	r.setState(StateResolvingLevel)
	userID := profile.ID
	if userID <= 0 {
		userID = sess.UserID
	}
	level, err := r.resolveLevel(ctx, resp.EventUser, userID)
	if err != nil {
		r.setState(StateFailed)
		return nil, err
	}
	if level.Defaulted {
		slog.Warn("level not found, defaulting", "level", level.Value, "reason", level.Reason)
	}
	profile.Level = level.Value

	if err := r.tokens.SetFlag(ctx, storage.KeyFetchLevel, false); err != nil {
		slog.Warn("failed to clear level refresh flag", "error", err)
	}

	attrs := NormalizeAttrs(profile.RawAttrs)
	if attrs.Defaulted && attrs.Reason != nil {
		slog.Debug("attrs could not be parsed", "reason", attrs.Reason)
	}
	profile.Attrs = attrs.Value
	profile.Campus = Campus(attrs.Value)

	r.setState(StateReady)
	return &profile, nil
}

// resolveLevel runs the level chain: rows from the profile query, then one
// direct query, then 0.
func (r *Resolver) resolveLevel(ctx context.Context, rows json.RawMessage, userID int64) (Result[int], error) {
	if res := levelFromRows(rows); !res.Defaulted {
		return res, nil
	}

	res, err := r.directLevel(ctx, userID)
	if err != nil {
		if api.IsCredentialError(err) {
			return Result[int]{}, err
		}
		return Defaulted(0, err), nil
	}
	return res, nil
}

func levelFromRows(raw json.RawMessage) Result[int] {
	if len(raw) == 0 || string(raw) == "null" {
		return Defaulted(0, errNoLevelRows)
	}

	var rows []models.UserLevel
	if err := json.Unmarshal(raw, &rows); err != nil {
		return Defaulted(0, fmt.Errorf("failed to decode level rows: %w", err))
	}
	if len(rows) == 0 {
		return Defaulted(0, errNoLevelRows)
	}

	level, err := rows[0].Value()
	if err != nil {
		return Defaulted(0, err)
	}
	return Resolved(level)
}

func (r *Resolver) directLevel(ctx context.Context, userID int64) (Result[int], error) {
	refresh, err := r.tokens.Flag(ctx, storage.KeyFetchLevel)
	if err != nil {
		slog.Debug("failed to read level refresh flag", "error", err)
	}
	slog.Debug("fetching level directly", "user_id", userID, "after_login", refresh)

	var resp levelResponse
	if err := r.backend.Execute(ctx, api.QueryUserLevel, map[string]any{"userId": userID}, &resp); err != nil {
		return Result[int]{}, fmt.Errorf("failed to fetch level: %w", err)
	}
	return levelFromRows(resp.EventUser), nil
}
