package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NotAvailable is shown for profile values the backend did not provide.
const NotAvailable = "N/A"

// UserProfile представляет профиль пользователя платформы
type UserProfile struct {
	Attrs      map[string]any  `json:"-"`     // нормализованные атрибуты
	RawAttrs   json.RawMessage `json:"attrs"` // атрибуты как пришли с сервера (объект или строка)
	Login      string          `json:"login"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Email      string          `json:"email"`
	Campus     string          `json:"campus"`
	ID         int64           `json:"id"`
	AuditRatio float64         `json:"auditRatio"`
	TotalUp    float64         `json:"totalUp"`
	TotalDown  float64         `json:"totalDown"`
	Level      int             `json:"level"`
}

// FullName joins first and last name, skipping empty parts.
func (u *UserProfile) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
}

// Attr returns a display value for the attribute key or NotAvailable.
func (u *UserProfile) Attr(key string) string {
	return AttrString(u.Attrs, key)
}

// AttrString renders attrs[key] for display. Missing, nil and empty values
// yield NotAvailable.
func AttrString(attrs map[string]any, key string) string {
	v, ok := attrs[key]
	if !ok || v == nil {
		return NotAvailable
	}
	s, isString := v.(string)
	if !isString {
		s = fmt.Sprint(v)
	}
	if strings.TrimSpace(s) == "" {
		return NotAvailable
	}
	return s
}

// ErrInvalidLevel is returned by UserLevel.Value for non-integer levels.
var ErrInvalidLevel = errors.New("level is not an integer")

// UserLevel is one event_user row of the level lookup. Level is kept raw:
// the backend type is not guaranteed and a bad value must not fail the row.
type UserLevel struct {
	Level   json.RawMessage `json:"level"`
	UserID  int64           `json:"userId,omitempty"`
	EventID int64           `json:"eventId,omitempty"`
}

// Value parses Level. Integer numbers and integer strings are accepted.
func (l UserLevel) Value() (int, error) {
	raw := strings.TrimSpace(string(l.Level))
	raw = strings.TrimSpace(strings.Trim(raw, `"`))
	if raw == "" || raw == "null" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidLevel)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidLevel, raw)
	}
	return int(v), nil
}
