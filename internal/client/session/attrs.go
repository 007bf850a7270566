package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/iudanet/progressboard/internal/models"
)

var (
	errAttrsNotObject = errors.New("attrs is not an object")

	surroundingQuotes = regexp.MustCompile(`^"(.*)"$`)
)

// NormalizeAttrs turns the raw attrs value into a map. Objects are taken as
// is. A string is decoded as JSON; if that fails the string is cleaned
// (escaped quotes unescaped, one layer of surrounding quotes removed) and
// decoded once more. Anything else yields an empty map marked as defaulted.
func NormalizeAttrs(raw json.RawMessage) Result[map[string]any] {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Defaulted(map[string]any{}, nil)
	}

	var value any
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return Defaulted(map[string]any{}, fmt.Errorf("failed to decode attrs: %w", err))
	}

	switch v := value.(type) {
	case map[string]any:
		return Resolved(v)
	case string:
		return attrsFromString(v)
	default:
		return Defaulted(map[string]any{}, errAttrsNotObject)
	}
}

func attrsFromString(s string) Result[map[string]any] {
	if m, err := decodeObject(s); err == nil {
		return Resolved(m)
	}

	cleaned := strings.ReplaceAll(s, `\"`, `"`)
	cleaned = surroundingQuotes.ReplaceAllString(cleaned, "$1")

	m, err := decodeObject(cleaned)
	if err != nil {
		return Defaulted(map[string]any{}, fmt.Errorf("could not parse attrs string: %w", err))
	}
	return Resolved(m)
}

func decodeObject(s string) (map[string]any, error) {
	var value any
	if err := json.Unmarshal([]byte(s), &value); err != nil {
		return nil, err
	}
	m, ok := value.(map[string]any)
	if !ok {
		return nil, errAttrsNotObject
	}
	return m, nil
}

// Campus returns attrs["campus"] when it is non-empty, else models.NotAvailable.
func Campus(attrs map[string]any) string {
	return models.AttrString(attrs, "campus")
}
