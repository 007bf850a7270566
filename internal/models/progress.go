package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Grade is a progress grade. The backend may send it as a number, as a
// numeric string or as null. Strings are read up to the longest numeric
// prefix ("1.5abc" is 1.5); anything without one decodes to 0.
type Grade float64

// UnmarshalJSON implements json.Unmarshaler.
func (g *Grade) UnmarshalJSON(data []byte) error {
	*g = 0

	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil
		}
	}

	v, ok := ParseFloatPrefix(text)
	if ok {
		*g = Grade(v)
	}
	return nil
}

// ParseFloatPrefix parses the longest leading decimal number of s after
// leading whitespace: optional sign, digits with an optional fraction and an
// optional exponent. Hex, "NaN" and "Infinity" are not accepted.
func ParseFloatPrefix(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}

	// Экспонента учитывается только если за ней есть цифры
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}

	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Float returns the grade as float64.
func (g Grade) Float() float64 { return float64(g) }

// ObjectRef is the nested object of a progress row.
type ObjectRef struct {
	Name string `json:"name"`
}

// Progress is a graded project result.
type Progress struct {
	CreatedAt time.Time `json:"createdAt"`
	Object    ObjectRef `json:"object"`
	Path      string    `json:"path"`
	Grade     Grade     `json:"grade"`
}

// ProjectPath implements Record.
func (p Progress) ProjectPath() string { return p.Path }

// Timestamp implements Record.
func (p Progress) Timestamp() time.Time { return p.CreatedAt }

// DisplayName prefers the object name and falls back to the path.
func (p Progress) DisplayName() string {
	if p.Object.Name != "" {
		return p.Object.Name
	}
	return p.Path
}

func lastSegment(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
