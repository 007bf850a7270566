package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProfile_FullName(t *testing.T) {
	tests := []struct {
		name  string
		first string
		last  string
		want  string
	}{
		{name: "both", first: "Alice", last: "Smith", want: "Alice Smith"},
		{name: "first only", first: "Alice", want: "Alice"},
		{name: "last only", last: " Smith ", want: "Smith"},
		{name: "none", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &UserProfile{FirstName: tt.first, LastName: tt.last}
			assert.Equal(t, tt.want, u.FullName())
		})
	}
}

func TestAttrString(t *testing.T) {
	attrs := map[string]any{
		"country": "Estonia",
		"blank":   "   ",
		"nothing": nil,
		"age":     float64(27),
		"adult":   true,
	}

	assert.Equal(t, "Estonia", AttrString(attrs, "country"))
	assert.Equal(t, NotAvailable, AttrString(attrs, "blank"))
	assert.Equal(t, NotAvailable, AttrString(attrs, "nothing"))
	assert.Equal(t, NotAvailable, AttrString(attrs, "missing"))
	assert.Equal(t, "27", AttrString(attrs, "age"))
	assert.Equal(t, "true", AttrString(attrs, "adult"))
	assert.Equal(t, NotAvailable, AttrString(nil, "country"))
}

func TestUserProfile_Attr(t *testing.T) {
	u := &UserProfile{Attrs: map[string]any{"tel": "+372 555"}}

	assert.Equal(t, "+372 555", u.Attr("tel"))
	assert.Equal(t, NotAvailable, u.Attr("email"))
}

func TestUserLevel_Value(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "integer", raw: `12`, want: 12},
		{name: "integral float", raw: `12.0`, want: 12},
		{name: "integer string", raw: `"9"`, want: 9},
		{name: "fraction", raw: `3.5`, wantErr: true},
		{name: "text", raw: `"high"`, wantErr: true},
		{name: "null", raw: `null`, wantErr: true},
		{name: "missing", raw: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UserLevel{Level: json.RawMessage(tt.raw)}.Value()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
