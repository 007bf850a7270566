package cli

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestBar(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		peak float64
		want int
	}{
		{name: "full", v: 100, peak: 100, want: barWidth},
		{name: "half", v: 50, peak: 100, want: barWidth / 2},
		{name: "tiny value still visible", v: 0.1, peak: 100, want: 1},
		{name: "zero", v: 0, peak: 100, want: 0},
		{name: "negative", v: -5, peak: 100, want: 0},
		{name: "no peak", v: 5, peak: 0, want: 0},
		{name: "above peak is capped", v: 150, peak: 100, want: barWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utf8.RuneCountInString(bar(tt.v, tt.peak)))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.InDelta(t, 100.0, percent(150), 1e-9)
	assert.InDelta(t, 0.0, percent(-3), 1e-9)
	assert.InDelta(t, 42.5, percent(42.5), 1e-9)
}
