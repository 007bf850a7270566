package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/progressboard/internal/models"
)

func TestAggregator_Grades(t *testing.T) {
	progress := []models.Progress{
		{Path: "/bahrain/bh-module/ascii-art", Grade: 1.2, CreatedAt: day(1), Object: models.ObjectRef{Name: "ascii-art"}},
		{Path: "/bahrain/bh-module/ascii-art", Grade: 1.56, CreatedAt: day(3), Object: models.ObjectRef{Name: "ascii-art"}},
		{Path: "/bahrain/bh-module/go-reloaded", Grade: 0, CreatedAt: day(2)},
		{Path: "/bahrain/bh-module/checkpoint/x", Grade: 1, CreatedAt: day(4)},
	}

	view := New(nil, 0).Grades(progress)

	require.Len(t, view.Series, 2)
	assert.Equal(t, "/bahrain/bh-module/go-reloaded", view.Series[0].Label, "path used without object name")
	assert.Equal(t, "ascii-art", view.Series[1].Label)
	assert.Equal(t, 1.56, view.Series[1].Value)

	require.Len(t, view.Latest, 2)
	assert.Equal(t, GradeRow{Date: day(3), Project: "ascii-art", Grade: "1.6", Value: 1.56}, view.Latest[0])
	assert.Equal(t, "0.0", view.Latest[1].Grade)
}

func TestAggregator_Grades_Limit(t *testing.T) {
	var progress []models.Progress
	for i := 0; i < 12; i++ {
		progress = append(progress, models.Progress{Path: string(rune('a' + i)), CreatedAt: day(i)})
	}

	view := New(nil, 5).Grades(progress)

	assert.Len(t, view.Series, 5)
	assert.Len(t, view.Latest, 5)
	assert.Equal(t, day(11), view.Latest[0].Date)
}
