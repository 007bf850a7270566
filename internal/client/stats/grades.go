package stats

import (
	"strconv"
	"time"

	"github.com/iudanet/progressboard/internal/models"
)

// GradeRow is one line of the grades table.
type GradeRow struct {
	Date    time.Time
	Project string
	Grade   string
	Value   float64
}

// GradesView is the grades page.
type GradesView struct {
	Series []models.Point
	Latest []GradeRow
}

// Grades builds the grades view from the latest grade of each top project.
// The series is chronological and carries raw grade values; rows are newest
// first with the grade shown to one decimal.
func (a *Aggregator) Grades(progress []models.Progress) GradesView {
	latest := TopN(LatestPerProject(FilterPaths(progress, a.excluded)), a.topN)

	ascending := SortAscending(latest)
	series := make([]models.Point, 0, len(ascending))
	for _, p := range ascending {
		series = append(series, models.Point{
			Time:  p.CreatedAt,
			Label: p.DisplayName(),
			Value: p.Grade.Float(),
		})
	}

	rows := make([]GradeRow, 0, len(latest))
	for _, p := range latest {
		rows = append(rows, GradeRow{
			Date:    p.CreatedAt,
			Project: p.DisplayName(),
			Grade:   strconv.FormatFloat(p.Grade.Float(), 'f', 1, 64),
			Value:   p.Grade.Float(),
		})
	}

	return GradesView{Series: series, Latest: rows}
}
