package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iudanet/progressboard/internal/models"
)

// AuditSummary is computed over all audits left after filtering.
type AuditSummary struct {
	LatestAt    time.Time
	TotalPoints decimal.Decimal
	Count       int
}

// AuditsView is the audits page.
type AuditsView struct {
	Series  []models.Point
	Latest  []models.Transaction
	Summary AuditSummary
}

// Audits builds the audits view. Unlike XP the series is not cumulative: it
// plots the raw amount of each latest project audit in chronological order.
func (a *Aggregator) Audits(txs []models.Transaction) AuditsView {
	filtered := FilterPaths(txs, a.excluded)

	summary := AuditSummary{Count: len(filtered), TotalPoints: decimal.Zero}
	for _, tx := range filtered {
		summary.TotalPoints = summary.TotalPoints.Add(tx.Amount)
		if tx.CreatedAt.After(summary.LatestAt) {
			summary.LatestAt = tx.CreatedAt
		}
	}

	latest := TopN(LatestPerProject(filtered), a.topN)

	ascending := SortAscending(latest)
	series := make([]models.Point, 0, len(ascending))
	for _, tx := range ascending {
		series = append(series, models.Point{
			Time:  tx.CreatedAt,
			Label: tx.ProjectName(),
			Value: tx.Amount.InexactFloat64(),
		})
	}

	return AuditsView{Series: series, Latest: latest, Summary: summary}
}
