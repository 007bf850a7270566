package stats

import (
	"github.com/shopspring/decimal"

	"github.com/iudanet/progressboard/internal/models"
)

// XPView is the XP page: a cumulative series over the latest projects and
// the table of those projects.
type XPView struct {
	Total  decimal.Decimal
	Series []models.Point
	Latest []models.Transaction
}

// XP builds the XP view. Latest holds the newest transaction of each of the
// top projects, newest first. Series accumulates every filtered transaction
// belonging to those projects in chronological order.
func (a *Aggregator) XP(txs []models.Transaction) XPView {
	filtered := FilterPaths(txs, a.excluded)
	latest := TopN(LatestPerProject(filtered), a.topN)

	keep := paths(latest)
	inTop := make([]models.Transaction, 0, len(filtered))
	total := decimal.Zero
	for _, tx := range filtered {
		total = total.Add(tx.Amount)
		if _, ok := keep[tx.Path]; ok {
			inTop = append(inTop, tx)
		}
	}

	return XPView{
		Total:  total,
		Series: Cumulative(SortAscending(inTop)),
		Latest: latest,
	}
}

// Cumulative returns the running sum of amounts in the given order.
func Cumulative(txs []models.Transaction) []models.Point {
	series := make([]models.Point, 0, len(txs))
	sum := decimal.Zero
	for _, tx := range txs {
		sum = sum.Add(tx.Amount)
		series = append(series, models.Point{
			Time:  tx.CreatedAt,
			Label: tx.Path,
			Value: sum.InexactFloat64(),
		})
	}
	return series
}
