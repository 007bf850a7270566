package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iudanet/progressboard/internal/models"
)

var base = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return base.AddDate(0, 0, n)
}

func tx(path string, amount int64, d int) models.Transaction {
	return models.Transaction{
		Type:      models.TransactionTypeXP,
		Path:      path,
		Amount:    decimal.NewFromInt(amount),
		CreatedAt: day(d),
	}
}

func values(points []models.Point) []float64 {
	out := make([]float64, 0, len(points))
	for _, p := range points {
		out = append(out, p.Value)
	}
	return out
}
