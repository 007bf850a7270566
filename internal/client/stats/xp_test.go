package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/progressboard/internal/models"
)

func TestAggregator_XP_Cumulative(t *testing.T) {
	a := New(nil, 0)
	view := a.XP([]models.Transaction{tx("/p", 10, 1), tx("/p", 5, 2)})

	assert.Equal(t, []float64{10, 15}, values(view.Series))
	assert.Equal(t, "15", view.Total.String())
	require.Len(t, view.Latest, 1)
	assert.Equal(t, day(2), view.Latest[0].CreatedAt)
}

func TestAggregator_XP_TopProjects(t *testing.T) {
	var txs []models.Transaction
	// 12 проектов, по две транзакции на каждый
	for i := 0; i < 12; i++ {
		path := fmt.Sprintf("/bahrain/bh-module/p%02d", i)
		txs = append(txs, tx(path, 100, i*2), tx(path, 50, i*2+1))
	}
	txs = append(txs, tx("/bahrain/bh-module/piscine-js/q", 1000, 100))

	view := New(nil, 0).XP(txs)

	require.Len(t, view.Latest, 10)
	assert.Equal(t, "/bahrain/bh-module/p11", view.Latest[0].Path)
	assert.Equal(t, "/bahrain/bh-module/p02", view.Latest[9].Path)

	// серия включает все транзакции 10 последних проектов
	require.Len(t, view.Series, 20)
	assert.Equal(t, float64(100), view.Series[0].Value)
	assert.Equal(t, float64(1500), view.Series[19].Value)
	assert.Equal(t, "1800", view.Total.String(), "total covers all filtered projects")

	for i := 1; i < len(view.Series); i++ {
		assert.GreaterOrEqual(t, view.Series[i].Value, view.Series[i-1].Value)
		assert.False(t, view.Series[i].Time.Before(view.Series[i-1].Time))
	}
}

func TestAggregator_XP_NegativeAmounts(t *testing.T) {
	view := New(nil, 0).XP([]models.Transaction{tx("/p", 10, 1), tx("/p", -4, 2)})

	assert.Equal(t, []float64{10, 6}, values(view.Series))
}

func TestAggregator_XP_Empty(t *testing.T) {
	view := New(nil, 0).XP(nil)

	assert.Empty(t, view.Series)
	assert.Empty(t, view.Latest)
	assert.True(t, view.Total.IsZero())
}
