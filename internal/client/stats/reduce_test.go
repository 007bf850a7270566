package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/progressboard/internal/models"
)

func TestLatestPerProject(t *testing.T) {
	txs := []models.Transaction{
		tx("/a", 1, 1),
		tx("/b", 2, 2),
		tx("/a", 3, 5),
		tx("/a", 4, 3),
		tx("/c", 5, 1),
		tx("/b", 6, 2), // тот же момент времени: остается первая запись
	}

	got := LatestPerProject(txs)

	require.Len(t, got, 3)
	byPath := map[string]models.Transaction{}
	for _, r := range got {
		byPath[r.Path] = r
	}
	assert.Equal(t, day(5), byPath["/a"].CreatedAt)
	assert.Equal(t, "3", byPath["/a"].Amount.String())
	assert.Equal(t, "2", byPath["/b"].Amount.String())
	assert.Equal(t, day(1), byPath["/c"].CreatedAt)

	// порядок групп - порядок первого появления
	assert.Equal(t, []string{"/a", "/b", "/c"}, []string{got[0].Path, got[1].Path, got[2].Path})
}

func TestLatestPerProject_EmptyPathsGroupTogether(t *testing.T) {
	got := LatestPerProject([]models.Transaction{tx("", 1, 1), tx("", 2, 4)})

	require.Len(t, got, 1)
	assert.Equal(t, day(4), got[0].CreatedAt)
}

func TestTopN(t *testing.T) {
	var txs []models.Transaction
	for i := 0; i < 15; i++ {
		txs = append(txs, tx("/p", int64(i), i))
	}

	got := TopN(txs, 10)

	require.Len(t, got, 10)
	assert.Equal(t, day(14), got[0].CreatedAt)
	assert.Equal(t, day(5), got[9].CreatedAt)
	assert.Equal(t, day(0), txs[0].CreatedAt, "input order untouched")

	assert.Len(t, TopN(txs[:3], 10), 3)
}

func TestSortAscending_Stable(t *testing.T) {
	txs := []models.Transaction{tx("/b", 1, 2), tx("/a", 2, 1), tx("/c", 3, 2)}

	got := SortAscending(txs)

	assert.Equal(t, []string{"/a", "/b", "/c"}, []string{got[0].Path, got[1].Path, got[2].Path})
}
