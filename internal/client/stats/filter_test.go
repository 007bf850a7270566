package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/progressboard/internal/models"
)

func TestFilterPaths(t *testing.T) {
	txs := []models.Transaction{
		tx("/bahrain/bh-module/go-reloaded", 10, 1),
		tx("/bahrain/bh-module/piscine-js/quest-01", 20, 2),
		tx("/bahrain/bh-module/checkpoint/checkpoint-01", 30, 3),
		tx("/bahrain/bh-module/piscine-rust/quest-02", 40, 4),
		tx("", 50, 5),
		tx("/bahrain/bh-piscine/go-quest", 60, 6),
	}

	got := FilterPaths(txs, DefaultExcludedPaths)

	assert.Len(t, got, 3)
	assert.Equal(t, "/bahrain/bh-module/go-reloaded", got[0].Path)
	assert.Equal(t, "", got[1].Path, "records without path are kept")
	assert.Equal(t, "/bahrain/bh-piscine/go-quest", got[2].Path)
	assert.Len(t, txs, 6, "input untouched")
}

func TestFilterPaths_Idempotent(t *testing.T) {
	txs := []models.Transaction{
		tx("/a/piscine-js-not", 1, 1),
		tx("/bahrain/bh-module/checkpoint", 2, 2),
		tx("/b", 3, 3),
	}

	once := FilterPaths(txs, DefaultExcludedPaths)
	twice := FilterPaths(once, DefaultExcludedPaths)

	assert.Equal(t, once, twice)
}

func TestFilterPaths_EmptyExclusions(t *testing.T) {
	txs := []models.Transaction{tx("/bahrain/bh-module/checkpoint", 1, 1)}

	assert.Equal(t, txs, FilterPaths(txs, nil))
	assert.Equal(t, txs, FilterPaths(txs, []string{""}))
}
