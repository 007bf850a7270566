package stats

import (
	"strings"

	"github.com/iudanet/progressboard/internal/models"
)

// DefaultExcludedPaths are path fragments of modules hidden from every view.
var DefaultExcludedPaths = []string{
	"/bahrain/bh-module/piscine-js",
	"/bahrain/bh-module/checkpoint",
	"/bahrain/bh-module/piscine-rust",
}

// FilterPaths drops records whose path contains any of the excluded
// fragments. Records without a path are kept. Filtering twice gives the same
// result as filtering once.
func FilterPaths[T models.Record](records []T, excluded []string) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if !isExcluded(r.ProjectPath(), excluded) {
			out = append(out, r)
		}
	}
	return out
}

func isExcluded(path string, excluded []string) bool {
	if path == "" {
		return false
	}
	for _, e := range excluded {
		if e != "" && strings.Contains(path, e) {
			return true
		}
	}
	return false
}
