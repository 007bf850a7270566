package cli

import (
	"math"
	"strings"
	"text/tabwriter"

	"github.com/iudanet/progressboard/internal/models"
)

const (
	dateLayout = "Jan 2, 2006"
	barWidth   = 40
)

// printTable writes an aligned table with a header row.
func (c *Cli) printTable(headers []string, rows [][]string) {
	c.printRows(append([][]string{headers}, rows...))
}

// printRows writes rows as aligned columns.
func (c *Cli) printRows(rows [][]string) {
	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		_, _ = w.Write([]byte(strings.Join(row, "\t") + "\n"))
	}
	_ = w.Flush()
}

// printSeries draws a horizontal bar per point, scaled to the largest value.
func (c *Cli) printSeries(points []models.Point, format func(float64) string) {
	if len(points) == 0 {
		return
	}

	peak := 0.0
	for _, p := range points {
		peak = math.Max(peak, math.Abs(p.Value))
	}

	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{
			p.Time.Format(dateLayout),
			bar(p.Value, peak),
			format(p.Value),
			p.Label,
		})
	}
	c.printTable([]string{"DATE", "", "VALUE", "PROJECT"}, rows)
}

func bar(v, peak float64) string {
	if peak <= 0 || v <= 0 {
		return ""
	}
	n := int(math.Round(v / peak * barWidth))
	return strings.Repeat("█", min(max(n, 1), barWidth))
}

// percent clamps a skill level to 0..100.
func percent(v float64) float64 {
	return math.Min(math.Max(v, 0), 100)
}

func (c *Cli) heading(title string) {
	c.io.Println("=== " + title + " ===")
	c.io.Println()
}

// printFetchError shows an inline error for a single view.
func (c *Cli) printFetchError(what string, err error) {
	c.io.Printf("Error loading %s data: %v\n", what, err)
}
