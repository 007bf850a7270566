package cli

import (
	"context"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/progressboard/internal/client/stats"
	"github.com/iudanet/progressboard/internal/models"
)

type dashboardData struct {
	xp       []models.Transaction
	audits   []models.Transaction
	skills   []models.Transaction
	progress []models.Progress
}

func (c *Cli) runDashboard(ctx context.Context) error {
	c.heading("Dashboard")

	// Профиль загружается первым: он кэширует id до параллельных запросов
	profile, err := c.resolver.Profile(ctx)
	if err != nil {
		c.io.Printf("Error loading dashboard: %v\n", err)
		return err
	}

	data, err := c.fetchDashboard(ctx)
	if err != nil {
		c.io.Printf("Error loading dashboard: %v\n", err)
		return err
	}

	c.printProfile(profile)
	c.io.Println()

	xp := c.stats.XP(data.xp)
	grades := c.stats.Grades(data.progress)
	audits := c.stats.Audits(data.audits)
	skills := c.stats.Skills(data.skills)

	rows := [][]string{
		{"XP Amount", stats.FormatXP(xp.Total.InexactFloat64()), latestProject(xp.Latest)},
		{"Grades", gradeSummary(grades), latestGrade(grades)},
		{"Audits", strconv.Itoa(audits.Summary.Count) + " audits", stats.FormatPoints(audits.Summary.TotalPoints.InexactFloat64())},
		{"Skills", strconv.Itoa(len(skills)) + " top skills", topSkills(skills, 3)},
	}
	c.printTable([]string{"WIDGET", "SUMMARY", "DETAIL"}, rows)
	return nil
}

// fetchDashboard loads the four data sets concurrently. The first failure
// cancels the others.
func (c *Cli) fetchDashboard(ctx context.Context) (*dashboardData, error) {
	var data dashboardData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		data.xp, err = c.fetchXP(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.progress, err = c.fetchGrades(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.audits, err = c.fetchAudits(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.skills, err = c.fetchSkills(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}

func latestProject(txs []models.Transaction) string {
	if len(txs) == 0 {
		return "-"
	}
	return "latest: " + txs[0].ProjectName()
}

func gradeSummary(v stats.GradesView) string {
	return strconv.Itoa(len(v.Latest)) + " projects"
}

func latestGrade(v stats.GradesView) string {
	if len(v.Latest) == 0 {
		return "-"
	}
	return "latest: " + v.Latest[0].Project + " " + v.Latest[0].Grade
}

func topSkills(skills []models.Skill, n int) string {
	names := make([]string, 0, n)
	for i, s := range skills {
		if i == n {
			break
		}
		names = append(names, s.Name)
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
