package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/iudanet/progressboard/internal/client/stats"
)

func (c *Cli) runXP(ctx context.Context) error {
	c.heading("XP Progress")

	if _, err := c.resolver.Ensure(ctx); err != nil {
		return err
	}

	txs, err := c.fetchXP(ctx)
	if err != nil {
		c.printFetchError("XP", err)
		return err
	}

	view := c.stats.XP(txs)
	if len(view.Latest) == 0 {
		c.io.Println("No XP transactions found.")
		return nil
	}

	c.io.Printf("Total XP: %s\n\n", stats.FormatXP(view.Total.InexactFloat64()))
	c.io.Println("Cumulative XP")
	c.printSeries(view.Series, stats.FormatXP)
	c.io.Println()

	c.io.Printf("%d Latest Projects\n", c.stats.TopN())
	rows := make([][]string, 0, len(view.Latest))
	for _, tx := range view.Latest {
		rows = append(rows, []string{
			tx.CreatedAt.Format(dateLayout),
			tx.Path,
			stats.FormatXP(tx.Amount.InexactFloat64()),
		})
	}
	c.printTable([]string{"DATE", "PROJECT", "XP AMOUNT"}, rows)
	return nil
}

func (c *Cli) runGrades(ctx context.Context) error {
	c.heading("Grades Overview")

	if _, err := c.resolver.Ensure(ctx); err != nil {
		return err
	}

	progress, err := c.fetchGrades(ctx)
	if err != nil {
		c.printFetchError("grades", err)
		return err
	}

	view := c.stats.Grades(progress)
	if len(view.Latest) == 0 {
		c.io.Println("No grades found.")
		return nil
	}

	c.printSeries(view.Series, stats.FormatRatio)
	c.io.Println()

	c.io.Printf("%d Latest Projects\n", c.stats.TopN())
	rows := make([][]string, 0, len(view.Latest))
	for _, g := range view.Latest {
		rows = append(rows, []string{g.Date.Format(dateLayout), g.Project, g.Grade})
	}
	c.printTable([]string{"DATE", "PROJECT", "GRADE"}, rows)
	return nil
}

func (c *Cli) runAudits(ctx context.Context) error {
	c.heading("Audit History")

	if _, err := c.resolver.Ensure(ctx); err != nil {
		return err
	}

	txs, err := c.fetchAudits(ctx)
	if err != nil {
		c.printFetchError("audit", err)
		return err
	}

	view := c.stats.Audits(txs)
	if view.Summary.Count == 0 {
		c.io.Println("No audits found.")
		return nil
	}

	c.printRows([][]string{
		{"Total Audits:", strconv.Itoa(view.Summary.Count)},
		{"Total Points:", stats.FormatPoints(view.Summary.TotalPoints.InexactFloat64())},
		{"Latest Audit:", fmt.Sprintf("%s (%s)", view.Summary.LatestAt.Format(dateLayout), humanize.Time(view.Summary.LatestAt))},
	})
	c.io.Println()

	c.io.Printf("Audit Points for %d Latest Projects\n", c.stats.TopN())
	c.printSeries(view.Series, stats.FormatPoints)
	c.io.Println()

	rows := make([][]string, 0, len(view.Latest))
	for _, tx := range view.Latest {
		rows = append(rows, []string{
			tx.CreatedAt.Format(dateLayout),
			stats.FormatPoints(tx.Amount.InexactFloat64()),
			tx.ProjectName(),
		})
	}
	c.printTable([]string{"DATE", "AMOUNT", "PROJECT"}, rows)
	return nil
}

func (c *Cli) runSkills(ctx context.Context) error {
	c.heading("Skills")

	if _, err := c.resolver.Ensure(ctx); err != nil {
		return err
	}

	txs, err := c.fetchSkills(ctx)
	if err != nil {
		c.printFetchError("skills", err)
		return err
	}

	skills := c.stats.Skills(txs)
	if len(skills) == 0 {
		c.io.Println("No skills found.")
		return nil
	}

	rows := make([][]string, 0, len(skills))
	for _, s := range skills {
		rows = append(rows, []string{
			s.Name,
			s.Category,
			strconv.FormatFloat(s.Level, 'f', -1, 64) + "%",
			bar(percent(s.Level), 100),
		})
	}
	c.printTable([]string{"SKILL", "CATEGORY", "LEVEL", ""}, rows)
	return nil
}
