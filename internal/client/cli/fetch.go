package cli

import (
	"context"

	"github.com/iudanet/progressboard/internal/client/api"
	"github.com/iudanet/progressboard/internal/models"
)

type transactionsResponse struct {
	Transaction []models.Transaction `json:"transaction"`
}

type progressResponse struct {
	Progress []models.Progress `json:"progress"`
}

func (c *Cli) fetchTransactions(ctx context.Context, query string) ([]models.Transaction, error) {
	var resp transactionsResponse
	if err := c.api.Execute(ctx, query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Transaction, nil
}

func (c *Cli) fetchXP(ctx context.Context) ([]models.Transaction, error) {
	return c.fetchTransactions(ctx, api.QueryXP)
}

func (c *Cli) fetchAudits(ctx context.Context) ([]models.Transaction, error) {
	return c.fetchTransactions(ctx, api.QueryAudits)
}

func (c *Cli) fetchSkills(ctx context.Context) ([]models.Transaction, error) {
	return c.fetchTransactions(ctx, api.QuerySkills)
}

func (c *Cli) fetchGrades(ctx context.Context) ([]models.Progress, error) {
	var resp progressResponse
	if err := c.api.Execute(ctx, api.QueryGrades, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Progress, nil
}
