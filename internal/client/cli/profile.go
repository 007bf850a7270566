package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/progressboard/internal/client/stats"
	"github.com/iudanet/progressboard/internal/models"
)

func (c *Cli) runProfile(ctx context.Context) error {
	c.heading("Profile")

	profile, err := c.resolver.Profile(ctx)
	if err != nil {
		c.printFetchError("profile", err)
		return err
	}

	c.printProfile(profile)
	return nil
}

func (c *Cli) printProfile(p *models.UserProfile) {
	fullName := p.FullName()
	if fullName == "" {
		fullName = models.NotAvailable
	}

	fields := [][]string{
		{"Username:", orNA(p.Login)},
		{"Full Name:", fullName},
		{"Email:", orNA(p.Email)},
		{"Country:", p.Attr("country")},
		{"Campus:", p.Campus},
		{"Level:", fmt.Sprint(p.Level)},
		{"Audit Ratio:", stats.FormatRatio(p.AuditRatio)},
		{"Total XP:", stats.FormatKilo(p.TotalUp)},
		{"CPR Number:", p.Attr("CPRnumber")},
		{"Phone Number:", p.Attr("PhoneNumber")},
		{"Gender:", p.Attr("genders")},
		{"Address:", p.Attr("addressCity")},
		{"Birthday:", p.Attr("placeOfBirth")},
	}

	c.printRows(fields)
}

func orNA(s string) string {
	if s == "" {
		return models.NotAvailable
	}
	return s
}
