package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/iudanet/progressboard/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	loggedOut, err := c.tokens.Flag(ctx, storage.KeyLoggedOut)
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}

	// Проверяем наличие сохраненной сессии
	isAuth, err := c.tokens.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if loggedOut || !isAuth {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'progressboard login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")

	if id, err := c.tokens.UserID(ctx); err == nil && id != "" {
		c.io.Printf("User ID: %s\n", id)
	} else {
		c.io.Println("User ID: not resolved yet")
	}

	// Токен декодируется без проверки подписи, только для отображения
	claims, err := c.tokens.Claims(ctx)
	if err != nil {
		c.io.Printf("Token: unreadable (%v)\n", err)
		return nil
	}
	if claims.Subject != "" {
		c.io.Printf("Subject: %s\n", claims.Subject)
	}
	if claims.ExpiresAt.IsZero() {
		return nil
	}

	c.io.Printf("Token expires: %s\n", claims.ExpiresAt.Format(time.RFC3339))
	if claims.Expired(time.Now()) {
		c.io.Println("⚠️  Token has expired. Please login again.")
	} else {
		c.io.Printf("Time remaining: %s\n", humanize.Time(claims.ExpiresAt))
	}

	return nil
}
