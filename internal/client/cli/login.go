package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/iudanet/progressboard/internal/validation"
)

func (c *Cli) runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	identifier := fs.String("user", "", "Username or email")
	passwordFile := fs.String("password-file", "", "Path to file containing the password")
	password := fs.String("password", "", "Password (not recommended, use env var or file)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid login arguments: %w", err)
	}

	c.io.Println("=== Login ===")
	c.io.Println()

	// Запрашиваем username
	if *identifier == "" {
		var err error
		*identifier, err = c.io.ReadInput("Username or Email: ")
		if err != nil {
			return fmt.Errorf("failed to read username: %w", err)
		}
	}
	if err := validation.ValidateIdentifier(*identifier); err != nil {
		return err
	}

	pass, err := c.getPassword(Passwords{FromFile: *passwordFile, FromArgs: *password})
	if err != nil {
		return err
	}
	if err := validation.ValidatePassword(pass); err != nil {
		return err
	}

	c.io.Println("Authenticating...")

	if err := c.resolver.Login(ctx, *identifier, pass); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	if id, err := c.tokens.UserID(ctx); err == nil && id != "" {
		c.io.Printf("User ID: %s\n", id)
	} else {
		c.io.Println("User ID: will be resolved on the next command")
	}
	c.io.Println("Your session has been saved.")

	return nil
}
