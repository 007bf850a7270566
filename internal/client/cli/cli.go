package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/iudanet/progressboard/internal/client/auth"
	"github.com/iudanet/progressboard/internal/client/iocli"
	"github.com/iudanet/progressboard/internal/client/session"
	"github.com/iudanet/progressboard/internal/client/stats"
)

// PasswordEnv is checked first when a password is needed.
const PasswordEnv = "PROGRESSBOARD_PASSWORD"

// Passwords are the non-interactive password sources.
type Passwords struct {
	FromFile string
	FromArgs string
}

// Querier executes GraphQL queries; api.Client implements it.
type Querier interface {
	Execute(ctx context.Context, query string, variables map[string]any, out any) error
}

type Cli struct {
	io       iocli.IO
	api      Querier
	resolver *session.Resolver
	tokens   *auth.TokenStore
	stats    *stats.Aggregator
}

func New(io iocli.IO, api Querier, resolver *session.Resolver, tokens *auth.TokenStore, agg *stats.Aggregator) *Cli {
	return &Cli{
		io:       io,
		api:      api,
		resolver: resolver,
		tokens:   tokens,
		stats:    agg,
	}
}

// Run executes one command. Errors that need a new login get a hint printed
// before they are returned.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	var err error
	switch command {
	case "login":
		err = c.runLogin(ctx, args)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "profile":
		err = c.runProfile(ctx)
	case "xp":
		err = c.runXP(ctx)
	case "grades":
		err = c.runGrades(ctx)
	case "audits":
		err = c.runAudits(ctx)
	case "skills":
		err = c.runSkills(ctx)
	case "dashboard":
		err = c.runDashboard(ctx)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}

	if err != nil && session.RequiresLogin(err) {
		c.io.Println()
		c.io.Println("Please run 'progressboard login' to authenticate.")
	}
	return err
}

// getPassword retrieves the password from various sources with priority:
// 1. Environment variable PROGRESSBOARD_PASSWORD
// 2. File specified in passwords.FromFile
// 3. Command-line parameter
// 4. Interactive prompt (fallback)
func (c *Cli) getPassword(passwords Passwords) (string, error) {
	// Priority 1: Environment variable
	if envPassword := os.Getenv(PasswordEnv); envPassword != "" {
		return envPassword, nil
	}

	// Priority 2: File
	if passwords.FromFile != "" {
		content, err := os.ReadFile(passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	// Priority 3: CLI parameter
	if passwords.FromArgs != "" {
		return passwords.FromArgs, nil
	}

	// Priority 4: Interactive prompt (fallback)
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	return password, nil
}

func (c *Cli) PrintUsage() {
	PrintUsageTo(c.io)
}

func PrintUsageTo(out iocli.IO) {
	out.Println("Progressboard")
	out.Println()
	out.Println("Usage:")
	out.Println("  progressboard [OPTIONS] COMMAND")
	out.Println()
	out.Println("Options:")
	out.Println("  -version                     Show version information")
	out.Println("  -graphql URL                 GraphQL endpoint")
	out.Println("  -auth URL                    Sign-in endpoint")
	out.Println("  -db PATH                     Path to local session database (\"\" keeps the session in memory)")
	out.Println()
	out.Println("Commands:")
	out.Println("  login [-user NAME] [-password-file PATH]   Sign in and save the session")
	out.Println("  logout                  Delete the local session")
	out.Println("  status                  Show authentication status")
	out.Println("  profile                 Show user profile and level")
	out.Println("  xp                      XP progress for the latest projects")
	out.Println("  grades                  Grades of the latest projects")
	out.Println("  audits                  Audit history")
	out.Println("  skills                  Top skills")
	out.Println("  dashboard               Profile with a summary of every view")
	out.Println()
	out.Println("Password Priority (highest to lowest):")
	out.Println("  1. PROGRESSBOARD_PASSWORD environment variable")
	out.Println("  2. -password-file (file path)")
	out.Println("  3. -password (command line)")
	out.Println("  4. Interactive prompt (fallback)")
	out.Println()
	out.Println("Examples:")
	out.Println("  progressboard login")
	out.Println("  progressboard -db ~/.progressboard.db dashboard")
	out.Println("  PROGRESSBOARD_TOP_N=5 progressboard xp")
}
