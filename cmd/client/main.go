package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/progressboard/internal/client/api"
	"github.com/iudanet/progressboard/internal/client/auth"
	"github.com/iudanet/progressboard/internal/client/cli"
	"github.com/iudanet/progressboard/internal/client/config"
	"github.com/iudanet/progressboard/internal/client/iocli"
	"github.com/iudanet/progressboard/internal/client/session"
	"github.com/iudanet/progressboard/internal/client/stats"
	"github.com/iudanet/progressboard/internal/client/storage"
	"github.com/iudanet/progressboard/internal/client/storage/boltdb"
	"github.com/iudanet/progressboard/internal/client/storage/memory"
	"github.com/iudanet/progressboard/internal/logger"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// sessionStore is a SessionStorage that owns resources.
type sessionStore interface {
	storage.SessionStorage
	Close() error
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Глобальные флаги, значения по умолчанию берутся из окружения
	showVersion := flag.Bool("version", false, "Show version information")
	graphqlURL := flag.String("graphql", cfg.Client.GraphQLURL, "GraphQL endpoint URL")
	authURL := flag.String("auth", cfg.Client.AuthURL, "Sign-in endpoint URL")
	dbPath := flag.String("db", cfg.Client.DBPath, "Path to local session database (empty keeps the session in memory)")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		return 0
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsageTo(iocli.NewStdio())
		return 1
	}

	log := logger.New(cfg.LogLevel, os.Stderr)
	log.SetDefault()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(ctx, *dbPath)
	if err != nil {
		stop()
		log.Fatal("failed to open database", "path", *dbPath, "error", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	tokens := auth.NewTokenStore(store)
	apiClient := api.NewClient(*graphqlURL, *authURL, tokens, api.WithTimeout(cfg.Client.Timeout))
	resolver := session.NewResolver(apiClient, tokens)
	aggregator := stats.New(cfg.Client.ExcludedPaths, cfg.Client.TopN)

	c := cli.New(iocli.NewStdio(), apiClient, resolver, tokens, aggregator)

	// Выполняем команду
	if err := c.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func openStorage(ctx context.Context, dbPath string) (sessionStore, error) {
	if dbPath == "" {
		slog.Debug("using in-memory session storage")
		return memory.New(), nil
	}
	return boltdb.New(ctx, dbPath)
}

func printVersion() {
	fmt.Printf("Progressboard\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
