// Command cachestat prints a read-only summary of the 115 cache
// database: token presence and age, cached directory and file counts,
// and total cached size. Token values themselves are never printed.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	sqliteadapter "github.com/mhollis/cache115/internal/adapter/driven/sqlite"
	"github.com/mhollis/cache115/internal/application"
	"github.com/mhollis/cache115/internal/config"
)

func main() {
	if err := run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	cmd := &cli.Command{
		Name:      "cachestat",
		Usage:     "summarize the 115 cache database without exposing token values",
		ArgsUsage: "[path]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dbPath := cfg.DBPath
			if arg := cmd.Args().First(); arg != "" {
				dbPath = arg
			}
			return stat(ctx, dbPath, os.Stdout)
		},
	}

	return cmd.Run(ctx, args)
}

func stat(ctx context.Context, dbPath string, stdout io.Writer) error {
	if _, err := os.Stat(dbPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("cache database %q not found", dbPath)
		}
		return fmt.Errorf("stat cache database %q: %w", dbPath, err)
	}

	db, err := sqliteadapter.OpenReadOnly(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	svc := application.NewStatsService(sqliteadapter.NewCacheRepo(db))
	return svc.Render(ctx, stdout, time.Now())
}
