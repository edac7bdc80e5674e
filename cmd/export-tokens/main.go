// Command export-tokens reads the cached 115 token pair from the SQLite
// cache database and emits it in dotenv format, either to stdout or
// upserted into an env file. The database is opened strictly read-only;
// the external 115 client remains the only writer.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mhollis/cache115/internal/adapter/driven/envfile"
	sqliteadapter "github.com/mhollis/cache115/internal/adapter/driven/sqlite"
	"github.com/mhollis/cache115/internal/application"
	"github.com/mhollis/cache115/internal/config"
	"github.com/mhollis/cache115/internal/domain/port/driven"
)

func main() {
	if err := run(context.Background(), os.Args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	cmd := &cli.Command{
		Name:      "export-tokens",
		Usage:     "export cached 115 tokens from the SQLite cache in .env format",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "persist",
				Usage: "upsert the tokens into an env file instead of printing them",
				Value: cfg.PersistTokens,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "env file updated by --persist",
				Value:   cfg.TokenStorePath,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dbPath := cfg.DBPath
			if arg := cmd.Args().First(); arg != "" {
				dbPath = arg
			}
			return export(ctx, dbPath, cmd.Bool("persist"), cmd.String("output"), stdout)
		},
	}

	return cmd.Run(ctx, args)
}

// export runs the single read-print operation. The store handle is
// released on every exit path, and stdout is written all-or-nothing.
func export(ctx context.Context, dbPath string, persist bool, outPath string, stdout io.Writer) error {
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

	svc := application.NewExportService(sqliteadapter.NewTokenRepo(db))

	if persist {
		store, err := envfile.NewStore(outPath)
		if err != nil {
			return err
		}
		return describe(svc.Persist(ctx, store), dbPath)
	}

	return describe(svc.ExportTo(ctx, stdout), dbPath)
}

// describe turns the missing-row sentinel into the operator-facing
// message naming the path, so "token not yet issued" reads differently
// from "wrong path" and "corrupt cache". Other errors pass through with
// the driver's detail.
func describe(err error, dbPath string) error {
	if errors.Is(err, driven.ErrNoTokens) {
		return fmt.Errorf("no tokens found in cache database %q (expected row with id=1)", dbPath)
	}
	return err
}
