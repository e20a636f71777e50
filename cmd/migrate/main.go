// Command migrate applies the embedded schema migrations: migrate [up|down|status].
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"registry/config"
	"registry/internal/errors"
	logs "registry/internal/infra/log"
	"registry/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

const migrateTimeout = 2 * time.Minute

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: migrate [up|down|status]")
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0)); err != nil {
		slog.Error("Migration failed", slog.String("command", flag.Arg(0)), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(command string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to connect to PostgreSQL")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	switch command {
	case "up":
		err = migrations.Up(ctx, sqlDB)
	case "down":
		err = migrations.Down(ctx, sqlDB)
	case "status":
		var statuses []*goose.MigrationStatus
		statuses, err = migrations.Status(ctx, sqlDB)
		for _, st := range statuses {
			logger.Info("Migration",
				slog.Int64("version", st.Source.Version),
				slog.String("path", st.Source.Path),
				slog.String("state", string(st.State)),
			)
		}
	default:
		return errors.Errorf("unknown command %q", command)
	}
	if err != nil {
		return err
	}

	logger.Info("Migration finished", slog.String("command", command))

	return nil
}
