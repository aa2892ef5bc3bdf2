package main

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/target/storefront-admin/internal/bootstrap"
	"github.com/target/storefront-admin/internal/migrate"
)

var errNoDatabase = errors.New("database is disabled; set DB_ENABLED=true")

func newMigrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending audit trail migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			db, err := a.openDB(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := bootstrap.RunMigrations(ctx, db, a.logger); err != nil {
				return err
			}
			return writef(cmd.OutOrStdout(), "migrations applied\n")
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List embedded migrations and when they were applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			db, err := a.openDB(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			migrations, err := migrate.Status(ctx, db)
			if err != nil {
				return fmt.Errorf("migration status: %w", err)
			}
			return printMigrations(cmd.OutOrStdout(), migrations)
		},
	})
	return cmd
}

func (a *app) openDB(cmd *cobra.Command) (*sql.DB, error) {
	if !a.cfg.Postgres.Enabled {
		return nil, errNoDatabase
	}
	db, err := bootstrap.ConnectDB(cmd.Context(), bootstrap.DatabaseConfig{
		DBConfig: a.cfg.Postgres,
		Logger:   a.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	return db, nil
}

func printMigrations(w io.Writer, migrations []migrate.Migration) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := writef(tw, "VERSION\tAPPLIED\n"); err != nil {
		return err
	}
	for _, m := range migrations {
		applied := "pending"
		if m.Applied() {
			applied = m.AppliedAt.UTC().Format(time.RFC3339)
		}
		if err := writef(tw, "%s\t%s\n", m.Version, applied); err != nil {
			return err
		}
	}
	return tw.Flush()
}
