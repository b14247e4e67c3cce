// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/agency-service/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down|status|check] [version]",
	Short: "Run the agency store migrations",
	Long:  `Apply, roll back or inspect the agency store schema. The DSN defaults to the DSN environment variable.`,
	Args:  cobra.MatchAll(cobra.RangeArgs(0, 2), validMigrateArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		command := "up"
		if len(args) > 0 {
			command = args[0]
		}

		version := int64(-1)
		if len(args) > 1 {
			version, _ = strconv.ParseInt(args[1], 10, 64)
		}

		dsn, _ := cmd.Flags().GetString("dsn")
		if dsn == "" {
			dsn = os.Getenv("DSN")
		}
		format, _ := cmd.Flags().GetString("format")

		m, err := newMigrator(cmd.Context(), dsn, format, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		return m.run(cmd.Context(), command, version)
	},
}

func validMigrateArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "up", "status", "check":
		if len(args) > 1 {
			return fmt.Errorf("%s takes no version", args[0])
		}
	case "down":
		if len(args) == 2 {
			if v, err := strconv.Atoi(args[1]); err != nil || v < 0 {
				return fmt.Errorf("invalid version number: %q", args[1])
			}
		}
	default:
		return fmt.Errorf("invalid migrate command: %q", args[0])
	}

	return nil
}

func init() {
	migrateCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string")
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")

	rootCmd.AddCommand(migrateCmd)
}

type migrator struct {
	provider *goose.Provider
	json     bool
	out      io.Writer
}

func newMigrator(ctx context.Context, dsn, format string, out io.Writer) (*migrator, error) {
	if dsn == "" {
		return nil, fmt.Errorf("no DSN given, use --dsn or the DSN environment variable")
	}

	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	db := stdlib.OpenDB(*config)
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	var opts []goose.ProviderOption
	if format == "json" {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}

	return &migrator{provider: provider, json: format == "json", out: out}, nil
}

func (m *migrator) run(ctx context.Context, command string, version int64) error {
	switch command {
	case "up":
		results, err := m.provider.Up(ctx)
		if err != nil {
			return err
		}
		return m.applied(results)
	case "down":
		if version < 0 {
			result, err := m.provider.Down(ctx)
			if err != nil {
				return err
			}
			return m.applied([]*goose.MigrationResult{result})
		}
		results, err := m.provider.DownTo(ctx, version)
		if err != nil {
			return err
		}
		return m.applied(results)
	case "status":
		return m.status(ctx)
	case "check":
		return m.check(ctx)
	}

	return fmt.Errorf("invalid migrate command: %q", command)
}

func (m *migrator) applied(results []*goose.MigrationResult) error {
	if m.json {
		if results == nil {
			results = []*goose.MigrationResult{}
		}
		return json.NewEncoder(m.out).Encode(map[string]any{"applied": results})
	}

	for _, r := range results {
		fmt.Fprintf(m.out, "%s %s (%s)\n", r.Direction, r.Source.Path, r.Duration)
	}
	return nil
}

func (m *migrator) status(ctx context.Context) error {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return err
	}

	if m.json {
		return json.NewEncoder(m.out).Encode(statuses)
	}

	w := tabwriter.NewWriter(m.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "APPLIED_AT\tMIGRATION")
	for _, s := range statuses {
		appliedAt := "pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%s\n", appliedAt, s.Source.Path)
	}
	return w.Flush()
}

// check fails while migrations are pending so that it can gate a deployment.
func (m *migrator) check(ctx context.Context) error {
	pending, err := m.provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	status := "ok"
	if pending {
		status = "pending"
	}

	if m.json {
		if err := json.NewEncoder(m.out).Encode(map[string]any{"status": status, "version": current}); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(m.out, "schema version %d, %s\n", current, status)
	}

	if pending {
		return fmt.Errorf("migrations are pending at version %d", current)
	}
	return nil
}
