package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/plancatalog-backend/internal/adapter/postgres"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate <up|down|status>",
		Short:     "Apply, roll back or inspect schema migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE:      runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	m, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close()

	out := cmd.OutOrStdout()
	switch args[0] {
	case "up":
		applied, err := m.Up(ctx)
		if err != nil {
			return err
		}
		if len(applied) == 0 {
			fmt.Fprintln(out, "Schema is up to date.")
			return nil
		}
		for _, v := range applied {
			fmt.Fprintf(out, "Applied %05d\n", v)
		}
	case "down":
		v, err := m.Down(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Rolled back %05d\n", v)
	case "status":
		states, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range states {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			fmt.Fprintf(out, "%05d  %-8s %s\n", s.Version, state, s.Path)
		}
	}
	return nil
}
