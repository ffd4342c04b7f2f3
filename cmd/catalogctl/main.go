// Command catalogctl is the operator CLI for the plan catalog: schema
// migrations, audit history, rollback, reordering and dev access tokens.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/plancatalog-backend/internal/app"
)

// configPath is bound to the --config persistent flag.
var configPath string

func main() {
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Operate the subscription plan catalog",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"),
		"path to the YAML config file (default ./config.yaml if present)")

	root.AddCommand(
		newMigrateCmd(),
		newListCmd(),
		newHistoryCmd(),
		newRollbackCmd(),
		newReorderCmd(),
		newTokenCmd(),
	)
	return root
}
