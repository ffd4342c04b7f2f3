package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/plancatalog-backend/internal/domain"
)

func newRollbackCmd() *cobra.Command {
	var actorID, actorEmail string
	cmd := &cobra.Command{
		Use:   "rollback <plan-id> <audit-entry-id>",
		Short: "Restore a plan to the state before an audit entry",
		Long: "Restores the plan to the snapshot recorded as the previous state of the given entry. " +
			"Changes made after that entry are discarded, not replayed.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			planID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid plan id %q: %w", args[0], err)
			}
			entryID, err := uuid.Parse(args[1])
			if err != nil {
				return fmt.Errorf("invalid audit entry id %q: %w", args[1], err)
			}
			actor, err := parseActor(actorID, actorEmail)
			if err != nil {
				return err
			}

			d, err := loadDeps(cmd.Context())
			if err != nil {
				return err
			}
			defer d.close()

			p, err := d.svc.RollbackToEntry(cmd.Context(), planID, entryID, actor)
			var warn *domain.AuditWarning
			if err != nil && !errors.As(err, &warn) {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Plan %s restored: slug=%s version=%d\n", p.ID, p.Slug, p.Version)
			if warn != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", warn)
			}
			return nil
		},
	}
	actorFlags(cmd, &actorID, &actorEmail)
	return cmd
}
