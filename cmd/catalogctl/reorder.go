package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/plancatalog-backend/internal/domain"
)

func newReorderCmd() *cobra.Command {
	var actorID, actorEmail string
	cmd := &cobra.Command{
		Use:   "reorder <plan-id>...",
		Short: "Set catalog order; the first id gets order 0",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]uuid.UUID, len(args))
			for i, a := range args {
				id, err := uuid.Parse(a)
				if err != nil {
					return fmt.Errorf("invalid plan id %q: %w", a, err)
				}
				ids[i] = id
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

			err = d.svc.ReorderPlans(cmd.Context(), ids, actor)
			var warn *domain.AuditWarning
			if err != nil && !errors.As(err, &warn) {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reordered %d plans.\n", len(ids))
			if warn != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", warn)
			}
			return nil
		},
	}
	actorFlags(cmd, &actorID, &actorEmail)
	return cmd
}
