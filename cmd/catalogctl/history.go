package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history <plan-id|catalog>",
		Short: "Show the audit trail of a plan, most recent first",
		Long:  `Shows audit entries for a plan. Use "catalog" for catalog-wide reorder entries.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entityID, err := parseEntityID(args[0])
			if err != nil {
				return err
			}

			d, err := loadDeps(cmd.Context())
			if err != nil {
				return err
			}
			defer d.close()

			entries, err := d.svc.GetHistory(cmd.Context(), entityID, limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No audit entries.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ENTRY\tTIME\tACTION\tBY\tROLLBACK\tDETAILS")
			for _, e := range entries {
				by := e.PerformedBy.Email
				if by == "" {
					by = e.PerformedBy.ID.String()
				}
				rollback := "-"
				if e.CanRollback() {
					rollback = "yes"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					e.ID, e.Timestamp.Format(time.RFC3339), e.Action, by, rollback, e.Details)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum entries (0 = configured history limit)")
	return cmd
}
