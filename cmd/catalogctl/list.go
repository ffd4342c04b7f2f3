package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/plancatalog-backend/internal/domain"
)

func newListCmd() *cobra.Command {
	var public bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List plans in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := loadDeps(cmd.Context())
			if err != nil {
				return err
			}
			defer d.close()

			plans, err := d.svc.ListPlans(cmd.Context(), domain.PlanFilter{OnlyPublic: public})
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ORDER\tID\tSLUG\tPRICE\tSTATE\tVERSION")
			for _, p := range plans {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f %s/%s\t%s\t%d\n",
					p.Order, p.ID, p.Slug, p.Price, p.Currency, p.Period, planState(p), p.Version)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&public, "public", false, "only active public plans")
	return cmd
}

func planState(p *domain.Plan) string {
	switch {
	case p.IsSoftDeleted():
		return "deleted"
	case p.IsActive && p.IsPublic:
		return "public"
	case p.IsActive:
		return "active"
	default:
		return "hidden"
	}
}
