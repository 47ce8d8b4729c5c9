package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgertree/ledgertree/internal/budget"
	"github.com/ledgertree/ledgertree/internal/render"
)

// budgetReport is the JSON shape of the budget command.
type budgetReport struct {
	Categories []budget.CategorySummary `json:"categories"`
	Totals     []budget.CategorySummary `json:"totals"`
}

func newBudgetCommand() *cobra.Command {
	var repo, output string

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Show budget categories with assigned, activity and available totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := render.CheckFormat(output); err != nil {
				return err
			}
			cfg, err := resolveConfig(cmd, repo)
			if err != nil {
				return err
			}
			snap, err := loadSnapshot(cmd.Context(), repo, "", cfg)
			if err != nil {
				return err
			}

			summaries := snap.Budgets(cfg.Display.PrimaryCommodity)
			out := cmd.OutOrStdout()
			if output == render.FormatJSON {
				return render.WriteJSON(out, budgetReport{
					Categories: summaries,
					Totals:     budget.Totals(summaries),
				})
			}
			if len(summaries) == 0 {
				fmt.Fprintln(out, "No budget items.")
				return nil
			}
			fmt.Fprintln(out, render.BudgetTable(summaries))
			return nil
		},
	}

	addRepoFlag(cmd.Flags(), &repo)
	cmd.Flags().StringVarP(&output, "output", "o", render.FormatTable, "output format: table or json")
	cmd.Flags().String("primary", "", "commodity for items that name none")

	return cmd
}
