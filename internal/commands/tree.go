package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgertree/ledgertree/internal/config"
	"github.com/ledgertree/ledgertree/internal/ledger"
	"github.com/ledgertree/ledgertree/internal/render"
)

func newTreeCommand() *cobra.Command {
	var repo, snapshot, output string

	cmd := &cobra.Command{
		Use:   "tree [account]",
		Short: "Show the account tree with rolled-up balances",
		Long: `Show the account tree with every node's balances rolled up from its
descendants. Pass an account path to show only that subtree.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := render.CheckFormat(output); err != nil {
				return err
			}
			cfg, err := resolveConfig(cmd, repo)
			if err != nil {
				return err
			}
			snap, err := loadSnapshot(cmd.Context(), repo, snapshot, cfg)
			if err != nil {
				return err
			}

			root, problems := snap.Tree(ledger.TreeOptions{
				Primary:    cfg.Display.PrimaryCommodity,
				HideClosed: cfg.Display.HideClosed,
				HideZero:   cfg.Display.HideZero,
			})
			if cfg.Strict && problems.Len() > 0 {
				return fmt.Errorf("strict mode: %d malformed records: %w", problems.Len(), problems.Err())
			}

			node := root
			if len(args) > 0 {
				var ok bool
				if node, ok = root.Find(args[0]); !ok {
					return fmt.Errorf("account %s not found", args[0])
				}
			}

			out := cmd.OutOrStdout()
			if output == render.FormatJSON {
				return render.WriteJSON(out, render.NewTreeView(node))
			}
			fmt.Fprintln(out, render.TreeTable(render.TreeRows(node)))
			return nil
		},
	}

	addRepoFlag(cmd.Flags(), &repo)
	cmd.Flags().StringVar(&snapshot, "snapshot", "", "read accounts and balances from a JSON snapshot instead of the ledger files")
	cmd.Flags().StringVarP(&output, "output", "o", render.FormatTable, "output format: table or json")
	addDisplayFlags(cmd.Flags())

	return cmd
}

// loadSnapshot reads the JSON snapshot when one is given, otherwise the
// ledger directory.
func loadSnapshot(ctx context.Context, repo, snapshot string, cfg *config.Config) (*ledger.Snapshot, error) {
	if snapshot != "" {
		return ledger.LoadJSON(snapshot)
	}
	return ledger.Load(ctx, repo, cfg)
}
