package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgertree/ledgertree/internal/ledger"
)

func newCheckCommand() *cobra.Command {
	var repo, snapshot string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report malformed accounts, unparseable balances and invalid postings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, repo)
			if err != nil {
				return err
			}
			snap, err := loadSnapshot(cmd.Context(), repo, snapshot, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, problems := snap.Tree(ledger.TreeOptions{Primary: cfg.Display.PrimaryCommodity})
			for _, e := range problems.Errors() {
				fmt.Fprintf(out, "FAIL: %s\n", e)
			}
			verrs := snap.Validate()
			for _, ve := range verrs {
				fmt.Fprintf(out, "FAIL: %s\n", ve)
			}

			total := problems.Len() + len(verrs)
			if total > 0 {
				return fmt.Errorf("%d problems found", total)
			}
			fmt.Fprintf(out, "OK: %d accounts, %d postings\n", len(snap.Accounts), len(snap.Postings))
			return nil
		},
	}

	addRepoFlag(cmd.Flags(), &repo)
	cmd.Flags().StringVar(&snapshot, "snapshot", "", "check a JSON snapshot instead of the ledger files")

	return cmd
}
