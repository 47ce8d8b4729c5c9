package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ledgertree/ledgertree/internal/accounts"
	"github.com/ledgertree/ledgertree/internal/journal"
)

func newAddCommand() *cobra.Command {
	var (
		repo      string
		date      string
		from      string
		to        string
		amountStr string
		commodity string
		narration string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transfer between two accounts",
		Long: `Record a balanced transaction that moves an amount from one account to
another. The amount leaves --from and arrives in --to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, repo)
			if err != nil {
				return err
			}

			d := time.Now()
			if date != "" {
				if d, err = time.Parse("2006-01-02", date); err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
			}
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountStr, err)
			}
			if commodity == "" {
				commodity = cfg.Display.PrimaryCommodity
			}
			if commodity == "" {
				return errors.New("no commodity: pass --commodity or set display.primary_commodity")
			}

			accts, err := accounts.LoadFile(filepath.Join(repo, cfg.Files.Accounts))
			if err != nil {
				return err
			}
			svc := journal.NewFileService(filepath.Join(repo, cfg.Files.Journal), accts)
			txn, err := svc.Transfer(journal.TransferParams{
				Date:      d,
				From:      from,
				To:        to,
				Commodity: commodity,
				Amount:    amount,
				Narration: narration,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s: %s %s from %s to %s\n", txn, amount, commodity, from, to)
			return nil
		},
	}

	addRepoFlag(cmd.Flags(), &repo)
	cmd.Flags().StringVar(&date, "date", "", "transaction date, YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&from, "from", "", "account the amount leaves (required)")
	cmd.Flags().StringVar(&to, "to", "", "account the amount arrives in (required)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "positive amount (required)")
	cmd.Flags().StringVar(&commodity, "commodity", "", "commodity (default: primary commodity)")
	cmd.Flags().StringVar(&narration, "narration", "", "description")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
