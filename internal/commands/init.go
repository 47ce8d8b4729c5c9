package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ledgertree/ledgertree/internal/accounts"
	"github.com/ledgertree/ledgertree/internal/budget"
	"github.com/ledgertree/ledgertree/internal/config"
	"github.com/ledgertree/ledgertree/internal/journal"
	"github.com/ledgertree/ledgertree/internal/prices"
)

func newInitCommand() *cobra.Command {
	var name string
	var primary string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ledger directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			if name == "" {
				name = filepath.Base(absDir)
			}

			if err := runInit(absDir, name, primary); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized ledger %q at %s\n", name, absDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "ledger name (default: directory name)")
	cmd.Flags().StringVar(&primary, "primary", "USD", "primary commodity for calculated totals")

	return cmd
}

func runInit(dir, name, primary string) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("ledger already initialized: %s exists", cfgPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", cfgPath, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	cfg := config.Default(name, primary)
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	svc := accounts.NewService(accounts.DefaultChart())
	if err := svc.Save(dir); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}

	// Data files start with just their header.
	headers := map[string]string{
		cfg.Files.Journal: journal.Header,
		cfg.Files.Budgets: budget.Header,
		cfg.Files.Prices:  prices.Header,
	}
	for file, header := range headers {
		if err := os.WriteFile(filepath.Join(dir, file), []byte(header+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", file, err)
		}
	}

	return nil
}
