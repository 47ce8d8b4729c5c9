package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ledgertree/ledgertree/internal/config"
)

// EnvPrefix prefixes the environment overrides, e.g. LEDGERTREE_STRICT.
const EnvPrefix = "LEDGERTREE"

const (
	keyPrimary    = "primary_commodity"
	keyHideClosed = "hide_closed"
	keyHideZero   = "hide_zero"
	keyStrict     = "strict"
)

// flagKeys maps command-line flags to their settings keys.
var flagKeys = map[string]string{
	"primary":     keyPrimary,
	"hide-closed": keyHideClosed,
	"hide-zero":   keyHideZero,
	"strict":      keyStrict,
}

// addDisplayFlags registers the flags that override the display section.
func addDisplayFlags(flags *pflag.FlagSet) {
	flags.String("primary", "", "commodity for calculated totals")
	flags.Bool("hide-closed", false, "leave closed accounts out of the tree")
	flags.Bool("hide-zero", false, "leave zero-balance accounts out of the tree")
	flags.Bool("strict", false, "fail on any malformed account or balance")
}

// addRepoFlag registers --repo, the ledger directory.
func addRepoFlag(flags *pflag.FlagSet, repo *string) {
	flags.StringVar(repo, "repo", ".", "ledger directory")
}

// resolveConfig loads the ledger's config file and applies environment
// and flag overrides on top. Precedence: flag, environment, file.
func resolveConfig(cmd *cobra.Command, dir string) (*config.Config, error) {
	cfg, err := config.LoadDir(dir)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault(keyPrimary, cfg.Display.PrimaryCommodity)
	v.SetDefault(keyHideClosed, cfg.Display.HideClosed)
	v.SetDefault(keyHideZero, cfg.Display.HideZero)
	v.SetDefault(keyStrict, cfg.Strict)
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return nil, err
	}

	cfg.Display.PrimaryCommodity = v.GetString(keyPrimary)
	cfg.Display.HideClosed = v.GetBool(keyHideClosed)
	cfg.Display.HideZero = v.GetBool(keyHideZero)
	cfg.Strict = v.GetBool(keyStrict)
	return cfg, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}
