package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/budget/internal/buildinfo"
	"github.com/cleared-dev/budget/internal/config"
	"github.com/cleared-dev/budget/internal/ledger"
	"github.com/cleared-dev/budget/internal/menu"
	"github.com/cleared-dev/budget/internal/report"
)

// NewRootCommand creates the budget command, which runs the interactive menu.
func NewRootCommand() *cobra.Command {
	var configPath, file, currency string

	rootCmd := &cobra.Command{
		Use:     "budget",
		Short:   "Personal income and expense ledger",
		Version: buildinfo.String(),
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, configPath)
			if err != nil {
				return err
			}
			if file != "" {
				cfg.Storage.Path = file
			}
			if currency != "" {
				cfg.Display.Currency = currency
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			money, err := report.NewFormatter(cfg.Display.Currency)
			if err != nil {
				return err
			}
			store := ledger.NewStore(cfg.Storage.Path)
			return menu.Run(cmd.Context(), store, money, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", config.DefaultFile, "config file (optional)")
	rootCmd.Flags().StringVar(&file, "file", "", "ledger file (overrides storage.path)")
	rootCmd.Flags().StringVar(&currency, "currency", "", "display currency (overrides display.currency)")

	return rootCmd
}

// resolveConfig loads the config file. A config named with --config must be
// valid; the implicit budget.yaml in the working directory only produces a
// warning and the defaults when it is broken.
func resolveConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	explicit := cmd.Flags().Changed("config")

	cfg, err := config.LoadOrDefault(path)
	if err == nil {
		err = cfg.Validate()
	}
	if err == nil {
		return cfg, nil
	}
	if explicit {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "[WARNING] Ignoring %s: %v. Using defaults.\n", path, err)
	return config.Default(), nil
}
