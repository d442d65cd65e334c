package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/pagekit/internal/config"
	"github.com/rshade/pagekit/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the pagekit CLI.
// It wires up the config overlay, logging and tracing, then the subcommands
// (show, nav, buttons, browse, config).
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "pagekit",
		Short:   "Offset/limit pagination calculator and page browser",
		Long:    "pagekit: Derive page number, page count, record range and page buttons from offset, limit and total",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyConfigOverlay(cmd); err != nil {
				return err
			}

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "YAML file merged over the user config for this run")
	cmd.AddCommand(NewShowCmd(), NewNavCmd(), NewButtonsCmd(), NewBrowseCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Show page metadata for records 41-60 of 120
  pagekit show --start 40 --limit 20 --total 120

  # Same page, selected by page number, as JSON
  pagekit show --page 3 --limit 20 --total 120 --output json

  # Offset of the next page
  pagekit nav next --start 40 --limit 20 --total 120

  # Page buttons around page 5
  pagekit buttons --page 5 --limit 20 --total 120 --buttons-max 5

  # Browse 500 records interactively
  pagekit browse --total 500 --limit 25

  # Set configuration values
  pagekit config set pagination.limit 25`

// applyConfigOverlay merges the --config file, if given, into the global
// configuration. Environment overrides are re-applied so they keep precedence.
func applyConfigOverlay(cmd *cobra.Command) error {
	overlay, _ := cmd.Flags().GetString("config")
	if overlay == "" {
		return nil
	}

	cfg := *config.GetGlobalConfig()
	if err := config.ShallowMergeYAML(&cfg, overlay); err != nil {
		return fmt.Errorf("applying --config: %w", err)
	}
	cfg.ApplyEnvOverrides()
	config.SetGlobalConfig(&cfg)
	return nil
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
