package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/pagekit/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates ~/.pagekit/config.yaml (or $PAGEKIT_HOME/config.yaml) holding the
built-in defaults.`,
		Example: `  # Create configuration
  pagekit config init

  # Create configuration, overwriting existing
  pagekit config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}

			// Check if config already exists and force isn't set
			if !force {
				if _, statErr := os.Stat(path); statErr == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				} else if !os.IsNotExist(statErr) {
					return fmt.Errorf("cannot access config path %s: %w", path, statErr)
				}
			}

			if err = config.Default().Save(path); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			cmd.Printf("Configuration initialized successfully\n")
			cmd.Printf("Configuration file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

// NewConfigGetCmd creates the config get command.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a configuration value",
		Example: `  pagekit config get pagination.limit
  pagekit config get output.default_format`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}

// NewConfigSetCmd creates the config set command. The value is validated before
// the file is written.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Example: `  pagekit config set pagination.limit 25
  pagekit config set output.default_format json`,
		Args: cobra.ExactArgs(2), //nolint:mnd // Key and value.
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}

			// Start from the file alone so environment overrides are not persisted.
			cfg, err := config.Load(path)
			if errors.Is(err, os.ErrNotExist) {
				cfg, err = config.Default(), nil
			}
			if err != nil {
				return err
			}

			if err = cfg.Set(key, value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", key, err)
			}
			if err = cfg.Save(path); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			logger.Debug().Ctx(cmd.Context()).Str("key", key).Str("value", value).Msg("config value set")
			cmd.Printf("Set %s = %s\n", key, value)
			return nil
		},
	}
}

// NewConfigListCmd creates the config list command, which prints every key with
// its effective value.
func NewConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List effective configuration values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
			fmt.Fprintln(w, "Key\tValue")
			fmt.Fprintln(w, "---\t-----")
			for _, key := range config.Keys() {
				value, err := cfg.Get(key)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", key, value)
			}
			return w.Flush()
		},
	}
}

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax, value ranges and schema_version
compatibility.`,
		Example: `  # Validate current configuration
  pagekit config validate

  # Validate and show detailed information
  pagekit config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}

			cfg, err := config.Load(path)
			switch {
			case errors.Is(err, os.ErrNotExist):
				cmd.Printf("No configuration file at %s, using defaults\n", path)
				cfg = config.Default()
			case err != nil:
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			cmd.Printf("Configuration is valid\n")
			if verbose {
				printVerboseDetails(cmd, cfg)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Schema version: %s\n", cfg.SchemaVersion)
	cmd.Printf("  Page size: %d\n", cfg.Pagination.Limit)
	cmd.Printf("  Page buttons: %d\n", cfg.Pagination.ButtonsMax)
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
}
