package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/dims/config"
	"github.com/teranos/dims/display"
	"github.com/teranos/dims/errors"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage dims configuration",
		Long: `Display and manage dims configuration settings.

Configuration sources (later overrides earlier):
1. Default values
2. System config (/etc/dims/dims.toml)
3. User config (~/.dims/dims.toml)
4. Project config (nearest dims.toml, searching up directories)
5. Environment variables (DIMS_* prefix)

Examples:
  dims config show                         # Show current configuration
  dims config show --format json           # Show configuration in JSON format
  dims config get output.prefix            # Get specific config value
  dims config set output.prefix engineering
  dims config where                        # Show where each value came from
  dims config validate                     # Validate current configuration`,
	}
	cmd.AddCommand(
		newConfigShowCmd(),
		newConfigGetCmd(),
		newConfigSetCmd(),
		newConfigWhereCmd(),
		newConfigValidateCmd(),
	)
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var configFormat string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}
			if display.ShouldOutputJSON(cmd) {
				configFormat = "json"
			}
			data, err := marshalConfig(cfg, configFormat)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")
	return cmd
}

func marshalConfig(cfg *config.Config, configFormat string) ([]byte, error) {
	switch configFormat {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to JSON")
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to YAML")
		}
		return append([]byte("# dims configuration\n"), data...), nil
	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to TOML")
		}
		return append([]byte("# dims configuration\n"), data...), nil
	default:
		return nil, errors.NewInvalidRequestError("unsupported format: %s (supported: toml, json, yaml)", configFormat)
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a specific configuration value",
		Long:  "Get a specific configuration value using dot notation (e.g., output.prefix, convert.systems)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !config.GetViper().IsSet(key) {
				return errors.NewNotFoundError("configuration key %q", key)
			}
			value := config.Get(key)
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(cmd, map[string]interface{}{key: value})
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Write a value to the user configuration file",
		Long: `Write a value to ~/.dims/dims.toml. The previous file is kept as
dims.toml.back1 (older copies rotate to .back2 and .back3). Lists are
written comma separated, e.g. "cgs, si".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Set(args[0], args[1]); err != nil {
				return err
			}
			display.Success(cmd.OutOrStdout(), "%s = %s", args[0], args[1])
			return nil
		},
	}
}

func newConfigWhereCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "where",
		Short: "Show where each configuration value comes from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := config.Settings()
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(cmd, settings)
			}
			rows := make([][]string, len(settings))
			for i, s := range settings {
				rows[i] = []string{s.Key, fmt.Sprint(s.Value), string(s.Source), s.SourcePath}
			}
			return display.Table(cmd.OutOrStdout(), []string{"Key", "Value", "Source", "From"}, rows)
		},
	}
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}
			if err := cfg.Validate(); err != nil {
				return errors.Wrap(err, "configuration validation failed")
			}
			display.Success(cmd.OutOrStdout(), "Configuration is valid")
			return nil
		},
	}
}
