package cli

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/countries-cli/internal/core/domain"
	"github.com/custodia-labs/countries-cli/internal/core/ports/driven"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or change configuration",
	Long: `View or change the settings stored in ~/.countries/config.toml.

Keys:
  api.url   endpoint returning the country listing
  verbose   print diagnostic output on every run (true/false)`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if err := requireConfigStore(); err != nil {
		return err
	}

	cmd.Printf("Config file: %s\n\n", configStore.Path())

	values := configStore.All()
	if len(values) == 0 {
		cmd.Println("No settings configured.")
		return nil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		cmd.Printf("  %s = %v\n", k, values[k])
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := requireConfigStore(); err != nil {
		return err
	}

	key := args[0]
	value, err := parseConfigValue(key, args[1])
	if err != nil {
		return err
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}

	cmd.Printf("%s = %v\n", key, value)
	return nil
}

// requireConfigStore explains why the config command cannot run.
func requireConfigStore() error {
	if configStore != nil {
		return nil
	}
	if configErr != nil {
		return fmt.Errorf("config store unavailable: %w", configErr)
	}
	return errors.New("config store not configured")
}

// parseConfigValue converts raw command-line input to the type stored for key.
func parseConfigValue(key, raw string) (any, error) {
	switch key {
	case driven.ConfigKeyAPIURL:
		u, err := url.ParseRequestURI(raw)
		if err != nil || u.Host == "" {
			return nil, fmt.Errorf("%w: %s must be an absolute URL", domain.ErrInvalidInput, key)
		}
		return raw, nil
	case driven.ConfigKeyVerbose:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: unknown config key %q", domain.ErrInvalidInput, key)
	}
}
