// Package cli provides the cobra command tree for countries.
// It is a driving adapter: commands translate flags into domain selections
// and call the core through driving ports.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/countries-cli/internal/core/ports/driven"
	"github.com/custodia-labs/countries-cli/internal/core/ports/driving"
	"github.com/custodia-labs/countries-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	countryService driving.CountryService
	configStore    driven.ConfigStore
	configErr      error
	verboseFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "countries",
	Short: "Browse the world's countries from the terminal",
	Long: `countries fetches the REST Countries listing once and lets you narrow it
by continent or subregion, keep the top 10 by population or area, and sort
the result alphabetically.

Run without a subcommand to open the interactive view. When output is not
a terminal the full list is printed instead.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verboseFlag {
			logger.SetVerbose(true)
		}
	},
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "print diagnostic output to stderr")
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetCountryService sets the country service used by all commands.
func SetCountryService(s driving.CountryService) {
	countryService = s
}

// SetConfigStore sets the configuration store used by the config command.
func SetConfigStore(s driven.ConfigStore) {
	configStore = s
}

// SetConfigError records why the configuration store is unavailable.
// The config command reports it; other commands run on defaults.
func SetConfigError(err error) {
	configErr = err
}

func runRoot(cmd *cobra.Command, args []string) error {
	if isTerminal(cmd.OutOrStdout()) {
		return runTUI(cmd, args)
	}
	return runList(cmd, args)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
