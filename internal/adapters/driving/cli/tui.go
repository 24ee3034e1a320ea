package cli

import (
	"bytes"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/countries-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/countries-cli/internal/core/services"
	"github.com/custodia-labs/countries-cli/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for countries.

The TUI shows the country cards below a row of filter controls. The
listing is fetched once at startup; controls work while it loads.

Controls:
  Tab/Shift+Tab - Move between controls
  ←/h, →/l      - Change the focused dropdown
  Enter/Space   - Press the focused button
  p / a         - Top 10 by population / area
  x             - Clear the top 10 ranking
  s             - Toggle alphabetical sort
  ↑/k, ↓/j      - Scroll cards
  ?             - Toggle help
  q             - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Log output would corrupt the alternate screen; hold it until exit.
	var logBuf bytes.Buffer
	logger.SetOutput(&logBuf)
	defer func() {
		logger.SetOutput(os.Stderr)
		if logBuf.Len() > 0 {
			cmd.ErrOrStderr().Write(logBuf.Bytes()) //nolint:errcheck
		}
	}()

	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(&logBuf, "Panic in TUI: %v\n", r)
			fmt.Fprintf(&logBuf, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	ports := tui.NewPorts(countryService, services.NewExplorer())

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
