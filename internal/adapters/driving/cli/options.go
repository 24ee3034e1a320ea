package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/countries-cli/internal/core/domain"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Show the continent and subregion choices",
	Run: func(cmd *cobra.Command, _ []string) {
		printOptions(cmd, "Continents", domain.ContinentOptions())
		cmd.Println()
		printOptions(cmd, "Subregions", domain.SubregionOptions())
		cmd.Println()
		cmd.Println("Rankings:")
		for _, m := range []domain.RankingMode{domain.RankingPopulation, domain.RankingArea} {
			cmd.Printf("  %-11s %s\n", m, m.Description())
		}
	},
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}

func printOptions(cmd *cobra.Command, heading string, opts []domain.Option) {
	cmd.Printf("%s:\n", heading)
	for _, o := range opts {
		if o.Value == "" {
			continue
		}
		cmd.Printf("  %s\n", o.Label)
	}
}
