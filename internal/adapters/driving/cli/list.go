package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/countries-cli/internal/adapters/driving/present"
	"github.com/custodia-labs/countries-cli/internal/core/domain"
)

var (
	listContinent string
	listSubregion string
	listTop       string
	listAlpha     bool
	listJSON      bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print countries matching a selection",
	Long: `Fetches the country listing and prints the entries that match the
given selection.

--continent and --subregion are mutually exclusive. --top keeps the 10
largest countries by population or area; --alpha then sorts that set by
name.`,
	Example: `  countries list --continent Africa --top population --alpha
  countries list --subregion "Southern Asia" --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listContinent, "continent", "c", "", "keep countries on this continent")
	listCmd.Flags().StringVarP(&listSubregion, "subregion", "r", "", "keep countries in this subregion")
	listCmd.Flags().StringVarP(&listTop, "top", "t", "", "keep the top 10 by population or area")
	listCmd.Flags().BoolVarP(&listAlpha, "alpha", "a", false, "sort by common name")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output countries as JSON")
	listCmd.MarkFlagsMutuallyExclusive("continent", "subregion")
	rootCmd.AddCommand(listCmd)
}

// listSelection builds the selection described by the list flags.
func listSelection() (domain.Selection, error) {
	mode, err := domain.ParseRankingMode(listTop)
	if err != nil {
		return domain.Selection{}, err
	}

	sel := domain.Selection{
		Continent:    listContinent,
		Subregion:    listSubregion,
		Ranking:      mode,
		Alphabetical: listAlpha,
	}
	if err := sel.Validate(); err != nil {
		return domain.Selection{}, err
	}
	return sel, nil
}

func runList(cmd *cobra.Command, _ []string) error {
	if countryService == nil {
		return errors.New("country service not configured")
	}

	sel, err := listSelection()
	if err != nil {
		return err
	}

	countries, err := countryService.Filter(cmd.Context(), sel)
	if err != nil {
		return fmt.Errorf("list countries: %w", err)
	}

	cards := present.Cards(countries)
	if listJSON {
		return outputListJSON(cmd, cards)
	}
	outputListCards(cmd, cards)
	return nil
}

func outputListJSON(cmd *cobra.Command, cards []present.Card) error {
	data, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal countries: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// outputListCards writes to stdout so the listing can be piped.
func outputListCards(cmd *cobra.Command, cards []present.Card) {
	out := cmd.OutOrStdout()
	if len(cards) == 0 {
		fmt.Fprintln(out, "No countries found.")
		return
	}

	for _, c := range cards {
		fmt.Fprintln(out, c.Title())
		for _, line := range c.Lines() {
			fmt.Fprintf(out, "  %-11s %s\n", line.Label+":", line.Value)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "%d countries\n", len(cards))
}
