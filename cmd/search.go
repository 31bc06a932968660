package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkress81/arbscout/internal/engine"
	"github.com/mkress81/arbscout/internal/ui"
)

var searchCmd = &cobra.Command{
	Use:   "search [keywords]",
	Short: "Search catalog listings by keyword",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringArray("category", []string{"All"}, "Category to search (repeatable)")
	searchCmd.Flags().Float64("min-price", 0, "Minimum price in dollars (ignored for wildcard categories)")
	searchCmd.Flags().Float64("max-price", 0, "Maximum price in dollars (ignored for wildcard categories)")
	searchCmd.Flags().String("format", "json", "Output format: json, table")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	keywords := args[0]
	categories, _ := cmd.Flags().GetStringArray("category")
	minPrice, _ := cmd.Flags().GetFloat64("min-price")
	maxPrice, _ := cmd.Flags().GetFloat64("max-price")
	format, _ := cmd.Flags().GetString("format")

	eng, cats, err := buildEngine()
	if err != nil {
		return err
	}

	tokens := make([]string, 0, len(categories))
	for _, c := range categories {
		tok, err := resolveCategory(cats, c)
		if err != nil {
			return err
		}
		tokens = append(tokens, tok)
	}

	req := engine.SearchRequest{
		Keywords:   keywords,
		Categories: tokens,
		MinPrice:   toCents(minPrice),
		MaxPrice:   toCents(maxPrice),
	}
	if err := eng.Submit(req); err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	spin := ui.NewSpinner()
	spin.Start(fmt.Sprintf("Searching %q...", keywords))
	listings := engine.Drain(eng, spin.Update)
	spin.Stop()

	switch format {
	case "table":
		printListingsTable(listings)
	default:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(listings)
	}

	return nil
}

// toCents converts a dollar amount to minor currency units.
func toCents(dollars float64) int64 {
	if dollars <= 0 {
		return 0
	}
	return int64(math.Round(dollars * 100))
}
