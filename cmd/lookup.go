package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkress81/arbscout/internal/engine"
	"github.com/mkress81/arbscout/internal/ui"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [ASIN...]",
	Short: "Look up catalog listings by ASIN",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLookup,
}

func init() {
	lookupCmd.Flags().String("format", "json", "Output format: json, table")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	eng, _, err := buildEngine()
	if err != nil {
		return err
	}

	if err := eng.Submit(engine.LookupRequest{ASINs: args}); err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	spin := ui.NewSpinner()
	spin.Start(fmt.Sprintf("Looking up %d ASINs...", len(args)))
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
