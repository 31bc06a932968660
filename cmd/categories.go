package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkress81/arbscout/config"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the configured search categories",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	cats, err := config.LoadCategories(cfg.CategoryFile)
	if err != nil {
		return err
	}

	fmt.Printf("Categories (%s):\n\n", cfg.CategoryFile)
	for i, name := range cats.Names() {
		tok, _ := cats.Token(name)
		note := ""
		if cats.IsWildcard(tok) {
			note = "  [wildcard: no price filters, 5-page cap]"
		}
		fmt.Printf(" %2d. %-28s %s%s\n", i+1, name, tok, note)
	}

	return nil
}
