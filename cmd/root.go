package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/mkress81/arbscout/config"
	"github.com/mkress81/arbscout/internal/catalog"
	"github.com/mkress81/arbscout/internal/engine"
	"github.com/mkress81/arbscout/internal/httputil"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "arbscout",
	Short: "ArbScout - product catalog search CLI & MCP server",
	Long:  "A CLI tool and MCP server for scanning product catalog listings by keyword or ASIN.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("endpoint", "", "Catalog API endpoint URL")
	rootCmd.PersistentFlags().String("categories", "", "Path to category map YAML file")
	rootCmd.PersistentFlags().Float64("qps", 0, "Max catalog API calls per second")
}

func initConfig() {
	cfg = config.DefaultConfig()
	cfg.LoadFromEnv()

	// Override from flags
	if v, _ := rootCmd.PersistentFlags().GetString("endpoint"); v != "" {
		cfg.Endpoint = v
	}
	if v, _ := rootCmd.PersistentFlags().GetString("categories"); v != "" {
		cfg.CategoryFile = v
	}
	if v, _ := rootCmd.PersistentFlags().GetFloat64("qps"); v > 0 {
		cfg.QPS = v
	}
}

// buildEngine creates a catalog client and a fresh engine around it, plus
// the category map. Each engine owns its adapter session exclusively.
func buildEngine() (*engine.Engine, *config.CategoryMap, error) {
	cats, err := config.LoadCategories(cfg.CategoryFile)
	if err != nil {
		return nil, nil, err
	}

	client := catalog.NewClient(catalog.Config{
		Endpoint:     cfg.Endpoint,
		AccessKey:    cfg.AccessKey,
		SecretKey:    cfg.SecretKey,
		AssociateTag: cfg.AssociateTag,
	}, httputil.NewHTTPClient(nil), rate.NewLimiter(rate.Limit(cfg.QPS), 1))

	eng := engine.New(client, engine.WithWildcardCategories(cats.Wildcard...))
	return eng, cats, nil
}

// resolveCategory maps a display name (or a raw search-index token) to its
// token.
func resolveCategory(cats *config.CategoryMap, name string) (string, error) {
	if tok, ok := cats.Token(name); ok {
		return tok, nil
	}
	// Accept tokens directly so scripts can bypass display names.
	for _, n := range cats.Names() {
		if tok, _ := cats.Token(n); tok == name {
			return tok, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (see 'arbscout categories')", name)
}
