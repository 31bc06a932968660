package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mkress81/arbscout/internal/models"
)

// printListingsTable prints listings in a human-friendly card layout.
func printListingsTable(listings []models.Listing) {
	for i, l := range listings {
		if i > 0 {
			fmt.Fprintln(os.Stdout)
		}
		fmt.Fprintf(os.Stdout, " %d. %s  [%s]\n", i+1, truncate(l.Title, 70), l.ASIN)

		line := "    Price: " + formatPrice(l.Price)
		if l.Offers > 0 {
			line += fmt.Sprintf("  (%d offers)", l.Offers)
		}
		if l.Prime {
			line += "  [Prime]"
		}
		if l.Merchant != "" {
			line += "  |  Merchant: " + l.Merchant
		}
		fmt.Fprintln(os.Stdout, line)

		if l.SalesRank > 0 {
			fmt.Fprintf(os.Stdout, "    Rank: #%d in %s\n", l.SalesRank, l.ProductGroup)
		}
		if l.Brand != "" || l.Model != "" {
			fmt.Fprintf(os.Stdout, "    Brand: %s  Model: %s\n", l.Brand, l.Model)
		}
		if l.URL != "" {
			fmt.Fprintf(os.Stdout, "    %s\n", l.URL)
		}
	}
}

// formatPrice formats cents as "$1,234.56". Zero means unknown.
func formatPrice(cents int64) string {
	if cents == 0 {
		return "n/a"
	}
	dollars := cents / 100
	rem := cents % 100

	s := fmt.Sprintf("%d", dollars)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return fmt.Sprintf("$%s.%02d", strings.Join(parts, ","), rem)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
