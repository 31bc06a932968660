package engine

import (
	"testing"

	"github.com/mkress81/arbscout/internal/catalog"
	"github.com/mkress81/arbscout/internal/models"
)

func TestParseListing_requiresASINAndTitle(t *testing.T) {
	t.Parallel()

	noTitle := catalog.Item{ASIN: "A1"}
	if _, err := parseListing(&noTitle, nil); err == nil {
		t.Fatalf("expected error for missing title")
	}

	noASIN := catalog.Item{Attributes: catalog.ItemAttributes{Title: "Widget"}}
	if _, err := parseListing(&noASIN, nil); err == nil {
		t.Fatalf("expected error for missing ASIN")
	}
}

func TestParseListing_fieldFallbacks(t *testing.T) {
	t.Parallel()

	item := catalog.Item{
		ASIN: "A1",
		Attributes: catalog.ItemAttributes{
			Title:        "Widget",
			Manufacturer: "Acme Corp",
			MPN:          "W-100",
		},
	}
	l, err := parseListing(&item, nil)
	if err != nil {
		t.Fatalf("parseListing: %v", err)
	}
	if l.Brand != "Acme Corp" {
		t.Errorf("Brand = %q, want manufacturer fallback", l.Brand)
	}
	if l.Model != "W-100" {
		t.Errorf("Model = %q, want MPN fallback", l.Model)
	}

	// Explicit fields win over the fallbacks.
	item.Attributes.Brand = "Acme"
	item.Attributes.Model = "Widget100"
	l, _ = parseListing(&item, nil)
	if l.Brand != "Acme" || l.Model != "Widget100" {
		t.Errorf("Brand/Model = %q/%q, want explicit values", l.Brand, l.Model)
	}
}

func TestParseListing_parentRankBackfill(t *testing.T) {
	t.Parallel()

	parent := catalog.Item{ASIN: "P1", SalesRank: 777}
	child := catalog.Item{ASIN: "C1", Attributes: catalog.ItemAttributes{Title: "Widget"}}

	l, err := parseListing(&child, &parent)
	if err != nil {
		t.Fatalf("parseListing: %v", err)
	}
	if l.SalesRank != 777 {
		t.Errorf("SalesRank = %d, want parent's 777", l.SalesRank)
	}

	child.SalesRank = 12
	l, _ = parseListing(&child, &parent)
	if l.SalesRank != 12 {
		t.Errorf("SalesRank = %d, want own 12", l.SalesRank)
	}
}

func TestParseListing_optionalStructuresDefault(t *testing.T) {
	t.Parallel()

	// OfferSummary, Offers, Variations and ItemDimensions all absent: the
	// item still parses, with zero values.
	item := catalog.Item{
		ASIN:       "A1",
		Attributes: catalog.ItemAttributes{Title: "Widget"},
	}
	l, err := parseListing(&item, nil)
	if err != nil {
		t.Fatalf("parseListing: %v", err)
	}
	if l.Offers != 0 || l.Price != 0 || l.Merchant != "" || l.Prime {
		t.Errorf("optional fields not zero: %+v", l)
	}
	if l.Dimensions != (models.Dimensions{}) {
		t.Errorf("Dimensions = %+v, want zero", l.Dimensions)
	}
}

func TestParseListing_fullItem(t *testing.T) {
	t.Parallel()

	item := catalog.Item{
		ASIN:          "A1",
		DetailPageURL: "https://example.com/dp/A1",
		SalesRank:     321,
		Attributes: catalog.ItemAttributes{
			Title:        "Deluxe Widget",
			Brand:        "Acme",
			Model:        "DW-9",
			UPC:          "012345678905",
			ProductGroup: "Toy",
			Dimensions: &catalog.ItemDimensions{
				Length: catalog.Measurement{Value: "500", Units: "hundredths-inches"},
				Width:  catalog.Measurement{Value: "250", Units: "hundredths-inches"},
				Height: catalog.Measurement{Value: "100", Units: "hundredths-inches"},
				Weight: catalog.Measurement{Value: "75", Units: "hundredths-pounds"},
			},
		},
		OfferSummary: &catalog.OfferSummary{
			TotalNew:       7,
			LowestNewPrice: &catalog.Price{Amount: 1999, CurrencyCode: "USD"},
		},
		Offers: &catalog.Offers{Offers: []catalog.Offer{{
			Merchant: catalog.Merchant{Name: "Acme Store"},
			Listing:  catalog.OfferListing{IsEligibleForPrime: true},
		}}},
	}

	l, err := parseListing(&item, nil)
	if err != nil {
		t.Fatalf("parseListing: %v", err)
	}
	if l.Offers != 7 || l.Price != 1999 || l.Merchant != "Acme Store" || !l.Prime {
		t.Errorf("offer fields wrong: %+v", l)
	}
	if l.ProductGroup != "Toy" || l.UPC != "012345678905" || l.SalesRank != 321 {
		t.Errorf("attribute fields wrong: %+v", l)
	}
	if l.Dimensions.Length != 500 || l.Dimensions.Weight != 75 {
		t.Errorf("dimensions wrong: %+v", l.Dimensions)
	}
}
