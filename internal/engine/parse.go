package engine

import (
	"errors"

	"github.com/mkress81/arbscout/internal/catalog"
	"github.com/mkress81/arbscout/internal/models"
)

var errMissingRequired = errors.New("item missing ASIN or title")

// parseListing maps a raw catalog item onto a normalized Listing. ASIN and
// title are mandatory; every other field defaults independently, so a
// missing substructure never fails the whole item. When expansion supplied
// a parent item, its sales rank backfills a child that reports none.
func parseListing(item, parent *catalog.Item) (models.Listing, error) {
	if item.ASIN == "" || item.Attributes.Title == "" {
		return models.Listing{}, errMissingRequired
	}

	l := models.Listing{
		ASIN:  item.ASIN,
		Title: item.Attributes.Title,
		URL:   item.DetailPageURL,
	}

	l.SalesRank = item.SalesRank
	if l.SalesRank == 0 && parent != nil {
		l.SalesRank = parent.SalesRank
	}

	attrs := item.Attributes
	l.ProductGroup = attrs.ProductGroup
	l.UPC = attrs.UPC

	l.Brand = attrs.Brand
	if l.Brand == "" {
		l.Brand = attrs.Manufacturer
	}
	l.Model = attrs.Model
	if l.Model == "" {
		l.Model = attrs.MPN
	}

	if attrs.Dimensions != nil {
		l.Dimensions = models.Dimensions{
			Length: attrs.Dimensions.Length.Float(),
			Width:  attrs.Dimensions.Width.Float(),
			Height: attrs.Dimensions.Height.Float(),
			Weight: attrs.Dimensions.Weight.Float(),
		}
	}

	if item.OfferSummary != nil {
		l.Offers = item.OfferSummary.TotalNew
		if item.OfferSummary.LowestNewPrice != nil {
			l.Price = item.OfferSummary.LowestNewPrice.Amount
		}
	}

	if item.Offers != nil && len(item.Offers.Offers) > 0 {
		offer := item.Offers.Offers[0]
		l.Merchant = offer.Merchant.Name
		l.Prime = offer.Listing.IsEligibleForPrime
	}

	return l, nil
}
