package catalog

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Raw wire structures for the catalog API's XML responses. Only the
// elements the engine consumes are mapped; everything else is skipped by
// the decoder.

type searchResponse struct {
	XMLName xml.Name `xml:"ItemSearchResponse"`
	Items   itemSet  `xml:"Items"`
}

type lookupResponse struct {
	XMLName xml.Name `xml:"ItemLookupResponse"`
	Items   itemSet  `xml:"Items"`
}

type itemSet struct {
	Request requestEcho `xml:"Request"`
	Items   []Item      `xml:"Item"`
}

type requestEcho struct {
	IsValid string     `xml:"IsValid"`
	Errors  []apiError `xml:"Errors>Error"`
}

type apiError struct {
	Code    string `xml:"Code"`
	Message string `xml:"Message"`
}

// Item is one raw catalog entry as returned by the API. An Item whose
// ParentASIN equals its own ASIN is a variation parent rather than a
// purchasable product.
type Item struct {
	ASIN          string         `xml:"ASIN"`
	ParentASIN    string         `xml:"ParentASIN"`
	DetailPageURL string         `xml:"DetailPageURL"`
	SalesRank     int            `xml:"SalesRank"`
	Attributes    ItemAttributes `xml:"ItemAttributes"`
	OfferSummary  *OfferSummary  `xml:"OfferSummary"`
	Offers        *Offers        `xml:"Offers"`
	Variations    *Variations    `xml:"Variations"`
}

// ChildASINs returns the ASINs of the item's declared variations, in
// document order. Empty for items without variation data.
func (i *Item) ChildASINs() []string {
	if i.Variations == nil {
		return nil
	}
	asins := make([]string, 0, len(i.Variations.Items))
	for _, child := range i.Variations.Items {
		if child.ASIN != "" {
			asins = append(asins, child.ASIN)
		}
	}
	return asins
}

type ItemAttributes struct {
	Title        string          `xml:"Title"`
	Brand        string          `xml:"Brand"`
	Manufacturer string          `xml:"Manufacturer"`
	Model        string          `xml:"Model"`
	MPN          string          `xml:"MPN"`
	UPC          string          `xml:"UPC"`
	ProductGroup string          `xml:"ProductGroup"`
	Dimensions   *ItemDimensions `xml:"ItemDimensions"`
}

type ItemDimensions struct {
	Length Measurement `xml:"Length"`
	Width  Measurement `xml:"Width"`
	Height Measurement `xml:"Height"`
	Weight Measurement `xml:"Weight"`
}

// Measurement is a dimension value with its unit attribute, e.g.
// <Length Units="hundredths-inches">500</Length>.
type Measurement struct {
	Value string `xml:",chardata"`
	Units string `xml:"Units,attr"`
}

// Float returns the numeric value, or 0 when absent or malformed.
func (m Measurement) Float() float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(m.Value), 64)
	if err != nil {
		return 0
	}
	return f
}

type OfferSummary struct {
	TotalNew       int    `xml:"TotalNew"`
	LowestNewPrice *Price `xml:"LowestNewPrice"`
}

type Price struct {
	Amount         int64  `xml:"Amount"` // minor currency units
	CurrencyCode   string `xml:"CurrencyCode"`
	FormattedPrice string `xml:"FormattedPrice"`
}

type Offers struct {
	Offers []Offer `xml:"Offer"`
}

type Offer struct {
	Merchant Merchant     `xml:"Merchant"`
	Listing  OfferListing `xml:"OfferListing"`
}

type Merchant struct {
	Name string `xml:"Name"`
}

type OfferListing struct {
	IsEligibleForPrime bool `xml:"IsEligibleForPrime"`
}

type Variations struct {
	Items []Item `xml:"Item"`
}
