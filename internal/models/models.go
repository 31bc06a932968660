package models

// Listing is one catalog item's normalized, display-ready attributes,
// independent of the API wire format. A Listing is immutable once built.
type Listing struct {
	ASIN         string     `json:"asin"`
	Title        string     `json:"title"`
	ProductGroup string     `json:"product_group,omitempty"`
	Brand        string     `json:"brand,omitempty"`
	Model        string     `json:"model,omitempty"`
	UPC          string     `json:"upc,omitempty"`
	SalesRank    int        `json:"sales_rank,omitempty"` // 0 = unknown
	Offers       int        `json:"offers,omitempty"`
	Price        int64      `json:"price,omitempty"` // lowest new price in cents, 0 = unknown
	Prime        bool       `json:"prime,omitempty"`
	Merchant     string     `json:"merchant,omitempty"`
	URL          string     `json:"url,omitempty"`
	Dimensions   Dimensions `json:"dimensions"`
}

// Dimensions holds the physical item dimensions as reported by the catalog
// (hundredths of inches and pounds).
type Dimensions struct {
	Length float64 `json:"length,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Weight float64 `json:"weight,omitempty"`
}
