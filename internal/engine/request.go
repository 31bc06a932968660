package engine

import (
	"errors"
	"strings"
)

// Request is one unit of work accepted by Submit. The two concrete kinds
// are SearchRequest and LookupRequest.
type Request interface {
	validate() error
}

// SearchRequest asks for a keyword search across one or more categories,
// served in the order given.
type SearchRequest struct {
	Keywords   string
	Categories []string // search-index tokens
	MinPrice   int64    // minor currency units; 0 = no bound
	MaxPrice   int64
}

// LookupRequest asks for direct lookups of catalog item ids, in order.
type LookupRequest struct {
	ASINs []string
}

func (r SearchRequest) validate() error {
	if strings.TrimSpace(r.Keywords) == "" {
		return errors.New("search request: keywords must not be empty")
	}
	if len(r.Categories) == 0 {
		return errors.New("search request: at least one category required")
	}
	for _, c := range r.Categories {
		if strings.TrimSpace(c) == "" {
			return errors.New("search request: empty category")
		}
	}
	return nil
}

func (r LookupRequest) validate() error {
	if len(r.ASINs) == 0 {
		return errors.New("lookup request: at least one ASIN required")
	}
	for _, a := range r.ASINs {
		if strings.TrimSpace(a) == "" {
			return errors.New("lookup request: empty ASIN")
		}
	}
	return nil
}
