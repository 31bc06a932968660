package engine

import (
	"golang.org/x/sync/errgroup"

	"github.com/mkress81/arbscout/internal/models"
)

// Drain collects every listing from e until the queue drains, forwarding
// each message to onMessage as it arrives, then closes the engine. It is a
// convenience for one-shot callers (CLI, MCP tools) that submit their work
// up front; at least one request must have been submitted or Drain blocks
// forever. onMessage may be nil.
func Drain(e *Engine, onMessage func(string)) []models.Listing {
	var listings []models.Listing

	g := new(errgroup.Group)
	g.Go(func() error {
		for l := range e.Listings() {
			listings = append(listings, l)
		}
		return nil
	})
	g.Go(func() error {
		for m := range e.Messages() {
			if onMessage != nil {
				onMessage(m)
			}
		}
		return nil
	})

	<-e.Idle()
	e.Close()
	g.Wait()

	return listings
}
