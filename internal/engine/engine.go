package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mkress81/arbscout/internal/catalog"
	"github.com/mkress81/arbscout/internal/models"
)

// Page caps per category. Wildcard indices return broader, noisier result
// sets, so fewer pages are fetched to bound cost and latency.
const (
	maxPagesSpecific = 10
	maxPagesWildcard = 5
)

// Catalog is the adapter boundary the engine drives. One call is one round
// trip against the external product API; the adapter owns pacing and
// surfaces failures as *catalog.RequestError for classification.
type Catalog interface {
	Search(ctx context.Context, params catalog.SearchParams) ([]catalog.Item, error)
	Lookup(ctx context.Context, asin string) ([]catalog.Item, error)
}

// Engine serializes queued requests through a single background worker and
// streams normalized listings and human-readable progress messages back to
// the caller. All network calls happen inside the one worker; the pending
// queue and the abort flag are the only state shared with submitters, both
// guarded by one mutex.
type Engine struct {
	client Catalog

	mu      sync.Mutex
	queue   []Request
	abort   bool
	started bool
	closed  bool

	wake chan struct{}
	done chan struct{}
	wg   sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc

	listings chan models.Listing
	messages chan string
	idle     chan struct{}

	backoff  *backoff
	wildcard map[string]bool

	closeOnce sync.Once
}

// Option configures an Engine.
type Option func(*Engine)

// WithWildcardCategories overrides the search indices treated as wildcard
// (aggregate) categories. Defaults to "All" and "Blended".
func WithWildcardCategories(names ...string) Option {
	return func(e *Engine) {
		e.wildcard = make(map[string]bool, len(names))
		for _, n := range names {
			e.wildcard[n] = true
		}
	}
}

// WithThrottleWait overrides the retry-delay source. Used by tests to run
// without real sleeps.
func WithThrottleWait(fn func() time.Duration) Option {
	return func(e *Engine) { e.backoff.interval = fn }
}

// New creates an Engine. The worker goroutine starts lazily on the first
// Submit. Callers must drain Listings and Messages while work is running.
func New(client Catalog, opts ...Option) *Engine {
	ctx, cancel := context.WithCancel(context.Background())
	e := &Engine{
		client:   client,
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
		listings: make(chan models.Listing, 64),
		messages: make(chan string, 64),
		idle:     make(chan struct{}, 1),
		backoff:  newBackoff(),
		wildcard: map[string]bool{"All": true, "Blended": true},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Listings streams one normalized listing per parsed item, in the order
// items are received from the API.
func (e *Engine) Listings() <-chan models.Listing { return e.listings }

// Messages streams progress and error strings in encounter order. Callers
// display them verbatim.
func (e *Engine) Messages() <-chan string { return e.messages }

// Idle signals each time the pending queue becomes empty after draining.
func (e *Engine) Idle() <-chan struct{} { return e.idle }

// Submit validates req and appends it to the pending queue, waking the
// worker (and starting it on first use). It never blocks; malformed
// requests are rejected here and never enqueue.
func (e *Engine) Submit(req Request) error {
	if req == nil {
		return fmt.Errorf("nil request")
	}
	if err := req.validate(); err != nil {
		return err
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return fmt.Errorf("engine closed")
	}
	e.queue = append(e.queue, req)
	if !e.started {
		e.started = true
		e.wg.Add(1)
		go e.work()
	}
	e.mu.Unlock()

	select {
	case e.wake <- struct{}{}:
	default:
	}
	return nil
}

// Cancel sets the abort flag and clears the pending queue. The in-flight
// operation observes the flag at its next checkpoint and unwinds
// cooperatively; no network call is interrupted. Idempotent.
func (e *Engine) Cancel() {
	e.mu.Lock()
	e.queue = nil
	e.abort = true
	e.mu.Unlock()
}

// Close tears the engine down: it stops the worker, cancels any in-flight
// call, and closes the output channels once the worker has exited. Submit
// fails after Close.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		e.mu.Lock()
		e.closed = true
		started := e.started
		e.mu.Unlock()

		e.cancel()
		close(e.done)
		if started {
			e.wg.Wait()
		}
		close(e.listings)
		close(e.messages)
	})
}

func (e *Engine) work() {
	defer e.wg.Done()
	for {
		req, ok := e.next()
		if !ok {
			return
		}
		switch r := req.(type) {
		case SearchRequest:
			e.runSearch(r)
		case LookupRequest:
			e.runLookup(r)
		}

		e.mu.Lock()
		drained := len(e.queue) == 0
		e.mu.Unlock()
		if drained {
			select {
			case e.idle <- struct{}{}:
			default:
			}
		}
	}
}

// next pops the queue head, blocking until work arrives or the engine is
// closed. Popping also clears a stale abort flag so a request submitted
// after a Cancel is served normally.
func (e *Engine) next() (Request, bool) {
	for {
		e.mu.Lock()
		if len(e.queue) > 0 {
			req := e.queue[0]
			e.queue = e.queue[1:]
			e.abort = false
			e.mu.Unlock()
			return req, true
		}
		e.mu.Unlock()

		select {
		case <-e.wake:
		case <-e.done:
			return nil, false
		}
	}
}

func (e *Engine) aborted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.abort
}

func (e *Engine) runSearch(req SearchRequest) {
	scanned := 0

	for _, category := range req.Categories {
		if e.aborted() {
			return
		}
		e.say("Searching %q in %s...", req.Keywords, category)

		params := catalog.SearchParams{
			SearchIndex: category,
			Keywords:    req.Keywords,
		}
		maxPages := maxPagesSpecific
		if e.wildcard[category] {
			// The API rejects price filters in aggregate-category search.
			maxPages = maxPagesWildcard
		} else {
			params.MinPrice = req.MinPrice
			params.MaxPrice = req.MaxPrice
		}

		for page := 1; page <= maxPages; page++ {
			if e.aborted() {
				return
			}
			params.Page = page

			items, err := e.call(func() ([]catalog.Item, error) {
				return e.client.Search(e.ctx, params)
			})
			if err != nil {
				e.say("%v", err)
				break // abandon this category, move to the next
			}
			if len(items) == 0 {
				break
			}

			for i := range items {
				if e.aborted() {
					return
				}
				scanned += e.expand(&items[i])
			}
		}
	}

	if e.aborted() {
		return
	}
	e.say("Search complete. %d results scanned.", scanned)
}

func (e *Engine) runLookup(req LookupRequest) {
	scanned := 0

	for _, asin := range req.ASINs {
		if e.aborted() {
			return
		}
		e.say("Looking up %s...", asin)

		items, err := e.call(func() ([]catalog.Item, error) {
			return e.client.Lookup(e.ctx, asin)
		})
		if err != nil {
			// A single failed id never aborts the whole request.
			e.say("%v", err)
			continue
		}

		for i := range items {
			if e.aborted() {
				return
			}
			scanned += e.expand(&items[i])
		}
	}

	if e.aborted() {
		return
	}
	e.say("Lookup complete. %d results scanned.", scanned)
}

// expand turns one raw item into zero or more emitted listings and returns
// the number of items scanned. An item whose ParentASIN equals its own
// ASIN is a variation parent: each declared child is fetched and parsed
// with the parent as context, and the parent itself is never emitted.
func (e *Engine) expand(item *catalog.Item) int {
	if item.ParentASIN == "" || item.ParentASIN != item.ASIN {
		e.parseAndEmit(item, nil)
		return 1
	}

	scanned := 0
	for _, childASIN := range item.ChildASINs() {
		if e.aborted() {
			return scanned
		}
		e.lookupChild(childASIN, item)
		scanned++
	}
	return scanned
}

func (e *Engine) lookupChild(asin string, parent *catalog.Item) {
	items, err := e.call(func() ([]catalog.Item, error) {
		return e.client.Lookup(e.ctx, asin)
	})
	if err != nil {
		e.say("%v", err)
		return
	}
	if len(items) == 0 {
		e.say("Parse error: %s", asin)
		return
	}
	e.parseAndEmit(&items[0], parent)
}

func (e *Engine) parseAndEmit(item, parent *catalog.Item) {
	listing, err := parseListing(item, parent)
	if err != nil {
		id := item.ASIN
		if id == "" {
			id = "N/A"
		}
		e.say("Parse error: %s", id)
		return
	}
	e.emit(listing)
}

// call invokes one adapter round trip, retrying in place on throttling per
// the backoff policy. The retry sleep is a cancellation checkpoint: a
// Cancel landing during the wait abandons the call.
func (e *Engine) call(fn func() ([]catalog.Item, error)) ([]catalog.Item, error) {
	for {
		items, err := fn()
		if err == nil {
			e.backoff.reset()
			return items, nil
		}

		wait, again := e.backoff.retry(err)
		if !again {
			return nil, err
		}
		e.say("%v, waiting...", err)
		if !e.pause(wait) {
			return nil, err
		}
		if e.aborted() {
			return nil, err
		}
	}
}

// pause sleeps for d, returning false if the engine is closed first.
func (e *Engine) pause(d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-e.done:
		return false
	}
}

func (e *Engine) say(format string, args ...any) {
	select {
	case e.messages <- fmt.Sprintf(format, args...):
	case <-e.done:
	}
}

func (e *Engine) emit(l models.Listing) {
	select {
	case e.listings <- l:
	case <-e.done:
	}
}
