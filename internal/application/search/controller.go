package search

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// DefaultQuiet is how long the input must stay unchanged before a lookup
// fires.
const DefaultQuiet = 300 * time.Millisecond

// MinQueryRunes is the shortest query worth sending to the backend. Below
// it the controller clears results instead of searching.
const MinQueryRunes = 2

// Candidate is one search hit, shaped for a suggestion row.
type Candidate struct {
	ID    string
	Nome  string
	Extra string
}

// Result is what the controller publishes after a lookup settles (or after
// a too-short query clears the list).
type Result struct {
	Query      string
	Candidates []Candidate
	Err        error
}

// Fetcher performs the actual lookup for a debounced query.
type Fetcher func(ctx context.Context, query string) ([]Candidate, error)

// Deps holds dependencies for the Controller.
type Deps struct {
	Fetch   Fetcher
	Publish func(Result)
}

// Controller debounces keystrokes into lookups. Every keystroke advances a
// generation counter; a lookup carries the generation it was born under and
// its result is discarded if any keystroke arrived while it was in flight.
// That makes delivery match the latest input even when an older, slower
// response settles last.
type Controller struct {
	deps  Deps
	quiet time.Duration

	mu    sync.Mutex
	gen   uint64
	timer *time.Timer
	last  []Candidate
}

// NewController creates a Controller with the default quiet period.
func NewController(deps Deps) *Controller {
	return NewControllerQuiet(deps, DefaultQuiet)
}

// NewControllerQuiet creates a Controller with an explicit quiet period.
func NewControllerQuiet(deps Deps, quiet time.Duration) *Controller {
	return &Controller{deps: deps, quiet: quiet}
}

// SetQuery records a keystroke. Nothing is fetched until the input has been
// quiet for the configured period; intermediate values never reach the
// Fetcher. Queries shorter than MinQueryRunes clear the results at once.
func (c *Controller) SetQuery(ctx context.Context, query string) {
	q := strings.TrimSpace(query)

	c.mu.Lock()
	c.gen++
	gen := c.gen
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if utf8.RuneCountInString(q) < MinQueryRunes {
		c.mu.Unlock()
		c.deliver(gen, Result{Query: q})
		return
	}
	c.timer = time.AfterFunc(c.quiet, func() {
		c.lookup(ctx, gen, q)
	})
	c.mu.Unlock()
}

// Close cancels any pending lookup timer.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Candidates returns the most recently delivered results.
func (c *Controller) Candidates() []Candidate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

func (c *Controller) lookup(ctx context.Context, gen uint64, query string) {
	c.mu.Lock()
	stale := gen != c.gen
	c.mu.Unlock()
	if stale {
		return
	}

	candidates, err := c.deps.Fetch(ctx, query)
	c.deliver(gen, Result{Query: query, Candidates: candidates, Err: err})
}

// deliver installs and publishes a result unless a newer keystroke exists.
func (c *Controller) deliver(gen uint64, r Result) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.last = r.Candidates
	c.mu.Unlock()

	if c.deps.Publish != nil {
		c.deps.Publish(r)
	}
}

// MatchNome reports whether nome contains the query, case-insensitively.
// It is the filter the catalog search applies to aggregated entries.
func MatchNome(nome, query string) bool {
	return strings.Contains(strings.ToLower(nome), strings.ToLower(strings.TrimSpace(query)))
}
