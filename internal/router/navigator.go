package router

import (
	"context"
	"html/template"
	"sync"
	"sync/atomic"
)

// Result is the outcome of one navigation.
type Result struct {
	Seq      uint64
	Fragment string
	Route    Route
	HTML     template.HTML
	// Rendered is false when the route renders nothing (detail without id).
	Rendered bool
	// Stale is set when a newer navigation started before this one finished;
	// its HTML was not delivered.
	Stale bool
}

// Sink receives the HTML of every navigation that is still current when it
// finishes. Calls are serialized.
type Sink func(Result) error

// Navigator runs navigations for one client. Each navigation is stamped with
// an increasing sequence number; a load that finishes after a newer
// navigation has started is discarded instead of overwriting newer content.
type Navigator struct {
	pages Pages
	sink  Sink
	seq   atomic.Uint64
	mu    sync.Mutex
}

// NewNavigator creates a Navigator delivering renders to sink.
func NewNavigator(pages Pages, sink Sink) *Navigator {
	return &Navigator{pages: pages, sink: sink}
}

// Current returns the sequence number of the latest navigation.
func (n *Navigator) Current() uint64 { return n.seq.Load() }

// Navigate parses fragment, renders the matching page and hands the result to
// the sink unless it has gone stale. It may be called concurrently; initial
// loads, fragment changes and in-app links all go through here.
func (n *Navigator) Navigate(ctx context.Context, fragment string) (Result, error) {
	return n.Begin(fragment)(ctx)
}

// Begin stamps a navigation with the next sequence number and returns the
// function that performs it. Callers that receive fragments in order but run
// them concurrently stamp on arrival so the latest fragment always wins.
func (n *Navigator) Begin(fragment string) func(context.Context) (Result, error) {
	seq := n.seq.Add(1)
	return func(ctx context.Context) (Result, error) {
		return n.run(ctx, seq, fragment)
	}
}

func (n *Navigator) run(ctx context.Context, seq uint64, fragment string) (Result, error) {
	route, html, ok := Render(ctx, n.pages, fragment)
	res := Result{Seq: seq, Fragment: fragment, Route: route, HTML: html, Rendered: ok}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.seq.Load() != seq {
		res.Stale = true
		return res, nil
	}
	if !ok || n.sink == nil {
		return res, nil
	}
	return res, n.sink(res)
}
