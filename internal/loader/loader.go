// Package loader loads restaurant data cache-first: a stored response is
// used when present, otherwise the API is called and the response stored.
package loader

import (
	"context"
	"errors"
	"html/template"
	"log"

	"github.com/ziadkadry99/restohub/internal/cache"
	"github.com/ziadkadry99/restohub/internal/restaurant"
)

// Default cache names.
const (
	DefaultListCache   = "restaurant-list"
	DefaultDetailCache = "restaurant-detail"
)

// Source tells where loaded data came from.
type Source string

const (
	SourceCache   Source = "cache"
	SourceNetwork Source = "network"
)

// Fetcher is the remote restaurant API.
type Fetcher interface {
	Get(ctx context.Context, url string) (*restaurant.Response, error)
	ListURL() string
	DetailURL(id string) string
}

// ListRenderer renders the list view and the degraded error view.
type ListRenderer interface {
	List(restaurants []restaurant.Restaurant) template.HTML
	Error() template.HTML
}

// Options configures a Loader. Zero values fall back to defaults.
type Options struct {
	ListCache   string
	DetailCache string
	Logger      *log.Logger
}

// Loader loads the restaurant list and details through the response cache.
type Loader struct {
	caches      *cache.Storage
	fetcher     Fetcher
	renderer    ListRenderer
	listCache   string
	detailCache string
	logger      *log.Logger
}

// New creates a Loader.
func New(caches *cache.Storage, fetcher Fetcher, renderer ListRenderer, opts Options) *Loader {
	if opts.ListCache == "" {
		opts.ListCache = DefaultListCache
	}
	if opts.DetailCache == "" {
		opts.DetailCache = DefaultDetailCache
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Loader{
		caches:      caches,
		fetcher:     fetcher,
		renderer:    renderer,
		listCache:   opts.ListCache,
		detailCache: opts.DetailCache,
		logger:      opts.Logger,
	}
}

// LoadList renders the restaurant list. It never fails: every cache, network
// or parse failure ends in the error view, with the cause logged. A fresh
// network response is rendered first and stored afterwards; storing is
// best-effort.
func (l *Loader) LoadList(ctx context.Context) template.HTML {
	f, err := l.cacheFirst(ctx, l.listCache, l.fetcher.ListURL())
	if err != nil {
		l.logFailure("list", err)
		return l.renderer.Error()
	}

	list, err := restaurant.DecodeList(f.body)
	if err != nil {
		l.logFailure("list", err)
		return l.renderer.Error()
	}

	out := l.renderer.List(list)
	l.store(ctx, f)
	l.logger.Printf("loader: list loaded from %s (%d restaurants)", f.source(), len(list))
	return out
}

// Restaurants returns the restaurant list cache-first.
func (l *Loader) Restaurants(ctx context.Context) ([]restaurant.Restaurant, Source, error) {
	f, err := l.cacheFirst(ctx, l.listCache, l.fetcher.ListURL())
	if err != nil {
		return nil, "", err
	}
	list, err := restaurant.DecodeList(f.body)
	if err != nil {
		return nil, "", err
	}
	l.store(ctx, f)
	return list, f.source(), nil
}

// Detail returns one restaurant's detail record cache-first.
func (l *Loader) Detail(ctx context.Context, id string) (*restaurant.Detail, Source, error) {
	f, err := l.cacheFirst(ctx, l.detailCache, l.fetcher.DetailURL(id))
	if err != nil {
		return nil, "", err
	}
	d, err := restaurant.DecodeDetail(f.body)
	if err != nil {
		return nil, "", err
	}
	l.store(ctx, f)
	return d, f.source(), nil
}

// RefreshList bypasses the cache, fetches the list and stores it.
func (l *Loader) RefreshList(ctx context.Context) ([]restaurant.Restaurant, error) {
	f, err := l.fromNetwork(ctx, l.listCache, l.fetcher.ListURL())
	if err != nil {
		return nil, err
	}
	list, err := restaurant.DecodeList(f.body)
	if err != nil {
		return nil, err
	}
	return list, l.put(ctx, f)
}

// RefreshDetail bypasses the cache, fetches one detail record and stores it.
func (l *Loader) RefreshDetail(ctx context.Context, id string) (*restaurant.Detail, error) {
	f, err := l.fromNetwork(ctx, l.detailCache, l.fetcher.DetailURL(id))
	if err != nil {
		return nil, err
	}
	d, err := restaurant.DecodeDetail(f.body)
	if err != nil {
		return nil, err
	}
	return d, l.put(ctx, f)
}

// LogFailure records a data-loading failure on the diagnostic channel.
func (l *Loader) LogFailure(what string, err error) { l.logFailure(what, err) }

// fetched is a body obtained by cacheFirst. fresh is set when the body came
// from the network and has not been stored yet.
type fetched struct {
	cache *cache.Cache
	url   string
	body  []byte
	fresh *restaurant.Response
}

func (f *fetched) source() Source {
	if f.fresh != nil {
		return SourceNetwork
	}
	return SourceCache
}

func (l *Loader) cacheFirst(ctx context.Context, cacheName, url string) (*fetched, error) {
	c, err := l.caches.Open(ctx, cacheName)
	if err != nil {
		return nil, err
	}

	entry, ok, err := c.Match(ctx, url)
	if err != nil {
		return nil, err
	}
	if ok {
		return &fetched{cache: c, url: url, body: entry.Body}, nil
	}

	resp, err := l.fetcher.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	return &fetched{cache: c, url: url, body: resp.Body, fresh: resp}, nil
}

func (l *Loader) fromNetwork(ctx context.Context, cacheName, url string) (*fetched, error) {
	c, err := l.caches.Open(ctx, cacheName)
	if err != nil {
		return nil, err
	}
	resp, err := l.fetcher.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	return &fetched{cache: c, url: url, body: resp.Body, fresh: resp}, nil
}

// store writes a fresh response to its cache, logging instead of failing.
func (l *Loader) store(ctx context.Context, f *fetched) {
	if err := l.put(ctx, f); err != nil {
		l.logger.Printf("loader: storing %s: %v", f.url, err)
	}
}

func (l *Loader) put(ctx context.Context, f *fetched) error {
	if f.fresh == nil {
		return nil
	}
	// The request may have been cancelled by a newer navigation after the
	// body was read; the response is still worth keeping.
	return f.cache.Put(context.WithoutCancel(ctx), cache.Entry{
		URL:         f.url,
		StatusCode:  f.fresh.StatusCode,
		ContentType: f.fresh.ContentType,
		Body:        f.fresh.Body,
	})
}

func (l *Loader) logFailure(what string, err error) {
	l.logger.Printf("loader: %s %s failure: %v", what, Kind(err), err)
}

// Kind classifies a loading error as "network", "parse", "cache" or
// "unexpected".
func Kind(err error) string {
	switch {
	case errors.Is(err, restaurant.ErrNetwork):
		return "network"
	case errors.Is(err, restaurant.ErrParse):
		return "parse"
	case errors.Is(err, cache.ErrCache):
		return "cache"
	default:
		return "unexpected"
	}
}
