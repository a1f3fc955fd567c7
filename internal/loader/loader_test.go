package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ziadkadry99/restohub/internal/cache"
	"github.com/ziadkadry99/restohub/internal/db"
	"github.com/ziadkadry99/restohub/internal/restaurant"
	"github.com/ziadkadry99/restohub/internal/view"
)

// fakeAPI serves /list and /detail/{id} and counts requests.
type fakeAPI struct {
	*httptest.Server
	mu       sync.Mutex
	listBody string
	status   int
	hits     atomic.Int32
}

func (a *fakeAPI) setList(body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listBody = body
}

func (a *fakeAPI) setStatus(code int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = code
}

func newFakeAPI(t *testing.T, listBody string) *fakeAPI {
	t.Helper()
	api := &fakeAPI{listBody: listBody, status: http.StatusOK}
	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.hits.Add(1)
		api.mu.Lock()
		status, listBody := api.status, api.listBody
		api.mu.Unlock()
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/list":
			fmt.Fprint(w, listBody)
		case strings.HasPrefix(r.URL.Path, "/detail/"):
			id := strings.TrimPrefix(r.URL.Path, "/detail/")
			fmt.Fprintf(w, `{"error":false,"restaurant":{"id":%q,"name":"Resto %s","city":"Medan","rating":4.5,"pictureId":"1","address":"Jl. Satu"}}`, id, id)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(api.Close)
	return api
}

func listJSON(names ...string) string {
	var items []string
	for i, n := range names {
		items = append(items, fmt.Sprintf(`{"id":"id-%d","name":%q,"description":"desc","pictureId":"%d","city":"Medan","rating":4}`, i, n, i))
	}
	return `{"error":false,"message":"success","count":` + fmt.Sprint(len(names)) + `,"restaurants":[` + strings.Join(items, ",") + `]}`
}

type testEnv struct {
	loader  *Loader
	client  *restaurant.Client
	caches  *cache.Storage
	logs    *bytes.Buffer
	closeDB func()
}

func setup(t *testing.T, baseURL string) *testEnv {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	client := restaurant.NewClient(baseURL, "", 2*time.Second)
	renderer, err := view.New(client, restaurant.ImageMedium)
	if err != nil {
		t.Fatalf("view.New: %v", err)
	}

	var logs bytes.Buffer
	caches := cache.NewStorage(database)
	l := New(caches, client, renderer, Options{Logger: log.New(&logs, "", 0)})
	return &testEnv{loader: l, client: client, caches: caches, logs: &logs, closeDB: func() { database.Close() }}
}

func TestLoadListFromCacheWithoutNetwork(t *testing.T) {
	api := newFakeAPI(t, listJSON("ignored"))
	url := api.URL
	api.Close() // no network

	env := setup(t, url)
	ctx := context.Background()

	c, _ := env.caches.Open(ctx, DefaultListCache)
	if err := c.Put(ctx, cache.Entry{URL: env.client.ListURL(), Body: []byte(listJSON("Cached A", "Cached B", "Cached C"))}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	out := string(env.loader.LoadList(ctx))
	if got := strings.Count(out, `class="restaurant-card"`); got != 3 {
		t.Fatalf("expected 3 cached cards, got %d:\n%s", got, out)
	}
	a, b, cc := strings.Index(out, "Cached A"), strings.Index(out, "Cached B"), strings.Index(out, "Cached C")
	if !(a < b && b < cc) {
		t.Error("cached restaurants not rendered in cache order")
	}
	if !strings.Contains(env.logs.String(), "from cache") {
		t.Errorf("expected cache source in logs, got %q", env.logs.String())
	}
}

func TestLoadListMissThenHit(t *testing.T) {
	api := newFakeAPI(t, listJSON("One", "Two"))
	env := setup(t, api.URL)
	ctx := context.Background()

	out := string(env.loader.LoadList(ctx))
	if got := strings.Count(out, `class="restaurant-card"`); got != 2 {
		t.Fatalf("expected 2 cards, got %d", got)
	}
	if strings.Index(out, "One") > strings.Index(out, "Two") {
		t.Error("cards not in response order")
	}
	if api.hits.Load() != 1 {
		t.Fatalf("expected 1 network hit, got %d", api.hits.Load())
	}

	// The second load must be served by the cache.
	api.setList(listJSON("Changed"))
	out2 := string(env.loader.LoadList(ctx))
	if api.hits.Load() != 1 {
		t.Errorf("second load hit the network (%d hits)", api.hits.Load())
	}
	if out2 != out {
		t.Error("cached load rendered different output")
	}
}

func TestLoadListEmptyResponse(t *testing.T) {
	api := newFakeAPI(t, listJSON())
	env := setup(t, api.URL)

	out := string(env.loader.LoadList(context.Background()))
	if !strings.Contains(out, "no-restaurants-message") {
		t.Errorf("expected empty placeholder, got %s", out)
	}
	if strings.Contains(out, "error-message") {
		t.Error("empty response must not render the error view")
	}
}

func TestLoadListNetworkFailure(t *testing.T) {
	api := newFakeAPI(t, listJSON("x"))
	url := api.URL
	api.Close()

	env := setup(t, url)
	out := string(env.loader.LoadList(context.Background()))
	if !strings.Contains(out, "error-message") {
		t.Errorf("expected error view, got %s", out)
	}
	if strings.Contains(out, "no-restaurants-message") {
		t.Error("error view must be distinguishable from empty placeholder")
	}
	if !strings.Contains(env.logs.String(), "network failure") {
		t.Errorf("expected network failure logged, got %q", env.logs.String())
	}
}

func TestLoadListBadStatusNotCached(t *testing.T) {
	api := newFakeAPI(t, listJSON("x"))
	api.setStatus(http.StatusInternalServerError)
	env := setup(t, api.URL)
	ctx := context.Background()

	out := string(env.loader.LoadList(ctx))
	if !strings.Contains(out, "error-message") {
		t.Errorf("expected error view, got %s", out)
	}

	c, _ := env.caches.Open(ctx, DefaultListCache)
	if _, ok, _ := c.Match(ctx, env.client.ListURL()); ok {
		t.Error("failed response must not be cached")
	}

	// No automatic retry: exactly one request.
	if api.hits.Load() != 1 {
		t.Errorf("expected 1 request, got %d", api.hits.Load())
	}
}

func TestLoadListParseFailure(t *testing.T) {
	api := newFakeAPI(t, `{"restaurants": [{"id": `)
	env := setup(t, api.URL)
	ctx := context.Background()

	out := string(env.loader.LoadList(ctx))
	if !strings.Contains(out, "error-message") {
		t.Errorf("expected error view, got %s", out)
	}
	if strings.Contains(out, "restaurant-card") {
		t.Error("partially parsed data must never be rendered")
	}
	if !strings.Contains(env.logs.String(), "parse failure") {
		t.Errorf("expected parse failure logged, got %q", env.logs.String())
	}
	c, _ := env.caches.Open(ctx, DefaultListCache)
	if _, ok, _ := c.Match(ctx, env.client.ListURL()); ok {
		t.Error("unparseable response must not be cached")
	}
}

func TestLoadListCacheFailure(t *testing.T) {
	api := newFakeAPI(t, listJSON("x"))
	env := setup(t, api.URL)
	env.closeDB()

	out := string(env.loader.LoadList(context.Background()))
	if !strings.Contains(out, "error-message") {
		t.Errorf("expected error view, got %s", out)
	}
	if !strings.Contains(env.logs.String(), "cache failure") {
		t.Errorf("expected cache failure logged, got %q", env.logs.String())
	}
}

func TestRestaurantsAndDetail(t *testing.T) {
	api := newFakeAPI(t, listJSON("Alpha", "Beta"))
	env := setup(t, api.URL)
	ctx := context.Background()

	list, src, err := env.loader.Restaurants(ctx)
	if err != nil {
		t.Fatalf("Restaurants: %v", err)
	}
	if len(list) != 2 || src != SourceNetwork {
		t.Errorf("Restaurants() = %d items from %s", len(list), src)
	}
	_, src, _ = env.loader.Restaurants(ctx)
	if src != SourceCache {
		t.Errorf("second Restaurants() source = %s, want cache", src)
	}

	d, src, err := env.loader.Detail(ctx, "id-0")
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if d.ID != "id-0" || d.Address != "Jl. Satu" || src != SourceNetwork {
		t.Errorf("Detail() = %+v from %s", d, src)
	}
	hits := api.hits.Load()
	if _, src, _ := env.loader.Detail(ctx, "id-0"); src != SourceCache {
		t.Errorf("second Detail() source = %s, want cache", src)
	}
	if api.hits.Load() != hits {
		t.Error("cached detail hit the network")
	}
}

func TestRefreshOverwrites(t *testing.T) {
	api := newFakeAPI(t, listJSON("Old"))
	env := setup(t, api.URL)
	ctx := context.Background()

	env.loader.LoadList(ctx)
	api.setList(listJSON("New", "Newer"))

	list, err := env.loader.RefreshList(ctx)
	if err != nil {
		t.Fatalf("RefreshList: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 refreshed restaurants, got %d", len(list))
	}

	out := string(env.loader.LoadList(ctx))
	if !strings.Contains(out, "Newer") || strings.Contains(out, ">Old<") {
		t.Errorf("cache not overwritten by refresh: %s", out)
	}

	c, _ := env.caches.Open(ctx, DefaultListCache)
	keys, _ := c.Keys(ctx)
	if len(keys) != 1 {
		t.Errorf("expected one cache entry, got %v", keys)
	}

	if _, err := env.loader.RefreshDetail(ctx, "id-1"); err != nil {
		t.Errorf("RefreshDetail: %v", err)
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&restaurant.StatusError{URL: "u", StatusCode: 500}, "network"},
		{fmt.Errorf("wrap: %w", restaurant.ErrParse), "parse"},
		{fmt.Errorf("wrap: %w", cache.ErrCache), "cache"},
		{errors.New("other"), "unexpected"},
	}
	for _, tt := range tests {
		if got := Kind(tt.err); got != tt.want {
			t.Errorf("Kind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
