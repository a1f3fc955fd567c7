package loader

import (
	"context"
	"net/http"
	"reflect"
	"testing"
)

type recordingProgress struct {
	total    int
	updates  []string
	finished bool
}

func (p *recordingProgress) Start(total int) { p.total = total }
func (p *recordingProgress) Update(_ int, message string) {
	p.updates = append(p.updates, message)
}
func (p *recordingProgress) Finish() { p.finished = true }

func TestPrefetchWarmsCaches(t *testing.T) {
	api := newFakeAPI(t, listJSON("Alpha", "Beta"))
	env := setup(t, api.URL)
	ctx := context.Background()

	var p recordingProgress
	res, err := env.loader.Prefetch(ctx, &p)
	if err != nil {
		t.Fatalf("Prefetch: %v", err)
	}
	if res.Restaurants != 2 || res.Details != 2 || len(res.Failed) != 0 {
		t.Errorf("unexpected result %+v", res)
	}
	if p.total != 2 || !p.finished || !reflect.DeepEqual(p.updates, []string{"Alpha", "Beta"}) {
		t.Errorf("unexpected progress %+v", p)
	}

	// Everything is now served offline.
	api.Close()
	if _, src, err := env.loader.Restaurants(ctx); err != nil || src != SourceCache {
		t.Errorf("Restaurants after prefetch: src=%s err=%v", src, err)
	}
	for _, id := range []string{"id-0", "id-1"} {
		d, src, err := env.loader.Detail(ctx, id)
		if err != nil || src != SourceCache {
			t.Fatalf("Detail(%s) after prefetch: src=%s err=%v", id, src, err)
		}
		if d.ID != id {
			t.Errorf("Detail(%s).ID = %q", id, d.ID)
		}
	}
}

func TestPrefetchListFailure(t *testing.T) {
	api := newFakeAPI(t, listJSON("Alpha"))
	api.setStatus(http.StatusInternalServerError)
	env := setup(t, api.URL)

	var p recordingProgress
	if _, err := env.loader.Prefetch(context.Background(), &p); err == nil {
		t.Fatal("expected error when the list cannot be fetched")
	}
	if p.finished {
		t.Error("progress should not start when the list fails")
	}
}
