package mcp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/restohub/internal/cache"
	"github.com/ziadkadry99/restohub/internal/db"
	"github.com/ziadkadry99/restohub/internal/favorites"
	"github.com/ziadkadry99/restohub/internal/loader"
	"github.com/ziadkadry99/restohub/internal/pages"
	"github.com/ziadkadry99/restohub/internal/restaurant"
	"github.com/ziadkadry99/restohub/internal/view"
)

const apiList = `{"error":false,"message":"success","count":3,"restaurants":[
 {"id":"rqdv5juczeskfw1e867","name":"Melting Pot","description":"Lorem ipsum","pictureId":"14","city":"Medan","rating":4.2},
 {"id":"s1knt6za9kkfw1e867","name":"Kafe Kita","description":"Quisque rutrum","pictureId":"25","city":"Gorontalo","rating":4},
 {"id":"w9pga3s2tubkfw1e867","name":"Bring Your Phone Cafe","description":"Aenean leo","pictureId":"03","city":"Surabaya","rating":4.2}]}`

const apiDetail = `{"error":false,"message":"success","restaurant":{
 "id":%q,"name":"Melting Pot","description":"Lorem ipsum","pictureId":"14","city":"Medan","rating":4.2,
 "address":"Jln. Pandeglang no 19",
 "categories":[{"name":"Italia"},{"name":"Modern"}],
 "menus":{"foods":[{"name":"Paket rosemary"}],"drinks":[{"name":"Es krim"}]},
 "customerReviews":[{"name":"Ahmad","review":"Tidak rekomendasi untuk pelajar!","date":"13 November 2019"}]}}`

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/list":
			io.WriteString(w, apiList)
		case strings.HasPrefix(r.URL.Path, "/detail/missing"):
			http.Error(w, `{"error":true,"message":"restaurant not found"}`, http.StatusNotFound)
		case strings.HasPrefix(r.URL.Path, "/detail/"):
			fmt.Fprintf(w, apiDetail, strings.TrimPrefix(r.URL.Path, "/detail/"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestServer(t *testing.T, baseURL string) *Server {
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
	l := loader.New(cache.NewStorage(database), client, renderer, loader.Options{Logger: log.New(&bytes.Buffer{}, "", 0)})
	favs := favorites.NewStore(database)
	return NewServer(l, pages.New(l, favs, renderer), favs)
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text, result.IsError
}

func TestToolDefinitions(t *testing.T) {
	// Verify tool names and required properties.
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"list_restaurants", listRestaurantsTool, "list_restaurants"},
		{"get_restaurant", getRestaurantTool, "get_restaurant"},
		{"list_favorites", listFavoritesTool, "list_favorites"},
		{"add_favorite", addFavoriteTool, "add_favorite"},
		{"remove_favorite", removeFavoriteTool, "remove_favorite"},
		{"render_route", renderRouteTool, "render_route"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := newTestServer(t, newAPI(t).URL)
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
}

func TestHandleListRestaurants(t *testing.T) {
	srv := newTestServer(t, newAPI(t).URL)

	t.Run("all", func(t *testing.T) {
		text, isErr := call(t, srv.handleListRestaurants, map[string]any{})
		if isErr {
			t.Fatalf("unexpected tool error: %s", text)
		}
		if !strings.Contains(text, "Found 3 restaurant(s)") {
			t.Errorf("unexpected listing: %s", text)
		}
	})

	t.Run("city filter is case-insensitive", func(t *testing.T) {
		text, _ := call(t, srv.handleListRestaurants, map[string]any{"city": "medan"})
		if !strings.Contains(text, "Melting Pot") || strings.Contains(text, "Kafe Kita") {
			t.Errorf("city filter not applied: %s", text)
		}
	})

	t.Run("rating filter", func(t *testing.T) {
		text, _ := call(t, srv.handleListRestaurants, map[string]any{"min_rating": 4.1})
		if strings.Contains(text, "Kafe Kita") || !strings.Contains(text, "Found 2 restaurant(s)") {
			t.Errorf("rating filter not applied: %s", text)
		}
	})

	t.Run("no match", func(t *testing.T) {
		text, isErr := call(t, srv.handleListRestaurants, map[string]any{"city": "Atlantis"})
		if isErr || text != "No restaurants found." {
			t.Errorf("got %q (error=%v)", text, isErr)
		}
	})
}

func TestHandleListRestaurantsUnavailable(t *testing.T) {
	api := newAPI(t)
	srv := newTestServer(t, api.URL)
	api.Close()

	text, isErr := call(t, srv.handleListRestaurants, map[string]any{})
	if !isErr {
		t.Fatalf("expected tool error, got %s", text)
	}
	if !strings.Contains(text, "network failure") {
		t.Errorf("expected network failure, got %q", text)
	}
}

func TestHandleGetRestaurant(t *testing.T) {
	srv := newTestServer(t, newAPI(t).URL)

	text, isErr := call(t, srv.handleGetRestaurant, map[string]any{"id": "rqdv5juczeskfw1e867"})
	if isErr {
		t.Fatalf("unexpected tool error: %s", text)
	}
	for _, want := range []string{"Jln. Pandeglang no 19", "Categories: Italia, Modern", "Foods: Paket rosemary", "Drinks: Es krim", "Ahmad", "Favorite: false"} {
		if !strings.Contains(text, want) {
			t.Errorf("detail missing %q:\n%s", want, text)
		}
	}

	text, isErr = call(t, srv.handleGetRestaurant, map[string]any{"id": "missing"})
	if !isErr {
		t.Errorf("expected error for unknown restaurant, got %s", text)
	}

	_, isErr = call(t, srv.handleGetRestaurant, map[string]any{})
	if !isErr {
		t.Error("expected error for missing id")
	}
}

func TestFavoriteTools(t *testing.T) {
	srv := newTestServer(t, newAPI(t).URL)

	text, _ := call(t, srv.handleListFavorites, map[string]any{})
	if text != "No favorite restaurants yet." {
		t.Errorf("expected empty favorites, got %q", text)
	}

	text, isErr := call(t, srv.handleAddFavorite, map[string]any{"id": "rqdv5juczeskfw1e867"})
	if isErr {
		t.Fatalf("add_favorite: %s", text)
	}

	text, _ = call(t, srv.handleListFavorites, map[string]any{})
	if !strings.Contains(text, "1 favorite restaurant(s)") || !strings.Contains(text, "Melting Pot") {
		t.Errorf("unexpected favorites: %s", text)
	}

	text, _ = call(t, srv.handleGetRestaurant, map[string]any{"id": "rqdv5juczeskfw1e867"})
	if !strings.Contains(text, "Favorite: true") {
		t.Errorf("detail should report favorite: %s", text)
	}

	if _, isErr := call(t, srv.handleRemoveFavorite, map[string]any{"id": "rqdv5juczeskfw1e867"}); isErr {
		t.Fatal("remove_favorite failed")
	}
	// Removing again is not an error.
	if _, isErr := call(t, srv.handleRemoveFavorite, map[string]any{"id": "rqdv5juczeskfw1e867"}); isErr {
		t.Fatal("second remove_favorite failed")
	}

	text, _ = call(t, srv.handleListFavorites, map[string]any{})
	if text != "No favorite restaurants yet." {
		t.Errorf("expected empty favorites after removal, got %q", text)
	}

	if _, isErr := call(t, srv.handleAddFavorite, map[string]any{"id": "missing"}); !isErr {
		t.Error("expected error adding an unknown restaurant")
	}
}

func TestHandleRenderRoute(t *testing.T) {
	srv := newTestServer(t, newAPI(t).URL)

	tests := []struct {
		fragment string
		contains string
	}{
		{"#/", "restaurant-list"},
		{"#/favorite", "no-restaurants-message"},
		{"#/about-me", "about-me"},
		{"#/detail/rqdv5juczeskfw1e867", "favoriteButton"},
		{"#/detail/", "renders nothing"},
		{"#/nowhere", "Halaman tidak ditemukan."},
	}
	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			text, isErr := call(t, srv.handleRenderRoute, map[string]any{"fragment": tt.fragment})
			if isErr {
				t.Fatalf("unexpected tool error: %s", text)
			}
			if !strings.Contains(text, tt.contains) {
				t.Errorf("render of %s missing %q:\n%s", tt.fragment, tt.contains, text)
			}
		})
	}
}
