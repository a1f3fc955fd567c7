// Package pages implements the content of every route: the cache-backed
// restaurant list, the favorites list, the about page, restaurant details
// and the not-found message.
package pages

import (
	"context"
	"fmt"
	"html/template"

	"github.com/ziadkadry99/restohub/internal/favorites"
	"github.com/ziadkadry99/restohub/internal/loader"
	"github.com/ziadkadry99/restohub/internal/router"
	"github.com/ziadkadry99/restohub/internal/view"
)

var _ router.Pages = (*Pages)(nil)

// Pages renders route content from the loader and the favorites store.
type Pages struct {
	loader    *loader.Loader
	favorites *favorites.Store
	renderer  *view.Renderer
}

// New creates Pages.
func New(l *loader.Loader, favs *favorites.Store, renderer *view.Renderer) *Pages {
	return &Pages{loader: l, favorites: favs, renderer: renderer}
}

// Home renders the restaurant list, cache-first.
func (p *Pages) Home(ctx context.Context) template.HTML {
	return p.loader.LoadList(ctx)
}

// Favorites renders the stored favorites with the list renderer, so an empty
// store shows the empty placeholder.
func (p *Pages) Favorites(ctx context.Context) template.HTML {
	list, err := p.favorites.List(ctx)
	if err != nil {
		p.loader.LogFailure("favorites", err)
		return p.renderer.Error()
	}
	return p.renderer.List(list)
}

// About renders the static about page.
func (p *Pages) About(context.Context) template.HTML {
	return p.renderer.About()
}

// Detail renders a restaurant's detail page with its favorite toggle
// labelled by current membership.
func (p *Pages) Detail(ctx context.Context, id string) template.HTML {
	d, _, err := p.loader.Detail(ctx, id)
	if err != nil {
		p.loader.LogFailure("detail", err)
		return p.renderer.Error()
	}

	favorite, err := p.favorites.Has(ctx, id)
	if err != nil {
		p.loader.LogFailure("favorites", err)
	}
	return p.renderer.Detail(d, favorite)
}

// NotFound renders the unknown-route message. It is not logged.
func (p *Pages) NotFound(context.Context, []string) template.HTML {
	return p.renderer.NotFound()
}

// AddFavorite stores the restaurant as a favorite. The record comes from the
// detail endpoint, cache-first.
func (p *Pages) AddFavorite(ctx context.Context, id string) error {
	d, _, err := p.loader.Detail(ctx, id)
	if err != nil {
		return fmt.Errorf("loading restaurant %s: %w", id, err)
	}
	return p.favorites.Put(ctx, d.Summary())
}

// RemoveFavorite removes the restaurant from the favorites.
func (p *Pages) RemoveFavorite(ctx context.Context, id string) error {
	return p.favorites.Delete(ctx, id)
}

// ToggleFavorite flips favorite membership and returns the new state.
func (p *Pages) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	favorite, err := p.favorites.Has(ctx, id)
	if err != nil {
		return false, err
	}
	if favorite {
		return false, p.RemoveFavorite(ctx, id)
	}
	if err := p.AddFavorite(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// FavoriteButton renders the toggle for id with its current label.
func (p *Pages) FavoriteButton(id string, favorite bool) template.HTML {
	return p.renderer.FavoriteButton(id, favorite)
}
