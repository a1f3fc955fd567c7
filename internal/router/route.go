// Package router maps navigation fragments such as "#/detail/<id>" to the
// page that renders the main content area.
package router

import (
	"context"
	"html/template"
	"strings"
)

// Pages renders the content for each route. Every Route variant calls exactly
// one method, so adding a route means adding a method here, and every Pages
// implementation stops compiling until it handles it.
type Pages interface {
	Home(ctx context.Context) template.HTML
	Favorites(ctx context.Context) template.HTML
	About(ctx context.Context) template.HTML
	Detail(ctx context.Context, id string) template.HTML
	NotFound(ctx context.Context, segments []string) template.HTML
}

// Route is the parsed form of a navigation fragment. The set of variants is
// closed: Home, Favorite, AboutMe, Detail and Unknown.
type Route interface {
	// Name identifies the variant in logs and wire messages.
	Name() string
	// dispatch renders the route. ok is false when the route renders nothing.
	dispatch(ctx context.Context, p Pages) (html template.HTML, ok bool)
}

// Home is the restaurant list.
type Home struct{}

// Favorite is the favorites list.
type Favorite struct{}

// AboutMe is the static about page.
type AboutMe struct{}

// Detail is one restaurant's detail page. ID may be empty, in which case the
// route is a no-op.
type Detail struct {
	ID string
}

// Unknown is any fragment whose selector is not recognized.
type Unknown struct {
	Segments []string
}

func (Home) Name() string     { return "home" }
func (Favorite) Name() string { return "favorite" }
func (AboutMe) Name() string  { return "about-me" }
func (Detail) Name() string   { return "detail" }
func (Unknown) Name() string  { return "unknown" }

func (Home) dispatch(ctx context.Context, p Pages) (template.HTML, bool) {
	return p.Home(ctx), true
}

func (Favorite) dispatch(ctx context.Context, p Pages) (template.HTML, bool) {
	return p.Favorites(ctx), true
}

func (AboutMe) dispatch(ctx context.Context, p Pages) (template.HTML, bool) {
	return p.About(ctx), true
}

func (d Detail) dispatch(ctx context.Context, p Pages) (template.HTML, bool) {
	if d.ID == "" {
		return "", false
	}
	return p.Detail(ctx, d.ID), true
}

func (u Unknown) dispatch(ctx context.Context, p Pages) (template.HTML, bool) {
	return p.NotFound(ctx, u.Segments), true
}

// Parse turns a navigation fragment into a Route. A leading "#" is optional.
// The whole fragment is lower-cased, then split on "/"; segment 1 selects the
// route and a missing or empty selector means home.
func Parse(fragment string) Route {
	f := strings.ToLower(strings.TrimPrefix(fragment, "#"))
	segments := strings.Split(f, "/")

	selector := "/"
	if len(segments) > 1 && segments[1] != "" {
		selector = segments[1]
	}

	switch selector {
	case "/", "home":
		return Home{}
	case "favorite":
		return Favorite{}
	case "about-me":
		return AboutMe{}
	case "detail":
		var id string
		if len(segments) > 2 {
			id = segments[2]
		}
		return Detail{ID: id}
	default:
		return Unknown{Segments: segments}
	}
}

// DetailFragment is the fragment that encodes the detail route for id.
func DetailFragment(id string) string {
	return "#/detail/" + id
}

// Render parses fragment and renders its page. ok is false when the route
// renders nothing.
func Render(ctx context.Context, p Pages, fragment string) (route Route, html template.HTML, ok bool) {
	route = Parse(fragment)
	html, ok = route.dispatch(ctx, p)
	return route, html, ok
}
