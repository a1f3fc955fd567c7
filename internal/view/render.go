// Package view renders restaurant data into HTML fragments for the main
// content area.
package view

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"log"
	"unicode/utf8"

	"github.com/yuin/goldmark"

	"github.com/ziadkadry99/restohub/internal/restaurant"
)

// ExcerptLength is the number of characters of a description shown on a card.
const ExcerptLength = 100

//go:embed about.md
var aboutMarkdown []byte

// ImageSource builds picture URLs.
type ImageSource interface {
	ImageURL(pictureID, size string) string
}

// Renderer turns restaurant data into HTML fragments. It holds no state that
// changes after construction, so one Renderer can serve concurrent requests.
type Renderer struct {
	tmpl  *template.Template
	about template.HTML
}

// New parses the templates and pre-renders the about page.
func New(images ImageSource, imageSize string) (*Renderer, error) {
	funcs := template.FuncMap{
		"imageURL": func(pictureID string) string {
			return images.ImageURL(pictureID, imageSize)
		},
		"excerpt": Excerpt,
	}

	tmpl := template.New("view").Funcs(funcs)
	for _, src := range []string{listTemplate, favoriteButtonTemplate, detailTemplate, aboutTemplate} {
		if _, err := tmpl.Parse(src); err != nil {
			return nil, fmt.Errorf("parsing view templates: %w", err)
		}
	}

	var md bytes.Buffer
	if err := goldmark.Convert(aboutMarkdown, &md); err != nil {
		return nil, fmt.Errorf("rendering about page: %w", err)
	}

	r := &Renderer{tmpl: tmpl}
	about, err := r.execute("about", template.HTML(md.String()))
	if err != nil {
		return nil, err
	}
	r.about = about
	return r, nil
}

// List renders the restaurant cards in input order, or the empty placeholder
// when there are none.
func (r *Renderer) List(restaurants []restaurant.Restaurant) template.HTML {
	return r.mustExecute("list", restaurants)
}

// Detail renders a restaurant's detail page including the favorite toggle.
func (r *Renderer) Detail(d *restaurant.Detail, favorite bool) template.HTML {
	return r.mustExecute("detail", struct {
		Detail *restaurant.Detail
		Button buttonData
	}{d, buttonData{ID: d.ID, Favorite: favorite}})
}

// FavoriteButton renders only the favorite toggle, for relabelling it in
// place after a toggle.
func (r *Renderer) FavoriteButton(id string, favorite bool) template.HTML {
	return r.mustExecute("favoriteButton", buttonData{ID: id, Favorite: favorite})
}

// About returns the static about page.
func (r *Renderer) About() template.HTML { return r.about }

// Error returns the degraded view shown when data could not be loaded. It is
// structurally distinct from the empty list placeholder.
func (r *Renderer) Error() template.HTML { return template.HTML(errorHTML) }

// NotFound returns the unknown-route message.
func (r *Renderer) NotFound() template.HTML { return template.HTML(notFoundHTML) }

// FavoriteLabel is the toggle label for the given membership.
func FavoriteLabel(favorite bool) string {
	if favorite {
		return LabelRemoveFavorite
	}
	return LabelAddFavorite
}

// Excerpt returns the first ExcerptLength characters of s followed by "...".
// The ellipsis is appended even when s is shorter. Truncation counts runes,
// so multi-byte characters are never split.
func Excerpt(s string) string {
	if utf8.RuneCountInString(s) > ExcerptLength {
		s = string([]rune(s)[:ExcerptLength])
	}
	return s + "..."
}

type buttonData struct {
	ID       string
	Favorite bool
}

func (r *Renderer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("executing %s template: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// mustExecute falls back to the error view if a template fails, so callers
// always get a complete fragment.
func (r *Renderer) mustExecute(name string, data any) template.HTML {
	out, err := r.execute(name, data)
	if err != nil {
		log.Printf("view: %v", err)
		return r.Error()
	}
	return out
}
