package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/restohub/internal/loader"
	"github.com/ziadkadry99/restohub/internal/restaurant"
	"github.com/ziadkadry99/restohub/internal/router"
)

// handleListRestaurants returns the catalogue, cache-first, optionally
// filtered by city and minimum rating.
func (s *Server) handleListRestaurants(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city := strings.TrimSpace(request.GetString("city", ""))
	minRating := request.GetFloat("min_rating", 0)

	list, source, err := s.loader.Restaurants(ctx)
	if err != nil {
		s.loader.LogFailure("list", err)
		return mcp.NewToolResultError(fmt.Sprintf("failed to load restaurants (%s failure)", loader.Kind(err))), nil
	}

	var filtered []restaurant.Restaurant
	for _, r := range list {
		if city != "" && !strings.EqualFold(r.City, city) {
			continue
		}
		if r.Rating < minRating {
			continue
		}
		filtered = append(filtered, r)
	}

	if len(filtered) == 0 {
		return mcp.NewToolResultText("No restaurants found."), nil
	}

	return mcp.NewToolResultText(formatRestaurants(
		fmt.Sprintf("Found %d restaurant(s) (from %s):\n", len(filtered), source), filtered)), nil
}

// handleGetRestaurant returns a restaurant's detail, cache-first.
func (s *Server) handleGetRestaurant(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	d, _, err := s.loader.Detail(ctx, id)
	if err != nil {
		s.loader.LogFailure("detail", err)
		return mcp.NewToolResultError(fmt.Sprintf("failed to load restaurant %q (%s failure)", id, loader.Kind(err))), nil
	}

	favorite, err := s.favorites.Has(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read favorites: %v", err)), nil
	}

	return mcp.NewToolResultText(formatDetail(d, favorite)), nil
}

// handleListFavorites returns the stored favorites in insertion order.
func (s *Server) handleListFavorites(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := s.favorites.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read favorites: %v", err)), nil
	}
	if len(list) == 0 {
		return mcp.NewToolResultText("No favorite restaurants yet."), nil
	}
	return mcp.NewToolResultText(formatRestaurants(
		fmt.Sprintf("%d favorite restaurant(s):\n", len(list)), list)), nil
}

// handleAddFavorite saves a restaurant as a favorite.
func (s *Server) handleAddFavorite(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	if err := s.pages.AddFavorite(ctx, id); err != nil {
		s.loader.LogFailure("favorite", err)
		return mcp.NewToolResultError(fmt.Sprintf("failed to add %q to favorites (%s failure)", id, loader.Kind(err))), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Added %s to favorites.", id)), nil
}

// handleRemoveFavorite removes a restaurant from the favorites. Removing a
// restaurant that is not a favorite succeeds.
func (s *Server) handleRemoveFavorite(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	if err := s.pages.RemoveFavorite(ctx, id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to remove %q from favorites: %v", id, err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Removed %s from favorites.", id)), nil
}

// handleRenderRoute renders the main content of a route the same way the
// browser shell does.
func (s *Server) handleRenderRoute(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fragment, err := request.RequireString("fragment")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: fragment"), nil
	}

	route, html, ok := router.Render(ctx, s.pages, fragment)
	if !ok {
		return mcp.NewToolResultText(fmt.Sprintf("Route %s renders nothing.", route.Name())), nil
	}
	return mcp.NewToolResultText(string(html)), nil
}

// formatRestaurants renders restaurants as a compact listing for AI agents.
func formatRestaurants(header string, list []restaurant.Restaurant) string {
	var sb strings.Builder
	sb.WriteString(header)
	for _, r := range list {
		sb.WriteString(fmt.Sprintf("\n- %s (id: %s)\n  City: %s | Rating: %.1f\n  %s\n",
			r.Name, r.ID, r.City, r.Rating, r.Description))
	}
	return sb.String()
}

// formatDetail renders a restaurant detail for AI agents.
func formatDetail(d *restaurant.Detail, favorite bool) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s (id: %s)\n", d.Name, d.ID))
	sb.WriteString(fmt.Sprintf("Address: %s, %s\n", d.Address, d.City))
	sb.WriteString(fmt.Sprintf("Rating: %.1f\n", d.Rating))
	sb.WriteString(fmt.Sprintf("Favorite: %t\n", favorite))

	if len(d.Categories) > 0 {
		names := make([]string, len(d.Categories))
		for i, c := range d.Categories {
			names[i] = c.Name
		}
		sb.WriteString(fmt.Sprintf("Categories: %s\n", strings.Join(names, ", ")))
	}

	sb.WriteString("\n")
	sb.WriteString(d.Description)
	sb.WriteString("\n")

	writeMenu(&sb, "Foods", d.Menus.Foods)
	writeMenu(&sb, "Drinks", d.Menus.Drinks)

	if len(d.CustomerReviews) > 0 {
		sb.WriteString("\nCustomer reviews:\n")
		for _, r := range d.CustomerReviews {
			sb.WriteString(fmt.Sprintf("- %s (%s): %s\n", r.Name, r.Date, r.Review))
		}
	}

	return sb.String()
}

func writeMenu(sb *strings.Builder, title string, items []restaurant.MenuItem) {
	if len(items) == 0 {
		return
	}
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	sb.WriteString(fmt.Sprintf("\n%s: %s\n", title, strings.Join(names, ", ")))
}
