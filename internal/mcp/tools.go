package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listRestaurantsTool defines the list_restaurants MCP tool.
var listRestaurantsTool = mcp.NewTool("list_restaurants",
	mcp.WithDescription("List restaurants from the catalogue. Served from the offline cache when available."),
	mcp.WithString("city",
		mcp.Description("Only return restaurants in this city (case-insensitive)"),
	),
	mcp.WithNumber("min_rating",
		mcp.Description("Only return restaurants rated at least this much"),
	),
)

// getRestaurantTool defines the get_restaurant MCP tool.
var getRestaurantTool = mcp.NewTool("get_restaurant",
	mcp.WithDescription("Get the full detail of a restaurant: address, categories, menus and customer reviews."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Restaurant id"),
	),
)

// listFavoritesTool defines the list_favorites MCP tool.
var listFavoritesTool = mcp.NewTool("list_favorites",
	mcp.WithDescription("List the restaurants saved as favorites on this machine."),
)

// addFavoriteTool defines the add_favorite MCP tool.
var addFavoriteTool = mcp.NewTool("add_favorite",
	mcp.WithDescription("Save a restaurant as a favorite."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Restaurant id"),
	),
)

// removeFavoriteTool defines the remove_favorite MCP tool.
var removeFavoriteTool = mcp.NewTool("remove_favorite",
	mcp.WithDescription("Remove a restaurant from the favorites."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Restaurant id"),
	),
)

// renderRouteTool defines the render_route MCP tool.
var renderRouteTool = mcp.NewTool("render_route",
	mcp.WithDescription("Render the HTML main content for an app route such as #/, #/favorite, #/about-me or #/detail/<id>."),
	mcp.WithString("fragment",
		mcp.Required(),
		mcp.Description("Navigation fragment, e.g. #/detail/rqdv5juczeskfw1e867"),
	),
)
