package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/restohub/internal/favorites"
	"github.com/ziadkadry99/restohub/internal/loader"
	"github.com/ziadkadry99/restohub/internal/pages"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the restaurant catalogue and the
// local favorites to AI agents.
type Server struct {
	loader    *loader.Loader
	pages     *pages.Pages
	favorites *favorites.Store
	mcp       *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(l *loader.Loader, p *pages.Pages, favs *favorites.Store) *Server {
	s := &Server{
		loader:    l,
		pages:     p,
		favorites: favs,
	}

	s.mcp = server.NewMCPServer(
		"restohub",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listRestaurantsTool, s.handleListRestaurants)
	s.mcp.AddTool(getRestaurantTool, s.handleGetRestaurant)
	s.mcp.AddTool(listFavoritesTool, s.handleListFavorites)
	s.mcp.AddTool(addFavoriteTool, s.handleAddFavorite)
	s.mcp.AddTool(removeFavoriteTool, s.handleRemoveFavorite)
	s.mcp.AddTool(renderRouteTool, s.handleRenderRoute)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
