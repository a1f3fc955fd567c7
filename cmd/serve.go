package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/restohub/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the restaurant catalogue and favorites to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		favCount, _ := a.favorites.Count(context.Background())
		fmt.Fprintf(os.Stderr, "restohub MCP server started on stdio (api=%s, favorites=%d)\n", a.cfg.APIBaseURL, favCount)

		srv := mcpserver.NewServer(a.loader, a.pages, a.favorites)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
