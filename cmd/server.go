package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/restohub/internal/server"
	"github.com/ziadkadry99/restohub/internal/shell"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the restohub web app",
	Long:  `Starts the restohub web server: the browser shell, the /ws/navigate channel and the /view fallback.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		port := a.cfg.Port
		if cmd.Flags().Changed("port") {
			port = serverPort
		}

		srv := server.New(server.Config{
			Port:     port,
			AllowAll: a.cfg.AllowAllOrigins,
		}, a.db)

		shell.New(a.pages).RegisterRoutes(srv.Router())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		favCount, _ := a.favorites.Count(context.Background())
		fmt.Fprintf(os.Stderr, "restohub server v%s starting on port %d\n", Version, port)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", a.cfg.DBPath())
		fmt.Fprintf(os.Stderr, "  API: %s\n", a.cfg.APIBaseURL)
		fmt.Fprintf(os.Stderr, "  Favorites: %d\n", favCount)

		return srv.Start()
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serverCmd)
}
