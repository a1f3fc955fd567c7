package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/restohub/internal/router"
)

var viewCmd = &cobra.Command{
	Use:   "view [fragment]",
	Short: "Render a route's main content to stdout",
	Long: `Runs the router for a navigation fragment such as '#/', '#/favorite',
'#/about-me' or '#/detail/<id>' and prints the rendered HTML.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fragment := "#/"
		if len(args) == 1 {
			fragment = args[0]
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		route, html, ok := router.Render(cmd.Context(), a.pages, fragment)
		if verbose {
			fmt.Fprintf(os.Stderr, "route: %s\n", route.Name())
		}
		if !ok {
			fmt.Fprintf(os.Stderr, "%s renders nothing\n", fragment)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(html))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
