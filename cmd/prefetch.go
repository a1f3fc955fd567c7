package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/restohub/internal/progress"
)

var prefetchCmd = &cobra.Command{
	Use:   "prefetch",
	Short: "Warm the offline cache with the list and every restaurant detail",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := a.loader.Prefetch(cmd.Context(), progress.NewReporter("Prefetching"))
		if err != nil {
			return err
		}

		fmt.Printf("Cached the list (%d restaurants) and %d detail page(s).\n", res.Restaurants, res.Details)
		if len(res.Failed) > 0 {
			fmt.Fprintf(os.Stderr, "%d detail page(s) could not be fetched", len(res.Failed))
			if verbose {
				fmt.Fprintf(os.Stderr, ": %v", res.Failed)
			}
			fmt.Fprintln(os.Stderr)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(prefetchCmd)
}
