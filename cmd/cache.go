package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and purge the offline response cache",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached responses",
	RunE:  runCacheList,
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge [glob]",
	Short: "Remove cached responses whose URL matches a glob (all when omitted)",
	Long: `Removes cached responses. The glob is matched against the full URL and
supports ** (e.g. '**/detail/*'). Without a glob every entry is removed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCachePurge,
}

var cachePurgeName string

func init() {
	cachePurgeCmd.Flags().StringVar(&cachePurgeName, "cache", "", "Only purge this named cache")
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cachePurgeCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := context.Background()
	names, err := a.caches.Names(ctx)
	if err != nil {
		return fmt.Errorf("listing caches: %w", err)
	}

	if len(names) == 0 {
		fmt.Println("The cache is empty. Open the app or run `restohub prefetch` to fill it.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CACHE\tURL\tSTATUS\tBYTES\tSTORED")
	for _, name := range names {
		c, err := a.caches.Open(ctx, name)
		if err != nil {
			return fmt.Errorf("opening cache %s: %w", name, err)
		}
		entries, err := c.Entries(ctx)
		if err != nil {
			return fmt.Errorf("reading cache %s: %w", name, err)
		}
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
				name, e.URL, e.StatusCode, len(e.Body), e.StoredAt.Format("2006-01-02 15:04:05"))
		}
	}
	w.Flush()

	return nil
}

func runCachePurge(cmd *cobra.Command, args []string) error {
	pattern := ""
	if len(args) == 1 {
		pattern = args[0]
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := context.Background()
	names := []string{cachePurgeName}
	if cachePurgeName == "" {
		names, err = a.caches.Names(ctx)
		if err != nil {
			return fmt.Errorf("listing caches: %w", err)
		}
	}

	total := 0
	for _, name := range names {
		c, err := a.caches.Open(ctx, name)
		if err != nil {
			return fmt.Errorf("opening cache %s: %w", name, err)
		}
		n, err := c.Purge(ctx, pattern)
		if err != nil {
			return fmt.Errorf("purging cache %s: %w", name, err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "%s: removed %d\n", name, n)
		}
		total += n
	}

	fmt.Printf("Removed %d cached response(s).\n", total)
	return nil
}
