package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Aliases: []string{"fav"},
	Short:   "Manage favorite restaurants",
	Long:    `List, add and remove the restaurants saved as favorites on this machine.`,
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorite restaurants",
	RunE:  runFavoritesList,
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add a restaurant to the favorites",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoritesAdd,
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a restaurant from the favorites",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoritesRemove,
}

func init() {
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	rootCmd.AddCommand(favoritesCmd)
}

func runFavoritesList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	list, err := a.favorites.List(context.Background())
	if err != nil {
		return fmt.Errorf("listing favorites: %w", err)
	}

	if len(list) == 0 {
		fmt.Println("No favorite restaurants yet. Use `restohub favorites add <id>` to add one.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCITY\tRATING")
	for _, r := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\n", r.ID, r.Name, r.City, r.Rating)
	}
	w.Flush()

	return nil
}

func runFavoritesAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.pages.AddFavorite(context.Background(), args[0]); err != nil {
		return fmt.Errorf("adding favorite: %w", err)
	}
	fmt.Printf("Added %s to favorites.\n", args[0])
	return nil
}

func runFavoritesRemove(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.pages.RemoveFavorite(context.Background(), args[0]); err != nil {
		return fmt.Errorf("removing favorite: %w", err)
	}
	fmt.Printf("Removed %s from favorites.\n", args[0])
	return nil
}
