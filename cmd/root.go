package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/restohub/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "restohub",
	Short: "Restaurant catalogue with offline cache and local favorites",
	Long: `RestoHub serves a restaurant catalogue web app backed by the public
restaurant API. Responses are cached locally so the catalogue keeps working
offline, favorites are stored on this machine, and the same data is exposed
to AI agents via MCP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env values feed the RESTOHUB_* overrides in config.Load.
		return config.LoadDotEnv()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
