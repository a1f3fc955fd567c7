package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/restohub/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize restohub configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure restohub and generates a .restohub.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
