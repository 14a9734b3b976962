// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "storefront is the JSON API behind the North Supermart shop",
	Long: `storefront serves the product catalog, checkout, customer accounts
and the back-office API of the North Supermart online shop.`,
	Args: cobra.OnlyValidArgs,
}

var (
	configPath string // Path to the configuration directory
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./etc/", "directory holding main.toml")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
