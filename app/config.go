package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/northsupermart/storefront/internal/config"
)

func init() { //nolint: gochecknoinits
	configDumpCmd.Flags().StringVar(&dumpFormat, "format", "toml", "output format: toml or json")

	configCmd.AddCommand(configDumpCmd)
	rootCmd.AddCommand(configCmd)
}

var (
	dumpFormat string

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	configDumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Print the effective configuration after env overrides",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := config.ReadConfig(configPath)
			if err != nil {
				return err //nolint:wrapcheck
			}

			out, err := config.Dump(&c, dumpFormat)
			if err != nil {
				return err //nolint:wrapcheck
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err //nolint:wrapcheck
		},
	}
)
