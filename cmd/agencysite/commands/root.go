package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mediaonstake/agencysite/internal/config"
)

// Set at build time with -ldflags "-X .../commands.Version=...".
var (
	Version = "dev"
	Commit  = "none"
)

var (
	configPath string
	devMode    bool
	cfg        config.Config
)

// Execute runs the root command.
func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "agencysite",
		Short:         "MediaOnStake agency site server",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			base := config.Default()
			if devMode {
				base = config.Development()
			}
			c, err := config.LoadOver(base, configPath)
			if err != nil {
				return err
			}
			cfg = c
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().BoolVar(&devMode, "dev", false, "start from development defaults")

	root.AddCommand(serveCmd(), linkCmd(), versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "agencysite %s (%s)\n", Version, Commit)
			return err
		},
	}
}
