package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var flags convertFlags

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "tautulli2sc",
		Short:         "Convert Tautulli CSV exports to the SensCritique import format",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, ctx, flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVar(&flags.movies, "movies", "", "Path to the movies CSV export")
	rootCmd.Flags().StringVar(&flags.tvShows, "tv-shows", "", "Path to the TV shows CSV export")
	rootCmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output CSV file path (default from config, falling back to output.csv)")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log verbosity: debug, info, warn, or error")
	rootCmd.Flags().StringVar(&flags.logFormat, "log-format", "", "Log output format: console or json")

	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
