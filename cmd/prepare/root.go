package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd - корневая команда офлайн-подготовки базы знаний
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "prepare",
		Short:         "Knowledge base preparation for the odor source service",
		Long:          `Offline pipeline: converts a raw GeoJSON export into the flat facility dataset and builds the TF-IDF relevance index the API serves from.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug|info|warn|error)")

	rootCmd.AddCommand(
		NewIngestCmd(),
		NewIndexCmd(),
	)

	return rootCmd
}
