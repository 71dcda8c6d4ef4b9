package cmd

import (
	"github.com/spf13/cobra"
)

const AppName = "winpath"

func Execute() error {
	rootCmd := &cobra.Command{
		Use:   AppName,
		Short: AppName + " - Windows path inspection and normalization tool",
	}

	rootCmd.AddCommand(DefineParseCommand())
	rootCmd.AddCommand(DefineJoinCommand())
	rootCmd.AddCommand(DefineLongPathCommand())
	rootCmd.AddCommand(DefineLintCommand())

	return rootCmd.Execute()
}
