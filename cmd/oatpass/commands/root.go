package commands

import "github.com/spf13/cobra"

// Execute runs the root command.
func Execute() error {
	return newRootCommand().Execute()
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "oatpass",
		Short:         "Password generation and hashing toolbox",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newPasswordCommand())
	rootCmd.AddCommand(newHashCommand())

	return rootCmd
}
