package cmd

import (
	"github.com/bnema/chainscript-cli/internal/logging"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cs",
		Short:         "chainscript CLI (cs): identifiers, call scripts and time units",
		Long:          "cs (chainscript CLI) keeps the address book and contract registry a script author refers to, lists their display identifiers, inspects call-script files and converts time-unit literals.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		cmd.SetContext(logging.WithCommand(cmd.Context(), cmd.CommandPath()))
	}
	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return app.close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAddressCmd(app),
		newContractCmd(app),
		newIdentifiersCmd(app),
		newScriptCmd(app),
		newUnitsCmd(),
	)

	return rootCmd
}
