package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/chainscript-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newScriptCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "script",
		Short: "Read and edit call-script files",
	}

	cmd.AddCommand(
		newScriptInspectCmd(app),
		newScriptAppendCmd(app),
	)

	return cmd
}

func newScriptInspectCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Summarize the call actions of a script file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := app.scripts.Inspect(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summaries)
			}

			for _, summary := range summaries {
				target := summary.Target
				if summary.ValidAddress {
					target = summary.Checksummed
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d bytes\t%s\n",
					summary.Index, target, summary.PayloadBytes, summary.Selector)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON output")

	return cmd
}

func newScriptAppendCmd(app *app) *cobra.Command {
	var (
		to   string
		data string
	)

	cmd := &cobra.Command{
		Use:   "append FILE",
		Short: "Append a call action to a script file, creating it if needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.scripts.Append(cmd.Context(), args[0], domain.NewCallAction(to, data)); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "appended call to %s\n", to)
			return err
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "call target address")
	cmd.Flags().StringVar(&data, "data", "", "hex-encoded call data")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}
