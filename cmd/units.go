package cmd

import (
	"fmt"

	"github.com/bnema/chainscript-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newUnitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units",
		Short: "Time-unit codes accepted in scripts",
	}

	cmd.AddCommand(
		newUnitsListCmd(),
		newUnitsConvertCmd(),
	)

	return cmd
}

func newUnitsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List time-unit codes and their length in seconds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, unit := range domain.TimeUnits() {
				seconds, err := domain.SecondsFor(string(unit))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", unit, seconds)
			}

			return nil
		},
	}
}

func newUnitsConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert EXPR",
		Short: "Convert a duration literal such as 3d or 12mo to seconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds, err := domain.ParseDuration(args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), seconds)
			return err
		},
	}
}
