package cmd

import (
	"fmt"

	"github.com/bnema/chainscript-cli/internal/application"
	"github.com/bnema/chainscript-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAddressCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Manage the address book",
	}

	cmd.AddCommand(
		newAddressAddCmd(app),
		newAddressListCmd(app),
		newAddressRemoveCmd(app),
	)

	return cmd
}

func newAddressAddCmd(app *app) *cobra.Command {
	var (
		id      string
		name    string
		address string
		note    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add or replace an address book entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			entry, err := app.service.AddAddress(cmd.Context(), application.AddAddressCommand{
				ID:      domain.AddressID(id),
				Name:    name,
				Address: address,
				Note:    note,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", entry.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "entry id (generated when empty)")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&address, "address", "", "address the entry points to")
	cmd.Flags().StringVar(&note, "note", "", "free-form note")
	_ = cmd.MarkFlagRequired("address")

	return cmd
}

func newAddressListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List address book entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := app.service.ListAddresses(cmd.Context())
			if err != nil {
				return err
			}

			for _, entry := range entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", entry.ID, entry.Name, entry.Address)
			}

			return nil
		},
	}
}

func newAddressRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an address book entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.service.RemoveAddress(cmd.Context(), domain.AddressID(args[0])); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return err
		},
	}
}
