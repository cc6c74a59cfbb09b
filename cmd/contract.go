package cmd

import (
	"fmt"

	"github.com/bnema/chainscript-cli/internal/application"
	"github.com/bnema/chainscript-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newContractCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Manage the contract registry",
	}

	cmd.AddCommand(
		newContractAddCmd(app),
		newContractListCmd(app),
	)

	return cmd
}

func newContractAddCmd(app *app) *cobra.Command {
	var input application.RegisterContractCommand
	var id string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register or update a contract",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input.ID = domain.ContractID(id)

			contract, err := app.service.RegisterContract(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "registered %s (%s:%s)\n", contract.ID, contract.Namespace, contract.Name)
			return err
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "contract id")
	cmd.Flags().StringVar(&input.Name, "name", "", "contract name")
	cmd.Flags().StringVar(&input.Kind, "kind", "", "contract kind, e.g. app or erc20")
	cmd.Flags().StringVar(&input.Address, "address", "", "contract address")
	cmd.Flags().StringVar(&input.Namespace, "namespace", "", "registry namespace (default \"local\")")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("address")

	return cmd
}

func newContractListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered contracts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			contracts, err := app.service.ListContracts(cmd.Context())
			if err != nil {
				return err
			}

			for _, contract := range contracts {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s:%s\t%s\t%s\n",
					contract.ID, contract.Namespace, contract.Name, contract.Kind, contract.Address)
			}

			return nil
		},
	}
}
