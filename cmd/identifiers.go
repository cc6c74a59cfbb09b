package cmd

import (
	"encoding/json"
	"fmt"

	identifiersadapter "github.com/bnema/chainscript-cli/internal/adapters/render/identifiers"
	"github.com/bnema/chainscript-cli/internal/application"
	"github.com/spf13/cobra"
)

func newIdentifiersCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "identifiers",
		Aliases: []string{"ids"},
		Short:   "List and resolve display identifiers",
	}

	cmd.AddCommand(
		newIdentifiersListCmd(app),
		newIdentifiersResolveCmd(app),
	)

	return cmd
}

func newIdentifiersListCmd(app *app) *cobra.Command {
	var (
		prefixed bool
		asJSON   bool
		plain    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the identifier of every known provider",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.service.LoadProviders(cmd.Context()); err != nil {
				return err
			}

			views, err := app.service.ListIdentifiers(cmd.Context(), prefixed)
			if err != nil {
				return err
			}

			return writeIdentifiersOutput(cmd, app, views, prefixed, asJSON, plain)
		},
	}

	cmd.Flags().BoolVar(&prefixed, "prefix", false, "use prefixed labels")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON output")
	cmd.Flags().BoolVar(&plain, "plain", false, "print tab-separated output")
	cmd.MarkFlagsMutuallyExclusive("json", "plain")

	return cmd
}

func newIdentifiersResolveCmd(app *app) *cobra.Command {
	var prefixed bool

	cmd := &cobra.Command{
		Use:   "resolve PROVIDER_ID",
		Short: "Print one provider's identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.service.LoadProviders(cmd.Context()); err != nil {
				return err
			}

			view, err := app.service.ResolveIdentifier(cmd.Context(), args[0], prefixed)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", view.Identifier.Type, view.Identifier.Label)
			return err
		},
	}

	cmd.Flags().BoolVar(&prefixed, "prefix", false, "use the prefixed label")

	return cmd
}

func writeIdentifiersOutput(cmd *cobra.Command, app *app, views []application.IdentifierView, prefixed, asJSON, plain bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	}

	if plain {
		_, err := fmt.Fprint(cmd.OutOrStdout(), identifiersadapter.RenderPlain(views))
		return err
	}

	rendered, err := app.identifierRenderer(views, identifiersadapter.RenderOptions{Prefixed: prefixed})
	if err != nil {
		return fmt.Errorf("render identifiers: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
