package identifiers

import (
	"fmt"
	"strings"

	"github.com/bnema/chainscript-cli/internal/application"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Prefixed bool
}

func renderView(views []application.IdentifierView, opts RenderOptions, s styles) string {
	header := fmt.Sprintf("providers: %d", len(views))
	if opts.Prefixed {
		header += " (prefixed)"
	}

	lines := []string{
		s.title.Render("Data Provider Identifiers"),
		s.header.Render(header),
	}

	if len(views) == 0 {
		lines = append(lines, s.empty.Render("No identifiers available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	idWidth, typeWidth := columnWidths(views)
	for _, view := range views {
		lines = append(lines, strings.Join([]string{
			s.provider.Width(idWidth).Render(view.ProviderID),
			s.typeTag.Width(typeWidth).Render(view.Identifier.Type),
			s.label.Render(view.Identifier.Label),
		}, "  "))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func columnWidths(views []application.IdentifierView) (int, int) {
	idWidth, typeWidth := 0, 0
	for _, view := range views {
		idWidth = max(idWidth, lipgloss.Width(view.ProviderID))
		typeWidth = max(typeWidth, lipgloss.Width(view.Identifier.Type))
	}

	return idWidth, typeWidth
}

// RenderPlain writes one tab-separated line per identifier: provider ID, type
// tag, label.
func RenderPlain(views []application.IdentifierView) string {
	var b strings.Builder
	for _, view := range views {
		b.WriteString(view.ProviderID)
		b.WriteByte('\t')
		b.WriteString(view.Identifier.Type)
		b.WriteByte('\t')
		b.WriteString(view.Identifier.Label)
		b.WriteByte('\n')
	}

	return b.String()
}
