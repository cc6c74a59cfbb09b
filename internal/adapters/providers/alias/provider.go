// Package alias provides identifiers for local aliases defined in config.
//
// Prefix rule: the label is prefixed with "$", the variable sigil used by
// scripts; the type tag is always "alias". An alias with an empty name has no
// identifier and reports domain.ErrIdentifierNotFound.
//
// Provider IDs carry the same "$" sigil, so an alias never shares an ID with
// an address book entry or a contract.
package alias

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/chainscript-cli/internal/domain"
	"github.com/bnema/chainscript-cli/internal/ports"
)

const (
	TypeTag = "alias"
	Prefix  = "$"
)

type Provider struct {
	id   string
	name string
}

var _ ports.DataProvider = (*Provider)(nil)

func NewProvider(alias domain.Alias) *Provider {
	return &Provider{id: ProviderID(alias.ID), name: domain.NormalizeLabel(alias.Name)}
}

// ProviderID maps an alias ID onto the alias provider ID space. A blank alias
// ID stays blank.
func ProviderID(aliasID string) string {
	aliasID = strings.TrimSpace(aliasID)
	if aliasID == "" {
		return ""
	}

	return Prefix + aliasID
}

func (p *Provider) ID() string {
	return p.id
}

func (p *Provider) Identifiers(ctx context.Context, addPrefix bool) (domain.Identifier, error) {
	if err := ctx.Err(); err != nil {
		return domain.Identifier{}, err
	}

	if p.name == "" {
		return domain.Identifier{}, fmt.Errorf("alias %q: %w", p.id, domain.ErrIdentifierNotFound)
	}

	label := p.name
	if addPrefix {
		label = Prefix + label
	}

	return domain.Identifier{Type: TypeTag, Label: label}, nil
}
