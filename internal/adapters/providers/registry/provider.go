// Package registry provides identifiers for contracts kept in the contract
// registry.
//
// Prefix rule: the prefixed label is "<namespace>:<name>"; the type tag is the
// contract kind either way. Registration fills an empty namespace with
// domain.DefaultContractNamespace, so the prefixed label always differs.
//
// Failures: domain.ErrContractNotFound when the contract is gone;
// domain.ErrIdentifierNotFound when the stored contract has a blank name or
// kind.
package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/chainscript-cli/internal/domain"
	"github.com/bnema/chainscript-cli/internal/ports"
)

type Provider struct {
	id       domain.ContractID
	registry ports.ContractRegistry
}

var _ ports.DataProvider = (*Provider)(nil)

func NewProvider(id domain.ContractID, registry ports.ContractRegistry) *Provider {
	return &Provider{id: id, registry: registry}
}

func (p *Provider) ID() string {
	return string(p.id)
}

func (p *Provider) Identifiers(ctx context.Context, addPrefix bool) (domain.Identifier, error) {
	contract, err := p.registry.GetByID(ctx, p.id)
	if err != nil {
		return domain.Identifier{}, fmt.Errorf("contract %q: %w", p.id, err)
	}
	contract.ApplyDefaults()

	name := domain.NormalizeLabel(contract.Name)
	kind := strings.TrimSpace(contract.Kind)
	if name == "" || kind == "" {
		return domain.Identifier{}, fmt.Errorf("contract %q has no name or kind: %w", p.id, domain.ErrIdentifierNotFound)
	}

	label := name
	if addPrefix {
		label = domain.NormalizeLabel(contract.Namespace) + ":" + label
	}

	return domain.Identifier{Type: kind, Label: label}, nil
}
