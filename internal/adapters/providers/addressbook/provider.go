// Package addressbook provides identifiers for address book entries.
//
// Prefix rule: the label is prefixed with "@"; the type tag is always
// "address". The label is the entry name, or the EIP-55 checksummed address
// when the entry has no name.
//
// Failures: domain.ErrAddressNotFound when the entry has been removed from
// the book, domain.ErrIdentifierNotFound when the entry has neither a name
// nor a valid hex address.
package addressbook

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bnema/chainscript-cli/internal/domain"
	"github.com/bnema/chainscript-cli/internal/ports"
)

const (
	TypeTag = "address"
	Prefix  = "@"
)

type Provider struct {
	id   domain.AddressID
	repo ports.AddressBookRepository
}

var _ ports.DataProvider = (*Provider)(nil)

func NewProvider(id domain.AddressID, repo ports.AddressBookRepository) *Provider {
	return &Provider{id: id, repo: repo}
}

func (p *Provider) ID() string {
	return string(p.id)
}

func (p *Provider) Identifiers(ctx context.Context, addPrefix bool) (domain.Identifier, error) {
	entry, err := p.repo.GetByID(ctx, p.id)
	if err != nil {
		return domain.Identifier{}, fmt.Errorf("address book entry %q: %w", p.id, err)
	}

	label := domain.NormalizeLabel(entry.Name)
	if label == "" {
		if !common.IsHexAddress(entry.Address) {
			return domain.Identifier{}, fmt.Errorf("address book entry %q: %w", p.id, domain.ErrIdentifierNotFound)
		}
		label = common.HexToAddress(entry.Address).Hex()
	}

	if addPrefix {
		label = Prefix + label
	}

	return domain.Identifier{Type: TypeTag, Label: label}, nil
}
