// Package providers wires the concrete data provider variants to their
// backing stores.
package providers

import (
	"github.com/bnema/chainscript-cli/internal/adapters/providers/addressbook"
	"github.com/bnema/chainscript-cli/internal/adapters/providers/alias"
	"github.com/bnema/chainscript-cli/internal/adapters/providers/chain"
	"github.com/bnema/chainscript-cli/internal/adapters/providers/registry"
	"github.com/bnema/chainscript-cli/internal/domain"
	"github.com/bnema/chainscript-cli/internal/ports"
)

type Factory struct {
	addresses ports.AddressBookRepository
	contracts ports.ContractRegistry
}

var _ ports.ProviderFactory = (*Factory)(nil)

func NewFactory(addresses ports.AddressBookRepository, contracts ports.ContractRegistry) *Factory {
	return &Factory{addresses: addresses, contracts: contracts}
}

func (f *Factory) ForAddress(id domain.AddressID) ports.DataProvider {
	return addressbook.NewProvider(id, f.addresses)
}

func (f *Factory) ForContract(id domain.ContractID) ports.DataProvider {
	return registry.NewProvider(id, f.contracts)
}

func (f *Factory) ForAlias(a domain.Alias) ports.DataProvider {
	return alias.NewProvider(a)
}

func (f *Factory) Chain(primary ports.DataProvider, fallback ports.DataProvider) (ports.DataProvider, error) {
	provider, err := chain.NewProvider(primary, fallback)
	if err != nil {
		return nil, err
	}

	return provider, nil
}
