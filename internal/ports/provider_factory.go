package ports

import "github.com/bnema/chainscript-cli/internal/domain"

// ProviderFactory builds the concrete data providers for stored entities.
type ProviderFactory interface {
	ForAddress(id domain.AddressID) DataProvider
	ForContract(id domain.ContractID) DataProvider
	ForAlias(alias domain.Alias) DataProvider
	Chain(primary DataProvider, fallback DataProvider) (DataProvider, error)
}
