package providers

import (
	"context"
	"testing"

	"github.com/bnema/chainscript-cli/internal/domain"
	portmocks "github.com/bnema/chainscript-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFactoryChainPrefersContract(t *testing.T) {
	t.Parallel()

	addresses := portmocks.NewMockAddressBookRepository(t)
	contracts := portmocks.NewMockContractRegistry(t)
	factory := NewFactory(addresses, contracts)

	contracts.EXPECT().GetByID(mock.Anything, domain.ContractID("voting")).
		Return(domain.Contract{ID: "voting", Namespace: "aragonpm", Name: "voting", Kind: "app"}, nil).
		Once()

	provider, err := factory.Chain(factory.ForContract("voting"), factory.ForAddress("voting"))
	require.NoError(t, err)
	assert.Equal(t, "voting", provider.ID())

	got, err := provider.Identifiers(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, domain.Identifier{Type: "app", Label: "aragonpm:voting"}, got)
}

func TestFactoryChainFallsBackToAddressBook(t *testing.T) {
	t.Parallel()

	addresses := portmocks.NewMockAddressBookRepository(t)
	contracts := portmocks.NewMockContractRegistry(t)
	factory := NewFactory(addresses, contracts)

	contracts.EXPECT().GetByID(mock.Anything, domain.ContractID("vault")).
		Return(domain.Contract{}, domain.ErrContractNotFound).
		Once()
	addresses.EXPECT().GetByID(mock.Anything, domain.AddressID("vault")).
		Return(domain.AddressEntry{ID: "vault", Name: "Vault", Address: "0x1"}, nil).
		Once()

	provider, err := factory.Chain(factory.ForContract("vault"), factory.ForAddress("vault"))
	require.NoError(t, err)

	got, err := provider.Identifiers(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, domain.Identifier{Type: "address", Label: "Vault"}, got)
}

func TestFactoryChainRejectsNil(t *testing.T) {
	t.Parallel()

	factory := NewFactory(portmocks.NewMockAddressBookRepository(t), portmocks.NewMockContractRegistry(t))

	provider, err := factory.Chain(nil, factory.ForAlias(domain.Alias{ID: "a", Name: "A"}))
	require.Error(t, err)
	assert.Nil(t, provider)
}
