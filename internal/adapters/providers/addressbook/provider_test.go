package addressbook

import (
	"context"
	"testing"

	"github.com/bnema/chainscript-cli/internal/domain"
	portmocks "github.com/bnema/chainscript-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProviderUsesEntryName(t *testing.T) {
	t.Parallel()

	repo := portmocks.NewMockAddressBookRepository(t)
	repo.EXPECT().GetByID(mock.Anything, domain.AddressID("registry-1")).
		Return(domain.AddressEntry{ID: "registry-1", Name: "Vault", Address: "0x1"}, nil).
		Twice()

	provider := NewProvider("registry-1", repo)
	assert.Equal(t, "registry-1", provider.ID())

	plain, err := provider.Identifiers(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, domain.Identifier{Type: "address", Label: "Vault"}, plain)

	prefixed, err := provider.Identifiers(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, domain.Identifier{Type: "address", Label: "@Vault"}, prefixed)
}

func TestProviderFallsBackToChecksummedAddress(t *testing.T) {
	t.Parallel()

	repo := portmocks.NewMockAddressBookRepository(t)
	repo.EXPECT().GetByID(mock.Anything, domain.AddressID("anon")).
		Return(domain.AddressEntry{ID: "anon", Address: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"}, nil).
		Once()

	got, err := NewProvider("anon", repo).Identifiers(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", got.Label)
}

func TestProviderFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entry   domain.AddressEntry
		repoErr error
		wantErr error
	}{
		{name: "entry removed", repoErr: domain.ErrAddressNotFound, wantErr: domain.ErrAddressNotFound},
		{name: "no name and invalid address", entry: domain.AddressEntry{ID: "x", Address: "vault.eth"}, wantErr: domain.ErrIdentifierNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := portmocks.NewMockAddressBookRepository(t)
			repo.EXPECT().GetByID(mock.Anything, domain.AddressID("x")).Return(tc.entry, tc.repoErr).Once()

			_, err := NewProvider("x", repo).Identifiers(context.Background(), true)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorContains(t, err, `address book entry "x"`)
		})
	}
}
