package ports

import (
	"context"

	"github.com/bnema/chainscript-cli/internal/domain"
)

type AddressBookRepository interface {
	GetByID(ctx context.Context, id domain.AddressID) (domain.AddressEntry, error)
	List(ctx context.Context) ([]domain.AddressEntry, error)
	Save(ctx context.Context, entry domain.AddressEntry) error
	Delete(ctx context.Context, id domain.AddressID) error
}
