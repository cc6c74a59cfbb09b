package ports

import (
	"context"

	"github.com/bnema/chainscript-cli/internal/domain"
)

type ContractRegistry interface {
	GetByID(ctx context.Context, id domain.ContractID) (domain.Contract, error)
	List(ctx context.Context) ([]domain.Contract, error)
	Save(ctx context.Context, contract domain.Contract) error
}
