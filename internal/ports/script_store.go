package ports

import (
	"context"

	"github.com/bnema/chainscript-cli/internal/domain"
)

type ScriptStore interface {
	Load(ctx context.Context, path string) (domain.CallScript, error)
	Save(ctx context.Context, path string, script domain.CallScript) error
	Update(ctx context.Context, path string, mutate func(domain.CallScript) (domain.CallScript, error)) error
}
