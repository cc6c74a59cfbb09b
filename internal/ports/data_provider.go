package ports

import (
	"context"

	"github.com/bnema/chainscript-cli/internal/domain"
)

// DataProvider is a named source of identifiable entities. Implementations
// document their own prefix rule and failure modes; the interface only
// guarantees the shape of a successful result.
type DataProvider interface {
	ID() string
	Identifiers(ctx context.Context, addPrefix bool) (domain.Identifier, error)
}
