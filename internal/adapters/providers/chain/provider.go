// Package chain combines two data providers: the primary answers first and
// the fallback is asked only when the primary fails. The chain reports the
// primary's ID. Context cancellation from the primary is returned as is.
package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/chainscript-cli/internal/domain"
	"github.com/bnema/chainscript-cli/internal/ports"
)

type Provider struct {
	primary  ports.DataProvider
	fallback ports.DataProvider
}

var _ ports.DataProvider = (*Provider)(nil)

var (
	errNilPrimaryProvider  = errors.New("primary data provider is nil")
	errNilFallbackProvider = errors.New("fallback data provider is nil")
)

func NewProvider(primary ports.DataProvider, fallback ports.DataProvider) (*Provider, error) {
	if primary == nil {
		return nil, errNilPrimaryProvider
	}
	if fallback == nil {
		return nil, errNilFallbackProvider
	}

	return &Provider{primary: primary, fallback: fallback}, nil
}

func (p *Provider) ID() string {
	return p.primary.ID()
}

func (p *Provider) Identifiers(ctx context.Context, addPrefix bool) (domain.Identifier, error) {
	identifier, err := p.primary.Identifiers(ctx, addPrefix)
	if err == nil {
		return identifier, nil
	}
	if shouldSkipFallback(err) {
		return domain.Identifier{}, err
	}

	fallbackIdentifier, fallbackErr := p.fallback.Identifiers(ctx, addPrefix)
	if fallbackErr == nil {
		return fallbackIdentifier, nil
	}

	return domain.Identifier{}, fmt.Errorf("primary provider failed: %w; fallback provider failed: %w", err, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
