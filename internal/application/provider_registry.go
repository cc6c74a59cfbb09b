package application

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/chainscript-cli/internal/domain"
	"github.com/bnema/chainscript-cli/internal/ports"
)

var errNilProvider = errors.New("data provider is nil")

// ProviderRegistry owns the data providers known to the process, keyed by
// provider ID.
type ProviderRegistry struct {
	mu        sync.RWMutex
	providers map[string]ports.DataProvider
}

func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{providers: map[string]ports.DataProvider{}}
}

func (r *ProviderRegistry) Register(provider ports.DataProvider) error {
	if provider == nil {
		return errNilProvider
	}

	id := provider.ID()
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("register data provider: id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[id]; ok {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateProvider, id)
	}

	r.providers[id] = provider
	return nil
}

func (r *ProviderRegistry) Get(id string) (ports.DataProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, ok := r.providers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrProviderNotFound, id)
	}

	return provider, nil
}

func (r *ProviderRegistry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[id]
	return ok
}

// List returns the registered providers sorted by ID.
func (r *ProviderRegistry) List() []ports.DataProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.providers))
	for id := range r.providers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	providers := make([]ports.DataProvider, 0, len(ids))
	for _, id := range ids {
		providers = append(providers, r.providers[id])
	}

	return providers
}
