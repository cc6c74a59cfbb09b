package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bnema/chainscript-cli/internal/domain"
	"github.com/bnema/chainscript-cli/internal/logging"
	"github.com/bnema/chainscript-cli/internal/ports"
)

type Service struct {
	addresses ports.AddressBookRepository
	contracts ports.ContractRegistry
	factory   ports.ProviderFactory
	providers *ProviderRegistry
	aliases   []domain.Alias
	clock     ports.Clock
	log       *logging.Logger
	newID     func() string
}

type ServiceDeps struct {
	Addresses ports.AddressBookRepository
	Contracts ports.ContractRegistry
	Factory   ports.ProviderFactory
	Providers *ProviderRegistry
	Aliases   []domain.Alias
	Clock     ports.Clock
	Log       *logging.Logger
}

func NewService(deps ServiceDeps) *Service {
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Log == nil {
		deps.Log = logging.Nop()
	}
	if deps.Providers == nil {
		deps.Providers = NewProviderRegistry()
	}

	return &Service{
		addresses: deps.Addresses,
		contracts: deps.Contracts,
		factory:   deps.Factory,
		providers: deps.Providers,
		aliases:   deps.Aliases,
		clock:     deps.Clock,
		log:       deps.Log,
		newID:     uuid.NewString,
	}
}

func (s *Service) AddAddress(ctx context.Context, cmd AddAddressCommand) (domain.AddressEntry, error) {
	if strings.TrimSpace(cmd.Address) == "" {
		return domain.AddressEntry{}, fmt.Errorf("address is required")
	}

	id := domain.AddressID(strings.TrimSpace(string(cmd.ID)))
	if id == "" {
		id = domain.AddressID(s.newID())
	}

	entry := domain.AddressEntry{
		ID:        id,
		Name:      domain.NormalizeLabel(cmd.Name),
		Address:   strings.TrimSpace(cmd.Address),
		Note:      cmd.Note,
		UpdatedAt: s.clock.Now().UTC().Truncate(time.Second),
	}

	if err := s.addresses.Save(ctx, entry); err != nil {
		return domain.AddressEntry{}, fmt.Errorf("save address book entry: %w", err)
	}

	s.log.Debug(ctx, "address book entry saved", zap.String("id", string(entry.ID)))

	return entry, nil
}

func (s *Service) RemoveAddress(ctx context.Context, id domain.AddressID) error {
	if err := s.addresses.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete address book entry: %w", err)
	}

	return nil
}

func (s *Service) ListAddresses(ctx context.Context) ([]domain.AddressEntry, error) {
	entries, err := s.addresses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list address book: %w", err)
	}

	return entries, nil
}

func (s *Service) RegisterContract(ctx context.Context, cmd RegisterContractCommand) (domain.Contract, error) {
	contract := domain.Contract{
		ID:           domain.ContractID(strings.TrimSpace(string(cmd.ID))),
		Namespace:    domain.NormalizeLabel(cmd.Namespace),
		Name:         domain.NormalizeLabel(cmd.Name),
		Kind:         strings.TrimSpace(cmd.Kind),
		Address:      strings.TrimSpace(cmd.Address),
		RegisteredAt: s.clock.Now().UTC().Truncate(time.Second),
	}
	contract.ApplyDefaults()

	if err := contract.Validate(); err != nil {
		return domain.Contract{}, fmt.Errorf("validate contract: %w", err)
	}

	if err := s.contracts.Save(ctx, contract); err != nil {
		return domain.Contract{}, fmt.Errorf("save contract: %w", err)
	}

	s.log.Debug(ctx, "contract registered",
		zap.String("id", string(contract.ID)),
		zap.String("namespace", contract.Namespace),
	)

	return contract, nil
}

func (s *Service) ListContracts(ctx context.Context) ([]domain.Contract, error) {
	contracts, err := s.contracts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}

	return contracts, nil
}

// LoadProviders registers one data provider per contract, address book entry
// and alias. A contract and an address book entry sharing an ID become one
// chained provider that asks the registry first. Alias providers live under
// "$"-prefixed IDs; any other clash between sources is logged at warn level and
// the earlier source wins. IDs that are already registered are left alone. It
// returns how many providers were added.
func (s *Service) LoadProviders(ctx context.Context) (int, error) {
	entries, err := s.addresses.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list address book: %w", err)
	}

	contracts, err := s.contracts.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list contracts: %w", err)
	}

	entryIDs := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		entryIDs[string(entry.ID)] = struct{}{}
	}

	candidates := make([]ports.DataProvider, 0, len(entries)+len(contracts)+len(s.aliases))
	chained := make(map[string]struct{})
	for _, contract := range contracts {
		provider := s.factory.ForContract(contract.ID)
		if _, ok := entryIDs[string(contract.ID)]; ok {
			provider, err = s.factory.Chain(provider, s.factory.ForAddress(domain.AddressID(contract.ID)))
			if err != nil {
				return 0, fmt.Errorf("chain providers for %q: %w", contract.ID, err)
			}
			chained[string(contract.ID)] = struct{}{}
		}
		candidates = append(candidates, provider)
	}

	for _, entry := range entries {
		if _, ok := chained[string(entry.ID)]; ok {
			continue
		}
		candidates = append(candidates, s.factory.ForAddress(entry.ID))
	}

	for _, alias := range s.aliases {
		candidates = append(candidates, s.factory.ForAlias(alias))
	}

	added := 0
	seen := make(map[string]struct{}, len(candidates))
	for _, provider := range candidates {
		if _, ok := seen[provider.ID()]; ok {
			s.log.Warn(ctx, "data provider id collides with another source, keeping the first",
				zap.String("provider", provider.ID()),
			)
			continue
		}
		seen[provider.ID()] = struct{}{}

		if s.providers.Has(provider.ID()) {
			s.log.Debug(ctx, "data provider already registered", zap.String("provider", provider.ID()))
			continue
		}
		if err := s.providers.Register(provider); err != nil {
			return added, fmt.Errorf("register data provider: %w", err)
		}
		added++
	}

	s.log.Info(ctx, "data providers loaded", zap.Int("added", added), zap.Int("total", len(s.providers.List())))

	return added, nil
}

// ListIdentifiers asks every registered provider for its identifier. Providers
// that fail are logged and left out of the result.
func (s *Service) ListIdentifiers(ctx context.Context, addPrefix bool) ([]IdentifierView, error) {
	providers := s.providers.List()
	views := make([]IdentifierView, 0, len(providers))

	for _, provider := range providers {
		identifier, err := provider.Identifiers(ctx, addPrefix)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			s.log.Warn(ctx, "data provider has no identifier",
				zap.String("provider", provider.ID()),
				zap.Error(err),
			)
			continue
		}

		views = append(views, IdentifierView{ProviderID: provider.ID(), Identifier: identifier})
	}

	return views, nil
}

func (s *Service) ResolveIdentifier(ctx context.Context, providerID string, addPrefix bool) (IdentifierView, error) {
	provider, err := s.providers.Get(providerID)
	if err != nil {
		return IdentifierView{}, err
	}

	identifier, err := provider.Identifiers(ctx, addPrefix)
	if err != nil {
		return IdentifierView{}, fmt.Errorf("resolve identifier: %w", err)
	}

	return IdentifierView{ProviderID: provider.ID(), Identifier: identifier}, nil
}
