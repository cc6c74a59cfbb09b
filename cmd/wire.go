package cmd

import (
	"fmt"
	"os"

	"github.com/bnema/chainscript-cli/internal/adapters/providers"
	identifiersadapter "github.com/bnema/chainscript-cli/internal/adapters/render/identifiers"
	sqliterepo "github.com/bnema/chainscript-cli/internal/adapters/repo/sqlite"
	tomlrepo "github.com/bnema/chainscript-cli/internal/adapters/repo/toml"
	scriptfile "github.com/bnema/chainscript-cli/internal/adapters/script/file"
	"github.com/bnema/chainscript-cli/internal/application"
	"github.com/bnema/chainscript-cli/internal/config"
	"github.com/bnema/chainscript-cli/internal/logging"
	"github.com/bnema/chainscript-cli/internal/platform/shim"
	"github.com/bnema/chainscript-cli/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	service            *application.Service
	scripts            *application.ScriptService
	registry           *sqliterepo.Registry
	log                *logging.Logger
	identifierRenderer func([]application.IdentifierView, identifiersadapter.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg, err := config.Load(viper.New(), homeDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	addresses, err := tomlrepo.NewRepository(cfg.AddressBookPath)
	if err != nil {
		return nil, fmt.Errorf("wire address book: %w", err)
	}

	registry, err := sqliterepo.Open(cfg.RegistryPath)
	if err != nil {
		return nil, fmt.Errorf("wire contract registry: %w", err)
	}

	buffers := shim.EnsureBuffer()

	return &app{
		service: application.NewService(application.ServiceDeps{
			Addresses: addresses,
			Contracts: registry,
			Factory:   providers.NewFactory(addresses, registry),
			Providers: application.NewProviderRegistry(),
			Aliases:   cfg.Aliases,
			Clock:     ports.SystemClock{},
			Log:       log,
		}),
		scripts:            application.NewScriptService(scriptfile.NewStore(), buffers),
		registry:           registry,
		log:                log,
		identifierRenderer: identifiersadapter.Render,
	}, nil
}

func (a *app) close() error {
	_ = a.log.Sync()

	if err := a.registry.Close(); err != nil {
		return fmt.Errorf("close contract registry: %w", err)
	}

	return nil
}
