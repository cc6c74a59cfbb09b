package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bnema/chainscript-cli/internal/domain"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".chainscript"
	envPrefix  = "CHAINSCRIPT"

	addressBookPathKey = "addressbook.path"
	registryPathKey    = "registry.path"
	logLevelKey        = "log.level"
	aliasesKey         = "aliases"

	addressBookFile = "addressbook.toml"
	registryFile    = "registry.db"
	defaultLogLevel = "warn"
)

type Config struct {
	AddressBookPath string
	RegistryPath    string
	LogLevel        string
	Aliases         []domain.Alias
}

// Load reads config.toml from <homeDir>/.chainscript when present, applies
// CHAINSCRIPT_* environment overrides and fills in defaults.
func Load(cfg *viper.Viper, homeDir string) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	baseDir := filepath.Join(homeDir, configDir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(baseDir)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	cfg.SetDefault(addressBookPathKey, filepath.Join(baseDir, addressBookFile))
	cfg.SetDefault(registryPathKey, filepath.Join(baseDir, registryFile))
	cfg.SetDefault(logLevelKey, defaultLogLevel)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	addressBookPath, err := normalizePath(addressBookPathKey, cfg.GetString(addressBookPathKey))
	if err != nil {
		return Config{}, err
	}

	registryPath, err := normalizePath(registryPathKey, cfg.GetString(registryPathKey))
	if err != nil {
		return Config{}, err
	}

	return Config{
		AddressBookPath: addressBookPath,
		RegistryPath:    registryPath,
		LogLevel:        cfg.GetString(logLevelKey),
		Aliases:         aliasesFrom(cfg.GetStringMapString(aliasesKey)),
	}, nil
}

func normalizePath(key, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("%s is empty", key)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", key, err)
	}

	return filepath.Clean(absPath), nil
}

func aliasesFrom(raw map[string]string) []domain.Alias {
	aliases := make([]domain.Alias, 0, len(raw))
	for id, name := range raw {
		aliases = append(aliases, domain.Alias{ID: id, Name: name})
	}

	sort.Slice(aliases, func(i, j int) bool {
		return aliases[i].ID < aliases[j].ID
	})

	return aliases
}
