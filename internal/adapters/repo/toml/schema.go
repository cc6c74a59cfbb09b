package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	Entries []entrySchema `toml:"entries"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported address book schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type entrySchema struct {
	ID        string `toml:"id"`
	Name      string `toml:"name"`
	Address   string `toml:"address"`
	Note      string `toml:"note,omitempty"`
	UpdatedAt string `toml:"updated_at,omitempty"`
}
