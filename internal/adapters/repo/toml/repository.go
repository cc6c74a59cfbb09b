package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/chainscript-cli/internal/domain"
	"github.com/bnema/chainscript-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	bookFileMode    = 0o600
	bookDirMode     = 0o700
	tempFilePattern = ".addressbook-*.toml.tmp"
)

type Repository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.AddressBookRepository = (*Repository)(nil)

func NewRepository(path string) (*Repository, error) {
	if path == "" {
		return nil, errors.New("address book path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve address book path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &Repository{path: absPath, mu: lockForPath(absPath)}, nil
}

func (r *Repository) Save(ctx context.Context, entry domain.AddressEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(entry)
	updated := false
	for i := range file.Entries {
		if file.Entries[i].ID == encoded.ID {
			file.Entries[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Entries = append(file.Entries, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) Delete(ctx context.Context, id domain.AddressID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := file.Entries[:0]
	found := false
	for _, entry := range file.Entries {
		if entry.ID == string(id) {
			found = true
			continue
		}
		kept = append(kept, entry)
	}

	if !found {
		return domain.ErrAddressNotFound
	}
	file.Entries = kept

	return r.writeSchema(file)
}

func (r *Repository) GetByID(ctx context.Context, id domain.AddressID) (domain.AddressEntry, error) {
	if err := ctx.Err(); err != nil {
		return domain.AddressEntry{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.AddressEntry{}, err
	}

	for _, entry := range file.Entries {
		if entry.ID == string(id) {
			return fromSchema(entry), nil
		}
	}

	return domain.AddressEntry{}, domain.ErrAddressNotFound
}

func (r *Repository) List(ctx context.Context) ([]domain.AddressEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	entries := make([]domain.AddressEntry, 0, len(file.Entries))
	for _, entry := range file.Entries {
		entries = append(entries, fromSchema(entry))
	}

	return entries, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read address book: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode address book: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), bookDirMode); err != nil {
		return fmt.Errorf("create address book directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode address book: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp address book: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp address book: %w", err)
	}

	if err := tempFile.Chmod(bookFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp address book: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp address book: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace address book: %w", err)
	}

	cleanup = false

	return nil
}

func toSchema(entry domain.AddressEntry) entrySchema {
	return entrySchema{
		ID:        string(entry.ID),
		Name:      entry.Name,
		Address:   entry.Address,
		Note:      entry.Note,
		UpdatedAt: formatTime(entry.UpdatedAt),
	}
}

func fromSchema(entry entrySchema) domain.AddressEntry {
	return domain.AddressEntry{
		ID:        domain.AddressID(entry.ID),
		Name:      entry.Name,
		Address:   entry.Address,
		Note:      entry.Note,
		UpdatedAt: parseTime(entry.UpdatedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
