// Package sqlite keeps the contract registry in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/bnema/chainscript-cli/internal/domain"
	"github.com/bnema/chainscript-cli/internal/ports"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - contracts table with namespace/name index
const currentSchemaVersion = 1

const registryDirMode = 0o700

type Registry struct {
	db *sql.DB
}

var _ ports.ContractRegistry = (*Registry)(nil)

// Open creates or opens the registry database at path and applies pragmas and
// the schema. Safe to call on an existing database.
func Open(path string) (*Registry, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), registryDirMode); err != nil {
			return nil, fmt.Errorf("create registry directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open registry database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect registry database: %w", err)
	}

	// SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Registry{db: db}, nil
}

func (r *Registry) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Registry) Save(ctx context.Context, contract domain.Contract) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO contracts (id, namespace, name, kind, address, registered_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			namespace = excluded.namespace,
			name = excluded.name,
			kind = excluded.kind,
			address = excluded.address,
			registered_at = excluded.registered_at
	`,
		string(contract.ID),
		contract.Namespace,
		contract.Name,
		contract.Kind,
		contract.Address,
		formatTime(contract.RegisteredAt),
	)
	if err != nil {
		return fmt.Errorf("save contract %q: %w", contract.ID, err)
	}

	return nil
}

func (r *Registry) GetByID(ctx context.Context, id domain.ContractID) (domain.Contract, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, namespace, name, kind, address, registered_at
		FROM contracts
		WHERE id = ?
	`, string(id))

	contract, err := scanContract(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Contract{}, domain.ErrContractNotFound
		}
		return domain.Contract{}, fmt.Errorf("get contract %q: %w", id, err)
	}

	return contract, nil
}

func (r *Registry) List(ctx context.Context) ([]domain.Contract, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, namespace, name, kind, address, registered_at
		FROM contracts
		ORDER BY namespace ASC, name ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query contracts: %w", err)
	}
	defer rows.Close()

	contracts := []domain.Contract{}
	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		contracts = append(contracts, contract)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contracts: %w", err)
	}

	return contracts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContract(row rowScanner) (domain.Contract, error) {
	var (
		id           string
		contract     domain.Contract
		registeredAt string
	)

	if err := row.Scan(&id, &contract.Namespace, &contract.Name, &contract.Kind, &contract.Address, &registeredAt); err != nil {
		return domain.Contract{}, err
	}

	contract.ID = domain.ContractID(id)
	contract.RegisteredAt = parseTime(registeredAt)

	return contract, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}

	return nil
}

func applySchema(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}

	if version > currentSchemaVersion {
		return fmt.Errorf("unsupported registry schema version %d (current %d)", version, currentSchemaVersion)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("apply registry schema: %w", err)
	}

	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}

	return nil
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
