// Package file reads and writes call scripts as JSON or YAML documents.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/chainscript-cli/internal/domain"
	"github.com/bnema/chainscript-cli/internal/ports"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedScriptFormat = errors.New("unsupported script format")

const (
	scriptFileMode  = 0o644
	scriptDirMode   = 0o755
	tempFilePattern = ".script-*.tmp"
)

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

type format int

const (
	formatJSON format = iota + 1
	formatYAML
)

type Store struct{}

var _ ports.ScriptStore = Store{}

func NewStore() Store {
	return Store{}
}

func (Store) Load(ctx context.Context, path string) (domain.CallScript, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := formatFor(path)
	if err != nil {
		return nil, err
	}

	mu := lockForPath(path)
	mu.RLock()
	defer mu.RUnlock()

	return readScript(f, path)
}

func (Store) Save(ctx context.Context, path string, script domain.CallScript) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := formatFor(path)
	if err != nil {
		return err
	}

	mu := lockForPath(path)
	mu.Lock()
	defer mu.Unlock()

	return writeScript(f, path, script)
}

// Update reads the script at path, passes it to mutate and writes the result
// back while holding the path's write lock. A missing file starts as an empty
// script.
func (Store) Update(ctx context.Context, path string, mutate func(domain.CallScript) (domain.CallScript, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := formatFor(path)
	if err != nil {
		return err
	}

	mu := lockForPath(path)
	mu.Lock()
	defer mu.Unlock()

	script, err := readScript(f, path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		script = domain.CallScript{}
	}

	script, err = mutate(script)
	if err != nil {
		return err
	}

	return writeScript(f, path, script)
}

func readScript(f format, path string) (domain.CallScript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script file: %w", err)
	}

	return decode(f, data)
}

func writeScript(f format, path string, script domain.CallScript) error {
	data, err := encode(f, script)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, scriptDirMode); err != nil {
		return fmt.Errorf("create script directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp script file: %w", err)
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
		return fmt.Errorf("write temp script file: %w", err)
	}

	if err := tempFile.Chmod(scriptFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp script file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp script file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace script file: %w", err)
	}

	cleanup = false

	return nil
}

func lockForPath(path string) *sync.RWMutex {
	key := filepath.Clean(path)
	if abs, err := filepath.Abs(key); err == nil {
		key = abs
	}

	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[key]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[key] = mu
	return mu
}

// encode renders script in the given format.
func encode(f format, script domain.CallScript) ([]byte, error) {
	schema := toSchema(script)

	switch f {
	case formatJSON:
		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json script: %w", err)
		}
		return append(data, '\n'), nil
	case formatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(schema); err != nil {
			return nil, fmt.Errorf("encode yaml script: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml script: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, ErrUnsupportedScriptFormat
	}
}

// decode parses a script document and checks that every action carries both
// a target and a payload.
func decode(f format, data []byte) (domain.CallScript, error) {
	var schema scriptSchema

	switch f {
	case formatJSON:
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("decode json script: %w", err)
		}
	case formatYAML:
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("decode yaml script: %w", err)
		}
	default:
		return nil, ErrUnsupportedScriptFormat
	}

	schema.applyDefaults()
	if err := schema.validate(); err != nil {
		return nil, err
	}

	return fromSchema(schema), nil
}

func formatFor(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedScriptFormat, filepath.Ext(path))
	}
}
