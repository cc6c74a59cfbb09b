package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bnema/chainscript-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleScript() domain.CallScript {
	return domain.CallScript{
		domain.NewCallAction("0xABC", "0x1234"),
		domain.NewCallAction("0x5a0b54d5dc17e0aadc383d2db43b0a0d3e029c4c", "0xa9059cbb"),
	}
}

func TestStoreRoundTripPreservesFields(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"script.json", "script.yaml", "script.yml"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), name)
			store := NewStore()

			require.NoError(t, store.Save(context.Background(), path, sampleScript()))

			got, err := store.Load(context.Background(), path)
			require.NoError(t, err)
			require.Len(t, got, 2)
			for i, action := range sampleScript() {
				assert.Equal(t, action.Target(), got[i].Target())
				assert.Equal(t, action.Payload(), got[i].Payload())
			}
		})
	}
}

func TestEncodeUsesToAndDataKeys(t *testing.T) {
	t.Parallel()

	data, err := encode(formatJSON, domain.CallScript{domain.NewCallAction("0xABC", "0x1234")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"actions":[{"to":"0xABC","data":"0x1234"}]}`, string(data))

	data, err = encode(formatYAML, domain.CallScript{domain.NewCallAction("0xABC", "0x1234")})
	require.NoError(t, err)
	assert.Contains(t, string(data), "to:")
	assert.Contains(t, string(data), "0xABC")
	assert.Contains(t, string(data), "data:")
	assert.Contains(t, string(data), "0x1234")
}

func TestDecodeRequiresBothFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  format
		doc     string
		wantErr string
	}{
		{name: "json missing data", format: formatJSON, doc: `{"actions":[{"to":"0x1"}]}`, wantErr: `action 0: "data" is required`},
		{name: "json missing to", format: formatJSON, doc: `{"actions":[{"to":"0x1","data":"0x"},{"data":"0x"}]}`, wantErr: `action 1: "to" is required`},
		{name: "yaml blank to", format: formatYAML, doc: "actions:\n  - to: \" \"\n    data: \"0x\"\n", wantErr: `action 0: "to" is required`},
		{name: "newer version", format: formatJSON, doc: `{"version":2,"actions":[]}`, wantErr: "unsupported script schema version 2"},
		{name: "malformed json", format: formatJSON, doc: `{"actions":`, wantErr: "decode json script"},
		{name: "malformed yaml", format: formatYAML, doc: "actions: [", wantErr: "decode yaml script"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := decode(tc.format, []byte(tc.doc))
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestDecodeEmptyDocumentIsEmptyScript(t *testing.T) {
	t.Parallel()

	script, err := decode(formatYAML, []byte("version: 1\n"))
	require.NoError(t, err)
	assert.Empty(t, script)
}

func TestStoreRejectsUnknownExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	_, err := NewStore().Load(context.Background(), path)
	assert.ErrorIs(t, err, ErrUnsupportedScriptFormat)

	err = NewStore().Save(context.Background(), path, sampleScript())
	assert.ErrorIs(t, err, ErrUnsupportedScriptFormat)
}

func TestStoreLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewStore().Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStoreSaveReplacesExistingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "script.json")
	store := NewStore()

	require.NoError(t, store.Save(context.Background(), path, sampleScript()))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	original, err := os.Open(path)
	require.NoError(t, err)
	defer original.Close()
	originalInfo, err := original.Stat()
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), path, domain.CallScript{domain.NewCallAction("0x1", "0x")}))

	replacedInfo, err := os.Stat(path)
	require.NoError(t, err)
	assert.False(t, os.SameFile(originalInfo, replacedInfo))
	assert.Equal(t, os.FileMode(scriptFileMode), replacedInfo.Mode().Perm())

	kept, err := io.ReadAll(original)
	require.NoError(t, err)
	assert.Equal(t, before, kept)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "script.json", entries[0].Name())
}

func TestStoreUpdateCreatesMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "script.yaml")
	store := NewStore()

	err := store.Update(context.Background(), path, func(script domain.CallScript) (domain.CallScript, error) {
		assert.Empty(t, script)
		return append(script, domain.NewCallAction("0xABC", "0x1234")), nil
	})
	require.NoError(t, err)

	got, err := store.Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "0xABC", got[0].Target())
}

func TestStoreUpdateLeavesFileOnMutateError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "script.json")
	store := NewStore()
	require.NoError(t, store.Save(context.Background(), path, sampleScript()))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	mutateErr := errors.New("rejected")
	err = store.Update(context.Background(), path, func(domain.CallScript) (domain.CallScript, error) {
		return nil, mutateErr
	})
	assert.ErrorIs(t, err, mutateErr)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStoreUpdateSerializesWriters(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "script.json")
	store := NewStore()

	const writers = 16
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := store.Update(context.Background(), path, func(script domain.CallScript) (domain.CallScript, error) {
				return append(script, domain.NewCallAction(fmt.Sprintf("0x%02x", i), "0x")), nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := store.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, got, writers)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
