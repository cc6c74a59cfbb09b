// Package shim holds process-wide capabilities that other components expect
// to find under well-known names. Installation is explicit and first-wins:
// a name that is already taken is never overwritten.
package shim

import (
	"sync"

	pool "github.com/libp2p/go-buffer-pool"

	"github.com/bnema/chainscript-cli/internal/ports"
)

// BufferName is the well-known name of the byte-buffer capability.
const BufferName = "Buffer"

var (
	mu           sync.RWMutex
	capabilities = map[string]any{}
)

var _ ports.Buffers = (*pool.BufferPool)(nil)

// Install stores value under name unless the name is already taken. It
// reports whether value was installed.
func Install(name string, value any) bool {
	mu.Lock()
	defer mu.Unlock()

	if _, ok := capabilities[name]; ok {
		return false
	}

	capabilities[name] = value
	return true
}

func Lookup(name string) (any, bool) {
	mu.RLock()
	defer mu.RUnlock()

	value, ok := capabilities[name]
	return value, ok
}

// EnsureBuffer installs a pooled buffer capability under BufferName when none
// is present and returns whatever buffer capability is installed there.
//
// When BufferName is taken by a value that cannot hand out buffers, that value
// is left in place and a private pool is returned instead.
func EnsureBuffer() ports.Buffers {
	mu.Lock()
	defer mu.Unlock()

	existing, ok := capabilities[BufferName]
	if !ok {
		installed := new(pool.BufferPool)
		capabilities[BufferName] = installed
		return installed
	}

	if buffers, ok := existing.(ports.Buffers); ok {
		return buffers
	}

	return new(pool.BufferPool)
}
