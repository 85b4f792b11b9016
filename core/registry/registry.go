package registry

import (
	"sync"

	"github.com/labstack/echo/v4"
)

// Registry is a lockable key-value store backing the extension registries
// (cmd, cron, api). A key can be locked after the init phase, after which
// writes to it panic.
type Registry struct {
	mu     sync.RWMutex
	values map[string]interface{}
	locked map[string]bool
}

// GlobalRegistry is the process-wide registry. Extension packages write to it
// from init(); Apply/Start functions lock the relevant keys.
var GlobalRegistry = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{
		values: make(map[string]interface{}),
		locked: make(map[string]bool),
	}
}

func (r *Registry) GetGlobal(key string) (interface{}, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok
}

// SetGlobal stores a value. Panics if the key has been locked.
func (r *Registry) SetGlobal(key string, value interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.locked[key] {
		panic("registry: write to locked key " + key)
	}
	r.values[key] = value
}

// Lock makes a key immutable. Used by Apply functions once init-time
// registration is over.
func (r *Registry) Lock(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locked[key] = true
}

func (r *Registry) IsLocked(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locked[key]
}

// UnlockForTesting re-opens a locked key so tests can register and clean up.
func (r *Registry) UnlockForTesting(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.locked, key)
}

// --- Per-request values ---

// SetRequest stores a per-request value on the echo context.
func SetRequest(c echo.Context, key string, value interface{}) {
	c.Set(key, value)
}

// GetRequest reads a per-request value from the echo context.
func GetRequest(c echo.Context, key string) (interface{}, bool) {
	v := c.Get(key)
	return v, v != nil
}
