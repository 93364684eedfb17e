package storage

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Factory opens a store rooted at dir.
type Factory func(dir string) (Store, error)

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a backend under kind. It is called from init functions and
// panics if kind is already taken.
func Register(kind string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[kind]; exists {
		panic(fmt.Sprintf("storage: backend %q already registered", kind))
	}
	factories[kind] = f
}

// Kinds returns the registered backend names, sorted.
func Kinds() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(factories))
}

// Open creates a store of the given kind rooted at dir. A leading ~ in dir is
// expanded.
func Open(kind, dir string) (Store, error) {
	mu.RLock()
	f, ok := factories[kind]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("storage: unknown backend %q (have %v)", kind, Kinds())
	}

	dir, err := ExpandHome(dir)
	if err != nil {
		return nil, err
	}
	return f(dir)
}
