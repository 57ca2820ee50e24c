// Package registry provides a global registry of word packs.
// Packs register themselves in init() functions, allowing the CLI and the
// game to discover vocabularies without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Pack is a vocabulary of lowercase words the game can drop onto the board.
type Pack struct {
	ID    string
	Title string
	Words []string
}

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID    string
	Title string
	Size  int
}

// Factory builds a pack. It is called on every Create so packs stay immutable
// from the caller's point of view.
type Factory func() Pack

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]PackInfo)
	mu        sync.RWMutex
)

// Register adds a pack factory to the registry.
// Typically called from an init() function.
// Panics if a pack with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", id))
	}

	factories[id] = f

	// Build once to capture metadata
	p := f()
	infos[id] = PackInfo{ID: id, Title: p.Title, Size: len(p.Words)}
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a pack by its ID.
// Returns an error if the pack ID is not registered.
func Create(id string) (Pack, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return Pack{}, fmt.Errorf("registry: unknown pack %q", id)
	}

	return f(), nil
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
