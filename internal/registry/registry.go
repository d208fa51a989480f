// Package registry provides a global registry for scene factories.
// Scene presets register themselves in init() functions, allowing the
// platform to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/tui-ambient/internal/config"
	"github.com/vovakirdan/tui-ambient/internal/core"
)

// Scene is the interface every ambient scene implements.
// Scenes contain pure logic with no Bubble Tea dependency; the platform
// handles timing, input and terminal output.
type Scene interface {
	// ID returns the preset identifier (e.g., "rain", "meteor").
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset rebuilds all state for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts to a new screen size. Weather state is discarded.
	Resize(w, h int)

	// Step advances one render frame. Returns true when the picture changed.
	Step() bool

	// TickClock refreshes the clock digits; called once per second.
	TickClock(now time.Time)

	// Render draws the scene into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// Stats returns a snapshot for the footer and session history.
	Stats() core.SceneStats
}

// SceneInfo contains metadata about a registered scene.
type SceneInfo struct {
	ID    string
	Title string
}

// Factory creates a scene from the loaded configuration.
type Factory func(cfg config.Config) (Scene, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Panics if a scene with the same ID is already registered or the
// factory rejects the default configuration.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}

	// Get title by creating a temporary instance
	s, err := f(config.DefaultConfig())
	if err != nil {
		panic(fmt.Sprintf("registry: scene %q: %v", id, err))
	}

	factories[id] = f
	titles[id] = s.Title()
}

// List returns information about all registered scenes, sorted by ID.
func List() []SceneInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SceneInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SceneInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a scene by its ID.
// Returns an error if the ID is not registered or the config is rejected.
func Create(id string, cfg config.Config) (Scene, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown scene %q", id)
	}

	s, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return s, nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
