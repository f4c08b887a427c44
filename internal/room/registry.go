package room

import (
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/mwhitt/launchroom/internal/catalog"
)

// Registry creates, looks up, enumerates and destroys Room instances. It is
// the single source of truth for which rooms exist. The registry map is
// guarded by its own lock; room state is guarded per room.
type Registry struct {
	catalog  *catalog.Catalog
	clock    Clock
	notifier Notifier

	mu    sync.RWMutex
	rooms map[string]*Room
}

// NewRegistry creates an empty registry. The catalog, clock and notifier are
// handed to every room it creates.
func NewRegistry(cat *catalog.Catalog, clock Clock, notifier Notifier) *Registry {
	return &Registry{
		catalog:  cat,
		clock:    clock,
		notifier: notifier,
		rooms:    make(map[string]*Room),
	}
}

// CreateOrGet returns the room with the given name, creating it in the lobby
// phase with no host when it does not exist. Idempotent: an existing room is
// returned unchanged. The returned flag reports whether a room was created.
func (g *Registry) CreateOrGet(name string) (*Room, bool, error) {
	if strings.TrimSpace(name) == "" {
		return nil, false, ErrInvalidName
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if room, ok := g.rooms[name]; ok {
		return room, false, nil
	}
	room := NewRoom(name, g.catalog, g.clock, g.notifier)
	g.rooms[name] = room
	log.Info().Str("room", name).Msg("room created")
	return room, true, nil
}

// Get returns an existing room.
func (g *Registry) Get(name string) (*Room, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	room, ok := g.rooms[name]
	if !ok {
		return nil, ErrUnknownRoom
	}
	return room, nil
}

// ListNames returns a consistent point-in-time snapshot of the existing room
// names, sorted for stable output.
func (g *Registry) ListNames() []string {
	g.mu.RLock()
	names := make([]string, 0, len(g.rooms))
	for name := range g.rooms {
		names = append(names, name)
	}
	g.mu.RUnlock()

	sort.Strings(names)
	return names
}

// RemoveIfEmpty destroys the named room if it exists and has no players.
// A no-op otherwise. Returns true when the room was removed.
func (g *Registry) RemoveIfEmpty(name string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.rooms[name]
	if !ok || !room.Empty() {
		return false
	}
	delete(g.rooms, name)
	log.Info().Str("room", name).Msg("empty room removed")
	return true
}
