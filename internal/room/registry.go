// internal/room/registry.go
package room

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound reports a lookup for a room identifier the registry does not
// hold.
var ErrNotFound = errors.New("room not found")

// Registry is the process-wide identifier → Room mapping. Its mutex guards
// only the map itself; individual rooms carry their own exclusive sections,
// so unrelated games never contend. Rooms live for the registry's lifetime
// (no eviction in the baseline design).
type Registry struct {
	mu    sync.Mutex
	rooms map[string]*Room
}

// NewRegistry returns an empty in-memory registry.
func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*Room)}
}

// Create allocates a room with a fresh unique identifier and stores it.
func (s *Registry) Create(build func(id string) *Room) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.newIDLocked()
	r := build(id)
	s.rooms[id] = r
	return r
}

// Get looks up a room by identifier.
func (s *Registry) Get(id string) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

// Len reports the number of live rooms.
func (s *Registry) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rooms)
}

// newIDLocked generates a short identifier unique among live rooms. The
// first UUID segment is plenty of entropy; the collision re-check keeps the
// uniqueness guarantee unconditional. Caller holds s.mu.
func (s *Registry) newIDLocked() string {
	for {
		id := strings.SplitN(uuid.NewString(), "-", 2)[0]
		if _, taken := s.rooms[id]; !taken {
			return id
		}
	}
}
