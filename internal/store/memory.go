package store

import (
	"sync"

	"github.com/werewolves-night/onenight/internal/game"
)

// CodeGenerator produces candidate room codes. Injected so tests can
// force collisions.
type CodeGenerator func() string

// RoomStore manages the code→room registry. Rooms are independent; the
// store lock only guards the map itself.
type RoomStore struct {
	rooms    map[string]*game.Room
	generate CodeGenerator
	mu       sync.RWMutex
}

// NewRoomStore creates a room store. A nil generator uses GenerateCode.
func NewRoomStore(generate CodeGenerator) *RoomStore {
	if generate == nil {
		generate = GenerateCode
	}
	return &RoomStore{
		rooms:    make(map[string]*game.Room),
		generate: generate,
	}
}

// Create registers a new empty room under a fresh unique code.
func (s *RoomStore) Create() *game.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		code := s.generate()
		if _, exists := s.rooms[code]; exists {
			continue
		}
		room := game.NewRoom(code)
		s.rooms[code] = room
		return room
	}
}

// Get retrieves a room by code.
func (s *RoomStore) Get(code string) (*game.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, exists := s.rooms[code]
	return room, exists
}

// Delete removes a room.
func (s *RoomStore) Delete(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
}

// Count returns the number of live rooms.
func (s *RoomStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}
