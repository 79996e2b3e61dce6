package storage_room

import (
	"math/rand"
	"slices"
	"strings"
	"sync"

	"github.com/Jaymin100/BooHoo/internal/model"
)

// Storage is the in-process registry of live rooms, keyed by 6-digit code.
type Storage struct {
	mu    sync.RWMutex
	rooms map[model.RoomCode]*model.Room

	buildCode func() model.RoomCode
}

type Option func(*Storage)

// WithCodeSource overrides the code generator.
func WithCodeSource(f func() model.RoomCode) Option {
	return func(s *Storage) {
		s.buildCode = f
	}
}

func New(opts ...Option) *Storage {
	s := &Storage{
		rooms:     make(map[model.RoomCode]*model.Room),
		buildCode: buildRoomCode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateRoom draws codes until one is free. The draw and the insert happen
// under the registry lock, so two concurrent calls never get the same code.
func (s *Storage) CreateRoom() model.RoomCode {
	s.mu.Lock()
	defer s.mu.Unlock()

	var code model.RoomCode
	for {
		code = s.buildCode()
		if _, exists := s.rooms[code]; !exists {
			break
		}
	}
	s.rooms[code] = model.NewRoom(code)
	return code
}

func (s *Storage) GetRoom(code model.RoomCode) (*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[code]
	if !ok {
		return nil, model.ErrRoomNotFound
	}
	return room, nil
}

func (s *Storage) DeleteRoom(code model.RoomCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[code]; !ok {
		return model.ErrRoomNotFound
	}
	delete(s.rooms, code)
	return nil
}

func (s *Storage) Exists(code model.RoomCode) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rooms[code]
	return ok
}

// Rooms returns every live room ordered by code.
func (s *Storage) Rooms() []*model.Room {
	s.mu.RLock()
	rooms := make([]*model.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		rooms = append(rooms, room)
	}
	s.mu.RUnlock()

	slices.SortFunc(rooms, func(a, b *model.Room) int {
		return strings.Compare(a.Code(), b.Code())
	})
	return rooms
}

func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

func buildRoomCode() model.RoomCode {
	const codeLen = 6
	var builder strings.Builder
	builder.Grow(codeLen)

	for range codeLen {
		builder.WriteByte(byte(rand.Intn(10)) + '0')
	}

	return builder.String()
}
