package storage_room

import (
	"sync"
	"testing"

	"github.com/Jaymin100/BooHoo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRoomCode(t *testing.T) {
	for range 200 {
		code := buildRoomCode()
		require.Len(t, code, 6)
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9', "unexpected char %q in %q", c, code)
		}
	}
}

func TestCreateGetDelete(t *testing.T) {
	s := New()

	code := s.CreateRoom()
	require.Len(t, code, 6)
	assert.True(t, s.Exists(code))

	room, err := s.GetRoom(code)
	require.NoError(t, err)
	assert.Equal(t, code, room.Code())
	assert.Equal(t, model.StatusWaiting, room.Status())
	assert.Empty(t, room.Summary().Players)

	require.NoError(t, s.DeleteRoom(code))
	assert.False(t, s.Exists(code))

	_, err = s.GetRoom(code)
	assert.ErrorIs(t, err, model.ErrRoomNotFound)
	assert.ErrorIs(t, s.DeleteRoom(code), model.ErrRoomNotFound)
}

func TestGetUnknownRoom(t *testing.T) {
	s := New()

	_, err := s.GetRoom("999999")
	assert.ErrorIs(t, err, model.ErrRoomNotFound)
}

func TestCreateRoomRetriesOnCollision(t *testing.T) {
	codes := []model.RoomCode{"111111", "111111", "111111", "222222"}
	var i int
	s := New(WithCodeSource(func() model.RoomCode {
		code := codes[i]
		i++
		return code
	}))

	assert.Equal(t, "111111", s.CreateRoom())
	assert.Equal(t, "222222", s.CreateRoom())
	assert.Equal(t, 4, i)
	assert.Equal(t, 2, s.Len())
}

func TestConcurrentCreateYieldsDistinctCodes(t *testing.T) {
	const n = 500
	s := New()

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		codes = make(map[model.RoomCode]struct{}, n)
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code := s.CreateRoom()
			mu.Lock()
			codes[code] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, codes, n)
	assert.Equal(t, n, s.Len())
}

func TestRoomsSortedByCode(t *testing.T) {
	codes := []model.RoomCode{"300000", "100000", "200000"}
	var i int
	s := New(WithCodeSource(func() model.RoomCode {
		code := codes[i]
		i++
		return code
	}))
	for range codes {
		s.CreateRoom()
	}

	rooms := s.Rooms()
	require.Len(t, rooms, 3)
	assert.Equal(t, "100000", rooms[0].Code())
	assert.Equal(t, "200000", rooms[1].Code())
	assert.Equal(t, "300000", rooms[2].Code())
}
