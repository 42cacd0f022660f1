// Package memory is a process-local Booking Store. It keeps the same
// guarantees as the Postgres store and is used for local runs and tests.
package memory

import (
	"context"
	"fmt"
	"roomBooker/internal/booking"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"
	"sort"
	"strings"
	"sync"
	"time"
)

type Storage struct {
	mu            sync.RWMutex
	rooms         []models.Room
	bookings      map[int64][]models.Booking
	codes         map[string]models.Booking
	nextRoomID    int64
	nextBookingID int64
	now           func() time.Time
}

func New() *Storage {
	return &Storage{
		bookings: make(map[int64][]models.Booking),
		codes:    make(map[string]models.Booking),
		now:      time.Now,
	}
}

func (s *Storage) Close() error {
	return nil
}

func (s *Storage) EnsureRooms(_ context.Context, rooms []models.Room) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, room := range rooms {
		if s.hasRoomNamedLocked(room.Name) {
			continue
		}
		s.nextRoomID++
		room.ID = s.nextRoomID
		s.rooms = append(s.rooms, room)
		added++
	}

	return added, nil
}

func (s *Storage) hasRoomNamedLocked(name string) bool {
	for _, r := range s.rooms {
		if r.Name == name {
			return true
		}
	}

	return false
}

func (s *Storage) Room(_ context.Context, id int64) (models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.roomLocked(id)
	if !ok {
		return models.Room{}, storage.ErrRoomNotFound
	}

	return room, nil
}

func (s *Storage) roomLocked(id int64) (models.Room, bool) {
	for _, r := range s.rooms {
		if r.ID == id {
			return r, true
		}
	}

	return models.Room{}, false
}

func (s *Storage) Rooms(_ context.Context, nameFilter string) ([]models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filter := strings.ToLower(nameFilter)

	rooms := make([]models.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		if filter == "" || strings.Contains(strings.ToLower(r.Name), filter) {
			rooms = append(rooms, r)
		}
	}

	return rooms, nil
}

func (s *Storage) Bookings(_ context.Context, roomID int64, from, to time.Time) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.bookingsLocked(roomID, from, to), nil
}

func (s *Storage) bookingsLocked(roomID int64, from, to time.Time) []models.Booking {
	var out []models.Booking
	for _, b := range s.bookings[roomID] {
		if booking.Overlaps(b.StartTime, b.EndTime, from, to) {
			out = append(out, b)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})

	return out
}

// InsertBooking checks overlap and appends under one write lock.
func (s *Storage) InsertBooking(_ context.Context, b models.Booking) (models.Booking, error) {
	const op = "storage.memory.InsertBooking"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roomLocked(b.RoomID); !ok {
		return models.Booking{}, fmt.Errorf("%s: %w", op, storage.ErrRoomNotFound)
	}

	if len(s.bookingsLocked(b.RoomID, b.StartTime, b.EndTime)) > 0 {
		return models.Booking{}, fmt.Errorf("%s: %w", op, storage.ErrBookingConflict)
	}

	if _, taken := s.codes[b.Code]; taken {
		return models.Booking{}, fmt.Errorf("%s: duplicate confirmation code", op)
	}

	s.nextBookingID++
	b.ID = s.nextBookingID
	b.CreatedAt = s.now()

	s.bookings[b.RoomID] = append(s.bookings[b.RoomID], b)
	s.codes[b.Code] = b

	return b, nil
}

func (s *Storage) BookingByCode(_ context.Context, code string) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.codes[code]
	if !ok {
		return models.Booking{}, storage.ErrBookingNotFound
	}

	return b, nil
}
