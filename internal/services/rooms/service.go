// Package rooms is the booking service behind the HTTP API. It reads from a
// Store, runs the booking rules and keeps booking creation serialized per room.
package rooms

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"log/slog"
	"roomBooker/internal/booking"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"
	"time"
)

// Store is the persistence the service needs. InsertBooking must reject an
// overlapping booking atomically.
type Store interface {
	Room(ctx context.Context, id int64) (models.Room, error)
	Rooms(ctx context.Context, nameFilter string) ([]models.Room, error)
	Bookings(ctx context.Context, roomID int64, from, to time.Time) ([]models.Booking, error)
	InsertBooking(ctx context.Context, b models.Booking) (models.Booking, error)
	BookingByCode(ctx context.Context, code string) (models.Booking, error)
}

// Notifier is told about every accepted booking. Failures are logged, not returned.
type Notifier interface {
	BookingCreated(ctx context.Context, b models.Booking) error
}

// DefaultNotifyTimeout bounds how long a successful booking waits on its notification.
const DefaultNotifyTimeout = 2 * time.Second

type Service struct {
	log           *slog.Logger
	store         Store
	grid          booking.Grid
	locks         *roomLocks
	notifier      Notifier
	notifyTimeout time.Duration
	now           func() time.Time
	newCode       func() string
}

type Option func(*Service)

func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		s.notifier = n
	}
}

func WithNotifyTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.notifyTimeout = d
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(log *slog.Logger, store Store, grid booking.Grid, opts ...Option) *Service {
	s := &Service{
		log:           log,
		store:         store,
		grid:          grid,
		locks:         newRoomLocks(),
		notifyTimeout: DefaultNotifyTimeout,
		now:           time.Now,
		newCode:       uuid.NewString,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// RoomsWithAvailability lists rooms matching nameFilter with today's free slots.
func (s *Service) RoomsWithAvailability(ctx context.Context, nameFilter string) ([]models.RoomAvailability, error) {
	const op = "services.rooms.RoomsWithAvailability"

	rooms, err := s.store.Rooms(ctx, nameFilter)
	if err != nil {
		return nil, storeError(op, err)
	}

	today := s.grid.Today(s.now())

	result := make([]models.RoomAvailability, 0, len(rooms))
	for _, room := range rooms {
		slots, err := s.availableSlots(ctx, room.ID, today)
		if err != nil {
			return nil, storeError(op, err)
		}

		result = append(result, models.RoomAvailability{
			Room:           room,
			AvailableSlots: slots,
		})
	}

	return result, nil
}

func (s *Service) Room(ctx context.Context, id int64) (models.Room, error) {
	const op = "services.rooms.Room"

	room, err := s.store.Room(ctx, id)
	if err != nil {
		return models.Room{}, storeError(op, err)
	}

	return room, nil
}

// Availability returns the free slot labels of a room on a YYYY-MM-DD date.
func (s *Service) Availability(ctx context.Context, roomID int64, date string) ([]string, error) {
	const op = "services.rooms.Availability"

	day, err := s.grid.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err = s.store.Room(ctx, roomID); err != nil {
		return nil, storeError(op, err)
	}

	slots, err := s.availableSlots(ctx, roomID, day)
	if err != nil {
		return nil, storeError(op, err)
	}

	return slots, nil
}

func (s *Service) availableSlots(ctx context.Context, roomID int64, day time.Time) ([]string, error) {
	from, to := s.grid.DayBounds(day)

	bookings, err := s.store.Bookings(ctx, roomID, from, to)
	if err != nil {
		return nil, err
	}

	return booking.ComputeAvailability(s.grid.SlotsForDay(day), models.Intervals(bookings)), nil
}

// CreateBooking books [start, end) on the room and returns the stored
// booking with its confirmation code.
func (s *Service) CreateBooking(ctx context.Context, roomID int64, start, end time.Time) (models.Booking, error) {
	const op = "services.rooms.CreateBooking"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("room_id", roomID),
	)

	candidate := booking.Interval{
		Start: s.grid.Normalize(start),
		End:   s.grid.Normalize(end),
	}

	if err := booking.ValidateInterval(candidate); err != nil {
		log.Info("booking rejected", sl.Err(err))
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.createSerialized(ctx, roomID, candidate)
	if err != nil {
		if errors.Is(err, booking.ErrStoreUnavailable) {
			log.Error("failed to create booking", sl.Err(err))
		} else {
			log.Info("booking rejected", sl.Err(err))
		}
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("booking created",
		slog.Int64("booking_id", created.ID),
		slog.String("start_time", booking.FormatTimestamp(created.StartTime)),
		slog.String("end_time", booking.FormatTimestamp(created.EndTime)),
	)

	s.notify(ctx, log, created)

	return created, nil
}

// notify runs detached from the request so a slow broker or a client
// disconnect cannot fail or stall an already stored booking.
func (s *Service) notify(ctx context.Context, log *slog.Logger, created models.Booking) {
	if s.notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	defer cancel()

	if err := s.notifier.BookingCreated(ctx, created); err != nil {
		log.Warn("failed to publish booking created event", sl.Err(err))
	}
}

// createSerialized holds the room lock from the read of existing bookings
// until the new booking is stored.
func (s *Service) createSerialized(ctx context.Context, roomID int64, candidate booking.Interval) (models.Booking, error) {
	unlock, err := s.locks.acquire(ctx, roomID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("acquire room lock: %w", err)
	}
	defer unlock()

	roomExists := true
	if _, err = s.store.Room(ctx, roomID); err != nil {
		if !errors.Is(err, storage.ErrRoomNotFound) {
			return models.Booking{}, storeError("find room", err)
		}
		roomExists = false
	}

	var existing []models.Booking
	if roomExists {
		existing, err = s.store.Bookings(ctx, roomID, candidate.Start, candidate.End)
		if err != nil {
			return models.Booking{}, storeError("list bookings", err)
		}
	}

	if err = booking.ValidateNewBooking(candidate, roomExists, models.Intervals(existing)); err != nil {
		return models.Booking{}, err
	}

	created, err := s.store.InsertBooking(ctx, models.Booking{
		RoomID:    roomID,
		StartTime: candidate.Start,
		EndTime:   candidate.End,
		Code:      s.newCode(),
	})
	if err != nil {
		return models.Booking{}, storeError("insert booking", err)
	}

	return created, nil
}

func (s *Service) BookingByCode(ctx context.Context, code string) (models.Booking, error) {
	const op = "services.rooms.BookingByCode"

	b, err := s.store.BookingByCode(ctx, code)
	if err != nil {
		return models.Booking{}, storeError(op, err)
	}

	return b, nil
}

// storeError maps store sentinels to booking errors; anything else is a
// persistence failure.
func storeError(op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrRoomNotFound):
		return fmt.Errorf("%s: %w", op, booking.ErrRoomNotFound)
	case errors.Is(err, storage.ErrBookingNotFound):
		return fmt.Errorf("%s: %w", op, booking.ErrBookingNotFound)
	case errors.Is(err, storage.ErrBookingConflict):
		return fmt.Errorf("%s: %w", op, booking.ErrConflict)
	default:
		return fmt.Errorf("%s: %w: %w", op, booking.ErrStoreUnavailable, err)
	}
}
