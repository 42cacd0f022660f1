package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"roomBooker/internal/config"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"
	"strings"
	"time"
)

//go:embed migrations/*.sql
var migrations embed.FS

const (
	codeExclusionViolation = "23P01"
	codeForeignKeyMissing  = "23503"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

// Migrate applies the embedded schema migrations.
func (s *Storage) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, s.DB, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) EnsureRooms(ctx context.Context, rooms []models.Room) (int, error) {
	query := `
		INSERT INTO rooms (name, capacity, projector, sound)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO NOTHING`

	added := 0
	for _, room := range rooms {
		result, err := s.DB.ExecContext(ctx, query, room.Name, room.Capacity, room.Projector, room.Sound)
		if err != nil {
			return added, fmt.Errorf("failed to add room %q: %w", room.Name, err)
		}

		n, err := result.RowsAffected()
		if err != nil {
			return added, fmt.Errorf("failed to add room %q: %w", room.Name, err)
		}
		added += int(n)
	}

	return added, nil
}

func (s *Storage) Room(ctx context.Context, id int64) (models.Room, error) {
	query := `
		SELECT id, name, capacity, projector, sound
		FROM rooms
		WHERE id = $1`

	var room models.Room
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.Projector,
		&room.Sound,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Room{}, storage.ErrRoomNotFound
		}
		return models.Room{}, fmt.Errorf("failed to get room: %w", err)
	}

	return room, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (s *Storage) Rooms(ctx context.Context, nameFilter string) ([]models.Room, error) {
	query := `
		SELECT id, name, capacity, projector, sound
		FROM rooms
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY id ASC`

	rows, err := s.DB.QueryContext(ctx, query, likeEscaper.Replace(nameFilter))
	if err != nil {
		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}
	defer rows.Close()

	rooms := make([]models.Room, 0)
	for rows.Next() {
		var room models.Room
		err = rows.Scan(
			&room.ID,
			&room.Name,
			&room.Capacity,
			&room.Projector,
			&room.Sound,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rooms: %w", err)
	}

	return rooms, nil
}

// Bookings returns the room's bookings intersecting [from, to).
func (s *Storage) Bookings(ctx context.Context, roomID int64, from, to time.Time) ([]models.Booking, error) {
	query := `
		SELECT id, room_id, start_time, end_time, code, created_at
		FROM bookings
		WHERE room_id = $1 AND start_time < $3 AND end_time > $2
		ORDER BY start_time ASC`

	rows, err := s.DB.QueryContext(ctx, query, roomID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		err = rows.Scan(
			&b.ID,
			&b.RoomID,
			&b.StartTime,
			&b.EndTime,
			&b.Code,
			&b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

// InsertBooking locks the room row, re-checks overlap and inserts in one
// transaction. The exclusion constraint backs this up across instances.
func (s *Storage) InsertBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var roomID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`, b.RoomID).Scan(&roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, storage.ErrRoomNotFound
		}
		return models.Booking{}, fmt.Errorf("failed to lock room: %w", err)
	}

	var overlapping bool
	checkQuery := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE room_id = $1 AND start_time < $3 AND end_time > $2
		)`

	err = tx.QueryRowContext(ctx, checkQuery, b.RoomID, b.StartTime, b.EndTime).Scan(&overlapping)
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to check overlapping bookings: %w", err)
	}

	if overlapping {
		return models.Booking{}, storage.ErrBookingConflict
	}

	insertQuery := `
		INSERT INTO bookings (room_id, start_time, end_time, code)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err = tx.QueryRowContext(ctx, insertQuery, b.RoomID, b.StartTime, b.EndTime, b.Code).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return models.Booking{}, mapInsertError(err)
	}

	if err = tx.Commit(); err != nil {
		return models.Booking{}, mapInsertError(err)
	}

	return b, nil
}

func mapInsertError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeExclusionViolation:
			return storage.ErrBookingConflict
		case codeForeignKeyMissing:
			return storage.ErrRoomNotFound
		}
	}

	return fmt.Errorf("failed to create booking: %w", err)
}

func (s *Storage) BookingByCode(ctx context.Context, code string) (models.Booking, error) {
	query := `
		SELECT id, room_id, start_time, end_time, code, created_at
		FROM bookings
		WHERE code = $1`

	var b models.Booking
	err := s.DB.QueryRowContext(ctx, query, code).Scan(
		&b.ID,
		&b.RoomID,
		&b.StartTime,
		&b.EndTime,
		&b.Code,
		&b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, storage.ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	return b, nil
}
