// Package kafka publishes booking lifecycle events.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"log/slog"
	"roomBooker/internal/booking"
	"roomBooker/internal/config"
	"roomBooker/internal/models"
	"strconv"
	"sync"
	"time"
)

const (
	EventBookingCreated = "booking.created"

	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
)

var ErrProducerClosed = errors.New("producer is closed")

// BookingCreatedEvent is the JSON payload of EventBookingCreated.
type BookingCreatedEvent struct {
	BookingID int64  `json:"booking_id"`
	RoomID    int64  `json:"room_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Code      string `json:"code"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	log    *slog.Logger
	writer messageWriter
	mu     sync.RWMutex
	closed bool
}

func NewProducer(log *slog.Logger, cfg config.Kafka) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}

	if cfg.Topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		BatchTimeout: 10 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error(fmt.Sprintf(msg, args...), slog.String("component", "kafka"))
		}),
	}

	return newProducer(log, writer), nil
}

func newProducer(log *slog.Logger, writer messageWriter) *Producer {
	return &Producer{
		log:    log,
		writer: writer,
	}
}

// BookingCreated publishes the event keyed by room id so a room's events stay ordered.
func (p *Producer) BookingCreated(ctx context.Context, b models.Booking) error {
	const op = "events.kafka.BookingCreated"

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return fmt.Errorf("%s: %w", op, ErrProducerClosed)
	}

	msg, err := bookingCreatedMessage(b, time.Now())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p.log.Debug("booking event published",
		slog.String("event_type", EventBookingCreated),
		slog.Int64("booking_id", b.ID),
	)

	return nil
}

func bookingCreatedMessage(b models.Booking, now time.Time) (kafka.Message, error) {
	value, err := json.Marshal(BookingCreatedEvent{
		BookingID: b.ID,
		RoomID:    b.RoomID,
		StartTime: booking.FormatTimestamp(b.StartTime),
		EndTime:   booking.FormatTimestamp(b.EndTime),
		Code:      b.Code,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(strconv.FormatInt(b.RoomID, 10)),
		Value: value,
		Time:  now,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(uuid.NewString())},
			{Key: HeaderEventType, Value: []byte(EventBookingCreated)},
		},
	}, nil
}

func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	return p.writer.Close()
}
