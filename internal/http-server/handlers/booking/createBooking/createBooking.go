package createBooking

import (
	"context"
	"errors"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
	"roomBooker/internal/booking"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"
	"time"
)

const successMsg = "Booking successful! Access your booked room with this code: "

// Request carries roomId as a pointer so required checks presence only.
// Unknown ids, zero included, are answered by the service.
type Request struct {
	RoomID    *int64 `json:"roomId" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}

type Response struct {
	response.Response
	Message string `json:"message"`
	Code    string `json:"code"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(ctx context.Context, roomID int64, start, end time.Time) (models.Booking, error)
}

func New(log *slog.Logger, creator BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log := log.With(slog.String("op", op))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		start, err := booking.ParseTimestamp(req.StartTime)
		if err != nil {
			log.Error("invalid start time", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid startTime format"))
			return
		}

		end, err := booking.ParseTimestamp(req.EndTime)
		if err != nil {
			log.Error("invalid end time", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid endTime format"))
			return
		}

		created, err := creator.CreateBooking(r.Context(), *req.RoomID, start, end)
		if err != nil {
			switch {
			case errors.Is(err, booking.ErrInvalidInterval):
				log.Info("invalid booking interval", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(booking.ErrInvalidInterval.Error()))
			case errors.Is(err, booking.ErrRoomNotFound):
				log.Info("room not found", slog.Int64("room_id", *req.RoomID))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("room not found"))
			case errors.Is(err, booking.ErrConflict):
				log.Info("booking conflict", sl.Err(err))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(booking.ErrConflict.Error()))
			default:
				log.Error("failed to create booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
			}
			return
		}

		log.Info("booking created", slog.Int64("booking_id", created.ID))

		responseCreated(w, r, created.Code)
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request, code string) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, Response{
		Response: response.OK(),
		Message:  successMsg + code,
		Code:     code,
	})
}
