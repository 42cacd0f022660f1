package getAvailability

import (
	"context"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"roomBooker/internal/booking"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"strconv"
)

const invalidDateMsg = "Invalid date format. Use YYYY-MM-DD."

type Response struct {
	response.Response
	AvailableSlots []string `json:"available_slots"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AvailabilityGetter
type AvailabilityGetter interface {
	Availability(ctx context.Context, roomID int64, date string) ([]string, error)
}

func New(log *slog.Logger, getter AvailabilityGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.room.getAvailability.New"

		log := log.With(slog.String("op", op))

		roomIDStr := chi.URLParam(r, "id")
		if roomIDStr == "" {
			log.Error("room id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("room id is required"))
			return
		}

		roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
		if err != nil {
			log.Error("invalid room id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid room id format"))
			return
		}

		date := chi.URLParam(r, "date")

		log = log.With(
			slog.Int64("room_id", roomID),
			slog.String("date", date),
		)

		slots, err := getter.Availability(r.Context(), roomID, date)
		if err != nil {
			switch {
			case errors.Is(err, booking.ErrInvalidDate):
				log.Info("invalid date", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(invalidDateMsg))
			case errors.Is(err, booking.ErrRoomNotFound):
				log.Info("room not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("room not found"))
			default:
				log.Error("failed to get availability", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get availability"))
			}
			return
		}

		if slots == nil {
			slots = []string{}
		}

		log.Info("availability retrieved", slog.Int("free_slots", len(slots)))

		render.JSON(w, r, Response{
			Response:       response.OK(),
			AvailableSlots: slots,
		})
	}
}
