package getRoom

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
	"roomBooker/internal/models"
	"strconv"
)

type Response struct {
	response.Response
	models.Room
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomGetter
type RoomGetter interface {
	Room(ctx context.Context, id int64) (models.Room, error)
}

func New(log *slog.Logger, getter RoomGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.room.getRoom.New"

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

		log = log.With(slog.Int64("room_id", roomID))

		room, err := getter.Room(r.Context(), roomID)
		if err != nil {
			if errors.Is(err, booking.ErrRoomNotFound) {
				log.Info("room not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("room not found"))
				return
			}

			log.Error("failed to get room", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get room"))
			return
		}

		log.Info("room retrieved")

		responseOK(w, r, room)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, room models.Room) {
	render.JSON(w, r, Response{
		Response: response.OK(),
		Room:     room,
	})
}
