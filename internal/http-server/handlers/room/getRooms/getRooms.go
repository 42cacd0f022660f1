package getRooms

import (
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"
	"strings"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomsLister
type RoomsLister interface {
	RoomsWithAvailability(ctx context.Context, nameFilter string) ([]models.RoomAvailability, error)
}

func New(log *slog.Logger, lister RoomsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.room.getRooms.New"

		log := log.With(slog.String("op", op))

		query := strings.TrimSpace(r.URL.Query().Get("q"))

		rooms, err := lister.RoomsWithAvailability(r.Context(), query)
		if err != nil {
			log.Error("failed to get rooms", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get rooms"))
			return
		}

		if rooms == nil {
			rooms = []models.RoomAvailability{}
		}

		log.Info("rooms retrieved", slog.Int("count", len(rooms)), slog.String("query", query))

		responseOK(w, r, rooms)
	}
}

// responseOK writes the bare list; browser clients iterate the body directly.
func responseOK(w http.ResponseWriter, r *http.Request, rooms []models.RoomAvailability) {
	render.JSON(w, r, rooms)
}
