package health

import (
	"github.com/go-chi/render"
	"net/http"
	"roomBooker/internal/lib/api/response"
)

func New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.OK())
	}
}
