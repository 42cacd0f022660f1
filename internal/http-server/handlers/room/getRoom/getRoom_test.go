package getRoom

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"roomBooker/internal/booking"
	"roomBooker/internal/http-server/handlers/room/getRoom/mocks"
	"roomBooker/internal/lib/logger/handlers/slogdiscard"
	"roomBooker/internal/models"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetRoomHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		roomID         string
		mockSetup      func(m *mocks.RoomGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success",
			roomID: "3",
			mockSetup: func(m *mocks.RoomGetter) {
				m.On("Room", mock.Anything, int64(3)).
					Return(models.Room{ID: 3, Name: "Board Room", Capacity: 12, Projector: true, Sound: true}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","id":3,"name":"Board Room","capacity":12,"projector":true,"sound":true}`,
		},
		{
			name:           "Invalid room ID format",
			roomID:         "abc",
			mockSetup:      func(m *mocks.RoomGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid room id format"}`,
		},
		{
			name:   "Room not found",
			roomID: "999",
			mockSetup: func(m *mocks.RoomGetter) {
				m.On("Room", mock.Anything, int64(999)).
					Return(models.Room{}, fmt.Errorf("services.rooms.Room: %w", booking.ErrRoomNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"room not found"}`,
		},
		{
			name:   "Store error",
			roomID: "1",
			mockSetup: func(m *mocks.RoomGetter) {
				m.On("Room", mock.Anything, int64(1)).
					Return(models.Room{}, errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get room"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewRoomGetter(t)
			tc.mockSetup(getter)

			router := chi.NewRouter()
			router.Get("/api/rooms/{id}", New(logger, getter))

			req := httptest.NewRequest(http.MethodGet, "/api/rooms/"+tc.roomID, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestHandlerWithChiContext(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	getter := mocks.NewRoomGetter(t)

	handler := New(logger, getter)

	req := httptest.NewRequest(http.MethodGet, "/api/rooms/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"room id is required"}`, rr.Body.String())
}
