package getBooking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"roomBooker/internal/booking"
	"roomBooker/internal/http-server/handlers/booking/getBooking/mocks"
	"roomBooker/internal/lib/logger/handlers/slogdiscard"
	"roomBooker/internal/models"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	stored := models.Booking{
		ID:        5,
		RoomID:    2,
		StartTime: time.Date(2024, 12, 25, 4, 30, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 12, 25, 5, 30, 0, 0, time.UTC),
		Code:      "abc-123",
		CreatedAt: time.Date(2024, 12, 24, 8, 0, 0, 0, time.UTC),
	}

	testCases := []struct {
		name           string
		code           string
		mockSetup      func(m *mocks.BookingGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			code: "abc-123",
			mockSetup: func(m *mocks.BookingGetter) {
				m.On("BookingByCode", mock.Anything, "abc-123").Return(stored, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","booking":{
				"id":5,"room_id":2,
				"start_time":"2024-12-25T04:30:00.000000Z",
				"end_time":"2024-12-25T05:30:00.000000Z",
				"code":"abc-123",
				"created_at":"2024-12-24T08:00:00.000000Z"
			}}`,
		},
		{
			name: "Booking not found",
			code: "missing",
			mockSetup: func(m *mocks.BookingGetter) {
				m.On("BookingByCode", mock.Anything, "missing").Return(models.Booking{}, booking.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name: "Store error",
			code: "abc-123",
			mockSetup: func(m *mocks.BookingGetter) {
				m.On("BookingByCode", mock.Anything, "abc-123").Return(models.Booking{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewBookingGetter(t)
			tc.mockSetup(getter)

			router := chi.NewRouter()
			router.Get("/api/bookings/{code}", New(logger, getter))

			req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+tc.code, nil)
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
	getter := mocks.NewBookingGetter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("code", "")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rr := httptest.NewRecorder()
	New(logger, getter).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"booking code is required"}`, rr.Body.String())
}
