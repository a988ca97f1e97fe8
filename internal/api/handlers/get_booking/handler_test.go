package get_booking_test

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/api/handlers/get_booking"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/service/bookings/models"
)

type nopLogger struct{ l *log.Logger }

func newNopLogger() *nopLogger { return &nopLogger{l: log.New(io.Discard, "", 0)} }

func (n *nopLogger) Info(format string, v ...interface{})  { n.l.Printf(format, v...) }
func (n *nopLogger) Warn(format string, v ...interface{})  { n.l.Printf(format, v...) }
func (n *nopLogger) Error(format string, v ...interface{}) { n.l.Printf(format, v...) }

type mapTracker map[int64]models.BookingView

func (m mapTracker) Booking(bookingID int64) (models.BookingView, bool) {
	b, ok := m[bookingID]
	return b, ok
}

func TestHandle(t *testing.T) {
	tracker := mapTracker{7: {ID: 7, State: "pending", TimeLeft: "03:15"}}
	handler := get_booking.NewHandler(tracker, newNopLogger())

	tests := []struct {
		name       string
		bookingID  string
		wantStatus int
		wantBody   string
	}{
		{"tracked", "7", http.StatusOK, `"timeLeft":"03:15"`},
		{"not tracked", "8", http.StatusNotFound, `"code":404`},
		{"invalid id", "seven", http.StatusBadRequest, `"code":400`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+tt.bookingID, nil)
			req = mux.SetURLVars(req, map[string]string{"bookingId": tt.bookingID})
			rec := httptest.NewRecorder()

			handler.Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
