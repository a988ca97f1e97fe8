package cancel_booking_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/api/handlers"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/api/handlers/cancel_booking"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/service/bookings"
)

type nopLogger struct{ l *log.Logger }

func newNopLogger() *nopLogger { return &nopLogger{l: log.New(io.Discard, "", 0)} }

func (n *nopLogger) Info(format string, v ...interface{})  { n.l.Printf(format, v...) }
func (n *nopLogger) Warn(format string, v ...interface{})  { n.l.Printf(format, v...) }
func (n *nopLogger) Error(format string, v ...interface{}) { n.l.Printf(format, v...) }

type fakeTracker struct {
	err    error
	called []int64
}

func (f *fakeTracker) CancelBooking(_ context.Context, bookingID int64) error {
	f.called = append(f.called, bookingID)
	return f.err
}

func serve(t *testing.T, tracker *fakeTracker, bookingID string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/"+bookingID, nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID})
	rec := httptest.NewRecorder()

	cancel_booking.NewHandler(tracker, newNopLogger()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		bookingID  string
		err        error
		wantStatus int
		wantCalled bool
	}{
		{"success", "12", nil, http.StatusOK, true},
		{"invalid id", "abc", nil, http.StatusBadRequest, false},
		{"not cancellable", "12", bookings.ErrNotCancellable, http.StatusConflict, true},
		{"backend failure", "12", fmt.Errorf("%w: booking=12: timeout", bookings.ErrCancel), http.StatusBadGateway, true},
		{"unexpected", "12", errors.New("boom"), http.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := &fakeTracker{err: tt.err}

			rec := serve(t, tracker, tt.bookingID)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantCalled, len(tracker.called) == 1)
		})
	}
}

func TestHandle_ResponseBodies(t *testing.T) {
	rec := serve(t, &fakeTracker{}, "12")

	var ok cancel_booking.CancelBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ok))
	assert.Equal(t, int64(12), ok.BookingID)
	assert.Equal(t, "cancelled", ok.State)

	rec = serve(t, &fakeTracker{err: fmt.Errorf("%w: x", bookings.ErrCancel)}, "12")

	var failed handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &failed))
	assert.Equal(t, http.StatusBadGateway, failed.Code)
	assert.Equal(t, bookings.MsgCancelFailed, failed.Message)
}
