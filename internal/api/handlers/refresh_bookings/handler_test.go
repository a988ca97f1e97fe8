package refresh_bookings_test

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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/api/handlers/refresh_bookings"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/api/middleware"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/domain"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/service/bookings"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/service/bookings/models"
)

type nopLogger struct{ l *log.Logger }

func newNopLogger() *nopLogger { return &nopLogger{l: log.New(io.Discard, "", 0)} }

func (n *nopLogger) Info(format string, v ...interface{})  { n.l.Printf(format, v...) }
func (n *nopLogger) Warn(format string, v ...interface{})  { n.l.Printf(format, v...) }
func (n *nopLogger) Error(format string, v ...interface{}) { n.l.Printf(format, v...) }

type fakeTracker struct {
	err      error
	view     models.TrackerView
	guestIDs []int64
}

func (f *fakeTracker) LoadBookings(_ context.Context, guestID int64) ([]domain.RoomBookingView, error) {
	f.guestIDs = append(f.guestIDs, guestID)
	return nil, f.err
}

func (f *fakeTracker) Snapshot() models.TrackerView { return f.view }

func newRequest(withGuest bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/refresh", nil)
	if withGuest {
		req = req.WithContext(middleware.WithGuestID(req.Context(), 42))
	}
	return req
}

func TestHandle_Success(t *testing.T) {
	tracker := &fakeTracker{view: models.TrackerView{
		Bookings: []models.BookingView{{ID: 1, State: "pending"}},
	}}
	rec := httptest.NewRecorder()

	refresh_bookings.NewHandler(tracker, newNopLogger()).Handle(rec, newRequest(true))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int64{42}, tracker.guestIDs)

	var view models.TrackerView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Len(t, view.Bookings, 1)
	assert.Equal(t, int64(1), view.Bookings[0].ID)
}

func TestHandle_FetchFailureKeepsView(t *testing.T) {
	tracker := &fakeTracker{
		err: fmt.Errorf("%w: guest=42: status 500", bookings.ErrFetch),
		view: models.TrackerView{
			Bookings: []models.BookingView{{ID: 1}},
			Error:    bookings.MsgFetchFailed,
		},
	}
	rec := httptest.NewRecorder()

	refresh_bookings.NewHandler(tracker, newNopLogger()).Handle(rec, newRequest(true))

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp refresh_bookings.RefreshResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusBadGateway, resp.Code)
	assert.Equal(t, bookings.MsgFetchFailed, resp.Message)
	assert.Len(t, resp.View.Bookings, 1)
}

func TestHandle_Stopped(t *testing.T) {
	tracker := &fakeTracker{err: bookings.ErrStopped}
	rec := httptest.NewRecorder()

	refresh_bookings.NewHandler(tracker, newNopLogger()).Handle(rec, newRequest(true))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandle_MissingGuest(t *testing.T) {
	tracker := &fakeTracker{err: errors.New("must not be called")}
	rec := httptest.NewRecorder()

	refresh_bookings.NewHandler(tracker, newNopLogger()).Handle(rec, newRequest(false))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, tracker.guestIDs)
}
