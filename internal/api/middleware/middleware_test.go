package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/api/middleware"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/auth"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/pkg/metrics"
)

type staticSessions struct {
	session *auth.Session
	err     error
}

func (s staticSessions) Session() (*auth.Session, error) { return s.session, s.err }

func TestAuth_PutsGuestIDIntoContext(t *testing.T) {
	var got int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.GetGuestID(r.Context())
		require.True(t, ok)
		got = id
		w.WriteHeader(http.StatusNoContent)
	})

	handler := middleware.Auth(staticSessions{session: &auth.Session{GuestID: 42}})(next)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(42), got)
}

func TestAuth_RejectsWithoutSession(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	handler := middleware.Auth(staticSessions{err: errors.New("not loaded")})(next)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := metrics.New("test")

	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware(m))
	r.HandleFunc("/api/v1/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	for _, id := range []string{"1", "2", "3"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+id, nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	count, err := testutil.GatherAndCount(m.Registry(), "test_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
