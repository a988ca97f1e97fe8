package get_bookings

import (
	"net/http"

	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/api/handlers"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/domain"
)

const (
	msgInvalidState = "некорректный фильтр состояния"
)

type Handler struct {
	tracker BookingTracker
	logger  Logger
}

func NewHandler(tracker BookingTracker, logger Logger) *Handler {
	return &Handler{
		tracker: tracker,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем state из query параметров (опционально)
	state := r.URL.Query().Get("state")
	if state != "" && !isKnownState(state) {
		h.logger.Warn("GET /bookings - Invalid state filter: %q", state)
		handlers.RespondBadRequest(w, msgInvalidState)
		return
	}

	view := h.tracker.Snapshot()

	if state != "" {
		filtered := view.Bookings[:0]
		for _, b := range view.Bookings {
			if b.State == state {
				filtered = append(filtered, b)
			}
		}
		view.Bookings = filtered
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: count=%d", len(view.Bookings))
	handlers.RespondJSON(w, http.StatusOK, view)
}

func isKnownState(state string) bool {
	for _, s := range domain.AllStates {
		if string(s) == state {
			return true
		}
	}
	return false
}
