package refresh_bookings

import (
	"errors"
	"net/http"

	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/api/handlers"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/api/middleware"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/service/bookings"
)

const (
	msgMissingGuestID = "отсутствует ID гостя"
	msgStopped        = "обновление остановлено"
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

// Handle POST /api/v1/bookings/refresh
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем guestID из контекста (через middleware Auth)
	guestID, ok := middleware.GetGuestID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/refresh - Missing guest ID")
		handlers.RespondUnauthorized(w, msgMissingGuestID)
		return
	}

	_, err := h.tracker.LoadBookings(r.Context(), guestID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrStopped):
			h.logger.Warn("POST /bookings/refresh - Tracker stopped: guest_id=%d", guestID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStopped)

		default:
			h.logger.Error("POST /bookings/refresh - Failed to refresh bookings: guest_id=%d, error=%v",
				guestID, err)
			handlers.RespondJSON(w, http.StatusBadGateway, RefreshResponse{
				Code:    http.StatusBadGateway,
				Message: bookings.MsgFetchFailed,
				View:    h.tracker.Snapshot(),
			})
		}
		return
	}

	view := h.tracker.Snapshot()

	h.logger.Info("POST /bookings/refresh - Bookings refreshed successfully: guest_id=%d, count=%d",
		guestID, len(view.Bookings))
	handlers.RespondJSON(w, http.StatusOK, view)
}
