package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/api/handlers"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgCannotCancel     = "бронирование не может быть отменено"
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

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Отменяем бронирование
	err = h.tracker.CancelBooking(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrNotCancellable):
			h.logger.Warn("DELETE /bookings/{id} - Cannot cancel: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, bookings.ErrCancel):
			h.logger.Error("DELETE /bookings/{id} - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondBadGateway(w, bookings.MsgCancelFailed)

		default:
			h.logger.Error("DELETE /bookings/{id} - Unexpected error: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking cancelled successfully: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, newResponse(bookingID))
}
