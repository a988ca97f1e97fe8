package confirm_booking

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

// Handle PATCH /api/v1/bookings/{bookingId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/confirm - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	updated, err := h.tracker.ConfirmBooking(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, bookings.ErrConfirm) {
			h.logger.Error("PATCH /bookings/{id}/confirm - Failed to confirm booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondBadGateway(w, bookings.MsgConfirmFailed)
			return
		}

		h.logger.Error("PATCH /bookings/{id}/confirm - Unexpected error: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	// Неотслеживаемое бронирование отдаём по ответу сервера
	view, ok := h.tracker.Booking(bookingID)
	if !ok {
		view = h.tracker.View(updated)
	}

	h.logger.Info("PATCH /bookings/{id}/confirm - Booking confirmed successfully: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, view)
}
