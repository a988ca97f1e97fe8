package get_booking

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/api/handlers"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
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

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, ok := h.tracker.Booking(bookingID)
	if !ok {
		h.logger.Warn("GET /bookings/{id} - Booking not tracked: booking_id=%d", bookingID)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking retrieved successfully: booking_id=%d, state=%s",
		bookingID, booking.State)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
