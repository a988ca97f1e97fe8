package cancel_booking

import (
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/domain"
)

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	BookingID int64  `json:"roomBookingId"`
	State     string `json:"state"`
}

func newResponse(bookingID int64) CancelBookingResponse {
	return CancelBookingResponse{
		BookingID: bookingID,
		State:     string(domain.StateCancelled),
	}
}
