package confirm_booking

import (
	"context"

	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/domain"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/service/bookings/models"
)

type BookingTracker interface {
	ConfirmBooking(ctx context.Context, bookingID int64) (domain.RoomBookingView, error)
	Booking(bookingID int64) (models.BookingView, bool)
	View(b domain.RoomBookingView) models.BookingView
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
