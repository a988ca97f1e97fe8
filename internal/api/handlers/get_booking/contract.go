package get_booking

import (
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/service/bookings/models"
)

type BookingTracker interface {
	Booking(bookingID int64) (models.BookingView, bool)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
