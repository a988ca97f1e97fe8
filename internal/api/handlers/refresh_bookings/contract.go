package refresh_bookings

import (
	"context"

	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/domain"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/service/bookings/models"
)

type BookingTracker interface {
	LoadBookings(ctx context.Context, guestID int64) ([]domain.RoomBookingView, error)
	Snapshot() models.TrackerView
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
