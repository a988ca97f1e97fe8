package bookings

import (
	"context"
	"time"

	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/domain"
)

// HotelAPIClient интерфейс клиента backend гостиницы
type HotelAPIClient interface {
	GetGuestBookings(ctx context.Context, guestID int64) ([]domain.RoomBookingView, error)
	ConfirmBooking(ctx context.Context, bookingID int64) (*domain.RoomBookingPatch, error)
	DeleteBooking(ctx context.Context, bookingID int64) error
}

// Notifier показывает пользователю блокирующее сообщение (аналог alert)
type Notifier interface {
	Alert(message string)
}

// Metrics интерфейс сбора метрик трекера
type Metrics interface {
	ObservePoll(result string)
	ObserveAction(action, result string)
	SetTracked(byState map[string]int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type noopMetrics struct{}

func (noopMetrics) ObservePoll(string)           {}
func (noopMetrics) ObserveAction(string, string) {}
func (noopMetrics) SetTracked(map[string]int)    {}
