package domain

import (
	"fmt"
	"time"
)

// BookingState состояние бронирования с точки зрения клиента (авторитетен сервер)
type BookingState string

const (
	StatePending         BookingState = "pending"
	StateConfirmedUnpaid BookingState = "confirmed_unpaid"
	StatePaid            BookingState = "paid"
	StateExpired         BookingState = "expired"
	StateCancelled       BookingState = "cancelled"
)

// RoomBookingView проекция бронирования номера, получаемая от backend (только чтение)
type RoomBookingView struct {
	ID             int64
	RoomNumber     int
	UnitPrice      float64
	NumberOfGuests int
	Capacity       int

	// Период проживания, только для отображения
	CheckInDate  string
	CheckInTime  string
	CheckOutDate string
	CheckOutTime string

	// Начало окна подтверждения; nil, если backend не прислал
	CreatedAt *time.Time

	// Исходные значения дедлайна отмены и их комбинация
	CancelUntilDate string
	CancelUntilTime string
	CancelUntil     *time.Time

	IsPayd      bool
	IsConfirmed bool
}

// RoomBookingPatch частичное обновление бронирования (ответ на подтверждение)
// nil-поля не меняют локальную запись
type RoomBookingPatch struct {
	RoomNumber     *int
	UnitPrice      *float64
	NumberOfGuests *int
	Capacity       *int

	CheckInDate  *string
	CheckInTime  *string
	CheckOutDate *string
	CheckOutTime *string

	CreatedAt *time.Time

	CancelUntilDate *string
	CancelUntilTime *string
	CancelUntil     *time.Time

	IsPayd      *bool
	IsConfirmed *bool
}

// IsPending бронирование не оплачено и не подтверждено
func (b *RoomBookingView) IsPending() bool {
	return !b.IsPayd && !b.IsConfirmed
}

// HasCountdown для бронирования показывается обратный отсчёт
func (b *RoomBookingView) HasCountdown() bool {
	return b.IsPending() && b.CreatedAt != nil
}

// ExpiresAt момент окончания окна подтверждения
func (b *RoomBookingView) ExpiresAt() (time.Time, bool) {
	if b.CreatedAt == nil {
		return time.Time{}, false
	}
	return b.CreatedAt.Add(ConfirmationWindow), true
}

// IsCancellable отмена разрешена строго до дедлайна и только для неподтверждённых бронирований
func (b *RoomBookingView) IsCancellable(now time.Time) bool {
	return IsCancellable(*b, now)
}

// TimeLeft строка обратного отсчёта; false, если отсчёт не показывается
func (b *RoomBookingView) TimeLeft(now time.Time) (string, bool) {
	if !b.HasCountdown() {
		return "", false
	}

	expiresAt, _ := b.ExpiresAt()
	return FormatCountdown(expiresAt.Sub(now)), true
}

// Apply возвращает копию бронирования с применённым патчем
func (b RoomBookingView) Apply(p RoomBookingPatch) RoomBookingView {
	if p.RoomNumber != nil {
		b.RoomNumber = *p.RoomNumber
	}
	if p.UnitPrice != nil {
		b.UnitPrice = *p.UnitPrice
	}
	if p.NumberOfGuests != nil {
		b.NumberOfGuests = *p.NumberOfGuests
	}
	if p.Capacity != nil {
		b.Capacity = *p.Capacity
	}
	if p.CheckInDate != nil {
		b.CheckInDate = *p.CheckInDate
	}
	if p.CheckInTime != nil {
		b.CheckInTime = *p.CheckInTime
	}
	if p.CheckOutDate != nil {
		b.CheckOutDate = *p.CheckOutDate
	}
	if p.CheckOutTime != nil {
		b.CheckOutTime = *p.CheckOutTime
	}
	if p.CreatedAt != nil {
		createdAt := *p.CreatedAt
		b.CreatedAt = &createdAt
	}
	if p.CancelUntilDate != nil {
		b.CancelUntilDate = *p.CancelUntilDate
	}
	if p.CancelUntilTime != nil {
		b.CancelUntilTime = *p.CancelUntilTime
	}
	if p.CancelUntil != nil {
		cancelUntil := *p.CancelUntil
		b.CancelUntil = &cancelUntil
	}
	if p.IsPayd != nil {
		b.IsPayd = *p.IsPayd
	}
	if p.IsConfirmed != nil {
		b.IsConfirmed = *p.IsConfirmed
	}
	return b
}

// IsCancellable now < cancelUntil && !isConfirmed
// Бронирование без дедлайна отменить нельзя
func IsCancellable(b RoomBookingView, now time.Time) bool {
	if b.IsConfirmed || b.CancelUntil == nil {
		return false
	}
	return now.Before(*b.CancelUntil)
}

// StateOf выводит состояние бронирования на момент now
// Expired только отображается, переходы определяет сервер
func StateOf(b RoomBookingView, now time.Time) BookingState {
	switch {
	case b.IsPayd:
		return StatePaid
	case b.IsConfirmed:
		return StateConfirmedUnpaid
	}

	if expiresAt, ok := b.ExpiresAt(); ok && !now.Before(expiresAt) {
		return StateExpired
	}
	return StatePending
}

// FormatCountdown форматирует остаток как MM:SS с округлением вверх до секунды
// Остаток <= 0 даёт ExpiredSentinel
func FormatCountdown(remaining time.Duration) string {
	if remaining <= 0 {
		return ExpiredSentinel
	}

	seconds := int64((remaining + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
