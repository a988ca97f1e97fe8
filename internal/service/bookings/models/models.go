package models

import (
	"time"

	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/domain"
)

// BookingView строка представления: бронирование плюс производное состояние
type BookingView struct {
	ID             int64   `json:"roomBookingId"`
	RoomNumber     int     `json:"roomNumber"`
	UnitPrice      float64 `json:"unitPrice"`
	NumberOfGuests int     `json:"numberOfGuests"`
	Capacity       int     `json:"capacity"`

	CheckInDate  string `json:"checkInDate"`
	CheckInTime  string `json:"checkInTime"`
	CheckOutDate string `json:"checkOutDate"`
	CheckOutTime string `json:"checkOutTime"`

	CreatedAt       *time.Time `json:"createdAt,omitempty"`
	CancelUntilDate string     `json:"cancelUntilDate"`
	CancelUntilTime string     `json:"cancelUntilTime"`
	CancelUntil     *time.Time `json:"cancelUntil,omitempty"` // ISO 8601

	IsPayd      bool `json:"isPayd"`
	IsConfirmed bool `json:"isConfirmed"`

	// Производные значения
	TimeLeft    string `json:"timeLeft,omitempty"` // "MM:SS" или сообщение об истечении
	Cancellable bool   `json:"cancellable"`
	State       string `json:"state"`
}

// TrackerView снимок состояния трекера
type TrackerView struct {
	Bookings []BookingView `json:"bookings"`
	Error    string        `json:"error,omitempty"`
	LoadedAt *time.Time    `json:"loadedAt,omitempty"`
}

// FromDomainBooking конвертирует domain модель в строку представления
func FromDomainBooking(b domain.RoomBookingView, timeLeft string, now time.Time) BookingView {
	return BookingView{
		ID:              b.ID,
		RoomNumber:      b.RoomNumber,
		UnitPrice:       b.UnitPrice,
		NumberOfGuests:  b.NumberOfGuests,
		Capacity:        b.Capacity,
		CheckInDate:     b.CheckInDate,
		CheckInTime:     b.CheckInTime,
		CheckOutDate:    b.CheckOutDate,
		CheckOutTime:    b.CheckOutTime,
		CreatedAt:       b.CreatedAt,
		CancelUntilDate: b.CancelUntilDate,
		CancelUntilTime: b.CancelUntilTime,
		CancelUntil:     b.CancelUntil,
		IsPayd:          b.IsPayd,
		IsConfirmed:     b.IsConfirmed,
		TimeLeft:        timeLeft,
		Cancellable:     domain.IsCancellable(b, now),
		State:           string(domain.StateOf(b, now)),
	}
}
