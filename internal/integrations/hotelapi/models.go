package hotelapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/domain"
)

// RoomBooking модель бронирования номера из backend
type RoomBooking struct {
	RoomBookingID   int64   `json:"roomBookingId"`
	RoomNumber      int     `json:"roomNumber"`
	UnitPrice       float64 `json:"unitPrice"`
	NumberOfGuests  int     `json:"numberOfGuests"`
	Capacity        int     `json:"capacity"`
	CheckInDate     string  `json:"checkInDate"`
	CheckInTime     string  `json:"checkInTime"`
	CheckOutDate    string  `json:"checkOutDate"`
	CheckOutTime    string  `json:"checkOutTime"`
	CreatedAt       *string `json:"createdAt"`
	CancelUntilDate string  `json:"cancelUntilDate"`
	CancelUntilTime string  `json:"cancelUntilTime"`
	IsPayd          bool    `json:"isPayd"`
	IsConfirmed     bool    `json:"isConfirmed"`
}

// RoomBookingPatch ответ на подтверждение: присутствуют только изменённые поля
type RoomBookingPatch struct {
	RoomNumber      *int     `json:"roomNumber"`
	UnitPrice       *float64 `json:"unitPrice"`
	NumberOfGuests  *int     `json:"numberOfGuests"`
	Capacity        *int     `json:"capacity"`
	CheckInDate     *string  `json:"checkInDate"`
	CheckInTime     *string  `json:"checkInTime"`
	CheckOutDate    *string  `json:"checkOutDate"`
	CheckOutTime    *string  `json:"checkOutTime"`
	CreatedAt       *string  `json:"createdAt"`
	CancelUntilDate *string  `json:"cancelUntilDate"`
	CancelUntilTime *string  `json:"cancelUntilTime"`
	IsPayd          *bool    `json:"isPayd"`
	IsConfirmed     *bool    `json:"isConfirmed"`
}

// ErrorResponse модель ошибки от backend
type ErrorResponse struct {
	Message string `json:"message"`
}

// ToDomain конвертирует DTO в доменную модель
// Даты без часового пояса интерпретируются в loc
func (b RoomBooking) ToDomain(loc *time.Location) domain.RoomBookingView {
	view := domain.RoomBookingView{
		ID:              b.RoomBookingID,
		RoomNumber:      b.RoomNumber,
		UnitPrice:       b.UnitPrice,
		NumberOfGuests:  b.NumberOfGuests,
		Capacity:        b.Capacity,
		CheckInDate:     b.CheckInDate,
		CheckInTime:     b.CheckInTime,
		CheckOutDate:    b.CheckOutDate,
		CheckOutTime:    b.CheckOutTime,
		CancelUntilDate: b.CancelUntilDate,
		CancelUntilTime: b.CancelUntilTime,
		IsPayd:          b.IsPayd,
		IsConfirmed:     b.IsConfirmed,
	}

	if b.CreatedAt != nil {
		if createdAt, err := ParseTimestamp(*b.CreatedAt, loc); err == nil {
			view.CreatedAt = &createdAt
		}
	}

	if deadline, err := CombineDateTime(b.CancelUntilDate, b.CancelUntilTime, loc); err == nil {
		view.CancelUntil = &deadline
	}

	return view
}

// ToDomain конвертирует патч; дедлайн пересчитывается, только если пришли обе части
func (p RoomBookingPatch) ToDomain(loc *time.Location) domain.RoomBookingPatch {
	patch := domain.RoomBookingPatch{
		RoomNumber:      p.RoomNumber,
		UnitPrice:       p.UnitPrice,
		NumberOfGuests:  p.NumberOfGuests,
		Capacity:        p.Capacity,
		CheckInDate:     p.CheckInDate,
		CheckInTime:     p.CheckInTime,
		CheckOutDate:    p.CheckOutDate,
		CheckOutTime:    p.CheckOutTime,
		CancelUntilDate: p.CancelUntilDate,
		CancelUntilTime: p.CancelUntilTime,
		IsPayd:          p.IsPayd,
		IsConfirmed:     p.IsConfirmed,
	}

	if p.CreatedAt != nil {
		if createdAt, err := ParseTimestamp(*p.CreatedAt, loc); err == nil {
			patch.CreatedAt = &createdAt
		}
	}

	if p.CancelUntilDate != nil && p.CancelUntilTime != nil {
		if deadline, err := CombineDateTime(*p.CancelUntilDate, *p.CancelUntilTime, loc); err == nil {
			patch.CancelUntil = &deadline
		}
	}

	return patch
}

// ParseTimestamp разбирает RFC 3339 или локальное время без зоны
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	// Дробная часть секунд после секунд допускается парсером
	return time.ParseInLocation(domain.LocalDateTime, s, loc)
}

// CombineDateTime объединяет дату (YYYY-MM-DD) и время (HH:MM:SS или HH:MM) в момент времени
func CombineDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	// Дата может прийти как дата-время с нулевым временем
	if i := strings.IndexByte(date, 'T'); i > 0 {
		date = date[:i]
	}
	if date == "" || clock == "" {
		return time.Time{}, fmt.Errorf("incomplete date/time: %q %q", date, clock)
	}

	layout := domain.DateFormat + " " + domain.TimeFormat
	if strings.Count(clock, ":") == 1 {
		layout = domain.DateFormat + " " + domain.ShortTimeFormat
	}
	return time.ParseInLocation(layout, date+" "+clock, loc)
}
