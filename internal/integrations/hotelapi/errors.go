package hotelapi

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено на сервере
	ErrBookingNotFound = errors.New("hotelapi client: booking not found")

	// ErrUnauthorized возвращается при 401/403 от сервера
	ErrUnauthorized = errors.New("hotelapi client: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, отмена контекста)
	ErrInternal = errors.New("hotelapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервера
	ErrInvalidResponse = errors.New("hotelapi client: invalid response")
)
