package validation

import (
	"errors"
	"fmt"
)

var (
	// ErrRequired поле не заполнено
	ErrRequired = errors.New("validation: value is required")

	// ErrFormat значение не соответствует формату
	ErrFormat = errors.New("validation: invalid format")

	// ErrOutOfRange значение вне допустимого диапазона
	ErrOutOfRange = errors.New("validation: value out of range")

	// ErrExpired срок действия истёк (карта)
	ErrExpired = errors.New("validation: expired")

	// ErrDateOrder нарушен порядок дат
	ErrDateOrder = errors.New("validation: invalid date order")
)

// Field имя проверяемого поля формы
type Field string

const (
	FieldCardNumber     Field = "cardNumber"
	FieldCardExpiry     Field = "cardDate"
	FieldCVV            Field = "cvv"
	FieldPassportSeries Field = "passportSeries"
	FieldPassportNumber Field = "passportNumber"
	FieldCheckInDate    Field = "checkInDate"
	FieldCheckOutDate   Field = "checkOutDate"
)

// Error типизированный результат проверки поля
type Error struct {
	Field   Field
	Code    error
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Code
}

func newError(field Field, code error, message string) *Error {
	return &Error{Field: field, Code: code, Message: message}
}
