package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCode(t *testing.T, err error, field Field, code error) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, code)

	var vErr *Error
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, field, vErr.Field)
}

func TestCardNumber(t *testing.T) {
	assert.NoError(t, CardNumber("4276123412341234"))
	assert.NoError(t, CardNumber("4276 1234 1234 1234"))

	assertCode(t, CardNumber(""), FieldCardNumber, ErrRequired)
	assertCode(t, CardNumber("4276 1234 1234"), FieldCardNumber, ErrFormat)
	assertCode(t, CardNumber("4276-1234-1234-1234"), FieldCardNumber, ErrFormat)
	assertCode(t, CardNumber("42761234123412345"), FieldCardNumber, ErrFormat)
}

func TestCardExpiry(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, CardExpiry("06/25", now))
	assert.NoError(t, CardExpiry("01/30", now))

	assertCode(t, CardExpiry("", now), FieldCardExpiry, ErrRequired)
	assertCode(t, CardExpiry("6/25", now), FieldCardExpiry, ErrFormat)
	assertCode(t, CardExpiry("13/25", now), FieldCardExpiry, ErrOutOfRange)
	assertCode(t, CardExpiry("00/26", now), FieldCardExpiry, ErrOutOfRange)
	assertCode(t, CardExpiry("05/25", now), FieldCardExpiry, ErrExpired)
	assertCode(t, CardExpiry("12/24", now), FieldCardExpiry, ErrExpired)
}

func TestCVV(t *testing.T) {
	assert.NoError(t, CVV("123"))
	assertCode(t, CVV(""), FieldCVV, ErrRequired)
	assertCode(t, CVV("12a"), FieldCVV, ErrFormat)
	assertCode(t, CVV("1234"), FieldCVV, ErrFormat)
}

func TestPassport(t *testing.T) {
	assert.NoError(t, Passport("4510", "123456"))

	assertCode(t, Passport("", "123456"), FieldPassportSeries, ErrRequired)
	assertCode(t, Passport("451", "123456"), FieldPassportSeries, ErrFormat)
	assertCode(t, Passport("4510", ""), FieldPassportNumber, ErrRequired)
	assertCode(t, Passport("4510", "12345x"), FieldPassportNumber, ErrFormat)
}

func TestStayRange(t *testing.T) {
	today := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC) }

	assert.NoError(t, StayRange(day(15), day(16), today))
	assert.NoError(t, StayRange(day(20), day(25), today))

	assertCode(t, StayRange(time.Time{}, day(16), today), FieldCheckInDate, ErrRequired)
	assertCode(t, StayRange(day(15), time.Time{}, today), FieldCheckOutDate, ErrRequired)
	assertCode(t, StayRange(day(14), day(16), today), FieldCheckInDate, ErrOutOfRange)
	assertCode(t, StayRange(day(16), day(16), today), FieldCheckOutDate, ErrDateOrder)
	assertCode(t, StayRange(day(17), day(16), today), FieldCheckOutDate, ErrDateOrder)
}

func TestStayOrder(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC) }

	assert.NoError(t, StayOrder(day(1), day(2)))
	assert.NoError(t, StayOrder(time.Time{}, day(2)))
	assertCode(t, StayOrder(day(2), day(2)), FieldCheckOutDate, ErrDateOrder)
}

func TestError_Message(t *testing.T) {
	err := CVV("1")
	assert.Equal(t, "cvv: CVV должен содержать 3 цифры", err.Error())
}
