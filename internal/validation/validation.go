package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	cardNumberRe     = regexp.MustCompile(`^\d{4}( ?\d{4}){3}$`)
	cardExpiryRe     = regexp.MustCompile(`^(\d{2})/(\d{2})$`)
	cvvRe            = regexp.MustCompile(`^\d{3}$`)
	passportSeriesRe = regexp.MustCompile(`^\d{4}$`)
	passportNumberRe = regexp.MustCompile(`^\d{6}$`)
)

// CardNumber проверяет номер карты: 16 цифр, допускаются пробелы между группами по 4
// Используется формой оплаты
func CardNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return newError(FieldCardNumber, ErrRequired, "номер карты обязателен")
	}
	if !cardNumberRe.MatchString(s) {
		return newError(FieldCardNumber, ErrFormat, "номер карты должен содержать 16 цифр")
	}
	return nil
}

// CardExpiry проверяет срок действия в формате MM/YY
// Карта действительна до конца указанного месяца. Используется формой оплаты
func CardExpiry(s string, now time.Time) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return newError(FieldCardExpiry, ErrRequired, "срок действия карты обязателен")
	}

	m := cardExpiryRe.FindStringSubmatch(s)
	if m == nil {
		return newError(FieldCardExpiry, ErrFormat, "срок действия должен быть в формате MM/YY")
	}

	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return newError(FieldCardExpiry, ErrOutOfRange, "некорректный месяц")
	}

	year += 2000
	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return newError(FieldCardExpiry, ErrExpired, "срок действия карты истёк")
	}
	return nil
}

// CVV проверяет код безопасности формы оплаты: ровно 3 цифры
func CVV(s string) error {
	if s == "" {
		return newError(FieldCVV, ErrRequired, "CVV обязателен")
	}
	if !cvvRe.MatchString(s) {
		return newError(FieldCVV, ErrFormat, "CVV должен содержать 3 цифры")
	}
	return nil
}

// Passport проверяет серию (4 цифры) и номер (6 цифр) паспорта в форме данных гостя
func Passport(series, number string) error {
	series = strings.TrimSpace(series)
	number = strings.TrimSpace(number)

	switch {
	case series == "":
		return newError(FieldPassportSeries, ErrRequired, "серия паспорта обязательна")
	case !passportSeriesRe.MatchString(series):
		return newError(FieldPassportSeries, ErrFormat, "серия паспорта должна содержать 4 цифры")
	case number == "":
		return newError(FieldPassportNumber, ErrRequired, "номер паспорта обязателен")
	case !passportNumberRe.MatchString(number):
		return newError(FieldPassportNumber, ErrFormat, "номер паспорта должен содержать 6 цифр")
	}
	return nil
}

// StayRange проверяет период проживания: заезд не раньше today, выезд строго после заезда
// Сравниваются только даты. Используется формой нового бронирования
func StayRange(checkIn, checkOut, today time.Time) error {
	if checkIn.IsZero() {
		return newError(FieldCheckInDate, ErrRequired, "дата заезда обязательна")
	}
	if checkOut.IsZero() {
		return newError(FieldCheckOutDate, ErrRequired, "дата выезда обязательна")
	}

	in, out, day := dateOnly(checkIn), dateOnly(checkOut), dateOnly(today)
	if in.Before(day) {
		return newError(FieldCheckInDate, ErrOutOfRange, "дата заезда не может быть в прошлом")
	}
	if !out.After(in) {
		return newError(FieldCheckOutDate, ErrDateOrder, "дата выезда должна быть позже даты заезда")
	}
	return nil
}

// StayOrder проверяет только порядок дат (для уже существующих бронирований)
func StayOrder(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return nil
	}
	if !dateOnly(checkOut).After(dateOnly(checkIn)) {
		return newError(FieldCheckOutDate, ErrDateOrder, "дата выезда должна быть позже даты заезда")
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
