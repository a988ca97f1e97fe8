package domain

import "time"

// Параметры жизненного цикла бронирования
const (
	// ConfirmationWindow окно подтверждения с момента создания
	ConfirmationWindow = 15 * time.Minute

	// DefaultPollInterval интервал обновления списка бронирований
	DefaultPollInterval = 15 * time.Second

	// DefaultTickInterval интервал пересчёта обратного отсчёта
	DefaultTickInterval = time.Second
)

// ExpiredSentinel значение обратного отсчёта после истечения окна подтверждения
const ExpiredSentinel = "Время истекло"

// Форматы дат и времени backend
const (
	DateFormat      = "2006-01-02"          // YYYY-MM-DD
	TimeFormat      = "15:04:05"            // HH:MM:SS
	ShortTimeFormat = "15:04"               // HH:MM
	LocalDateTime   = "2006-01-02T15:04:05" // без часового пояса
)

// AllStates все состояния (для метрик)
var AllStates = []BookingState{
	StatePending,
	StateConfirmedUnpaid,
	StatePaid,
	StateExpired,
}
