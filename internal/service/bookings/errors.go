package bookings

import "errors"

var (
	// ErrFetch возвращается, когда не удалось загрузить список бронирований
	ErrFetch = errors.New("bookings: failed to load bookings")

	// ErrConfirm возвращается, когда не удалось подтвердить бронирование
	ErrConfirm = errors.New("bookings: failed to confirm booking")

	// ErrCancel возвращается, когда не удалось отменить бронирование
	ErrCancel = errors.New("bookings: failed to cancel booking")

	// ErrNotCancellable возвращается, когда дедлайн отмены прошёл или бронирование подтверждено
	ErrNotCancellable = errors.New("bookings: booking cannot be cancelled")

	// ErrAlreadyStarted возвращается при повторном запуске таймера
	ErrAlreadyStarted = errors.New("bookings: timer already started")

	// ErrStopped возвращается после остановки трекера
	ErrStopped = errors.New("bookings: tracker stopped")
)

// Сообщения, показываемые пользователю
const (
	MsgFetchFailed   = "не удалось загрузить список бронирований"
	MsgConfirmFailed = "не удалось подтвердить бронирование"
	MsgCancelFailed  = "не удалось отменить бронирование"
)
