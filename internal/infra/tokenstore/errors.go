package tokenstore

import "errors"

var (
	// ErrTokenNotFound возвращается, когда токен не сохранён
	ErrTokenNotFound = errors.New("tokenstore: token not found")

	// ErrStorage возвращается при ошибках чтения/записи хранилища
	ErrStorage = errors.New("tokenstore: storage error")
)
