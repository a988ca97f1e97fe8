package auth

import "errors"

var (
	// ErrTokenNotFound возвращается, когда сохранённого токена нет (пользователь не вошёл)
	ErrTokenNotFound = errors.New("auth: token not found")

	// ErrInvalidToken возвращается для некорректного токена или неверной подписи
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrMissingClaim возвращается, когда в токене нет идентификатора гостя
	ErrMissingClaim = errors.New("auth: required claim is missing")

	// ErrTokenExpired возвращается для просроченного токена
	ErrTokenExpired = errors.New("auth: token expired")

	// ErrNotLoaded возвращается, если сессия ещё не загружена
	ErrNotLoaded = errors.New("auth: session is not loaded")

	// ErrInternal возвращается при ошибках хранилища токена
	ErrInternal = errors.New("auth: internal error")
)
