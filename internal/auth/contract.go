package auth

import "context"

// TokenStore хранилище сохранённого на клиенте токена
type TokenStore interface {
	Get(ctx context.Context) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
