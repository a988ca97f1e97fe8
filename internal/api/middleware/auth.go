package middleware

import (
	"context"
	"net/http"

	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/api/handlers"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/auth"
)

type contextKey string

const guestIDKey contextKey = "guest_id"

const msgUnauthorized = "сессия не найдена, войдите заново"

// SessionProvider источник текущей сессии гостя
type SessionProvider interface {
	Session() (*auth.Session, error)
}

// Auth кладёт ID гостя из загруженной сессии в контекст запроса
func Auth(sessions SessionProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := sessions.Session()
			if err != nil || session == nil {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), guestIDKey, session.GuestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetGuestID извлекает ID гостя из контекста
func GetGuestID(ctx context.Context) (int64, bool) {
	guestID, ok := ctx.Value(guestIDKey).(int64)
	return guestID, ok
}

// WithGuestID возвращает контекст с ID гостя
func WithGuestID(ctx context.Context, guestID int64) context.Context {
	return context.WithValue(ctx, guestIDKey, guestID)
}
