package auth

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/infra/tokenstore"
)

// Options настройки разбора токена
type Options struct {
	IDClaim    string // claim с идентификатором гостя/клиента
	RoleClaim  string // claim с ролью
	SigningKey string // если задан, подпись HMAC проверяется
}

// Session декодированный контекст аутентификации
type Session struct {
	token     string
	GuestID   int64
	Role      string
	ExpiresAt *time.Time
}

// Token исходный токен для заголовка Authorization
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	return s.token
}

// Provider читает токен из хранилища один раз и отдаёт декодированную сессию
type Provider struct {
	store   TokenStore
	opts    Options
	nowFunc func() time.Time
	logger  Logger

	mu      sync.RWMutex
	session *Session
}

// NewProvider создает провайдер сессии
func NewProvider(store TokenStore, opts Options, logger Logger) *Provider {
	if opts.IDClaim == "" {
		opts.IDClaim = "clientId"
	}
	if opts.RoleClaim == "" {
		opts.RoleClaim = "role"
	}

	return &Provider{
		store:   store,
		opts:    opts,
		nowFunc: time.Now,
		logger:  logger,
	}
}

// Load читает и декодирует токен; повторные вызовы возвращают закешированную сессию
func (p *Provider) Load(ctx context.Context) (*Session, error) {
	p.mu.RLock()
	cached := p.session
	p.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	raw, err := p.store.Get(ctx)
	if err != nil {
		if errors.Is(err, tokenstore.ErrTokenNotFound) {
			p.logger.Warn("Load: no persisted token")
			return nil, ErrTokenNotFound
		}
		p.logger.Error("Load: token store error: %v", err)
		return nil, fmt.Errorf("%w: read token: %v", ErrInternal, err)
	}

	session, err := p.Decode(raw)
	if err != nil {
		p.logger.Warn("Load: failed to decode token: %v", err)
		return nil, err
	}

	p.mu.Lock()
	p.session = session
	p.mu.Unlock()

	p.logger.Info("Load: session loaded for guest=%d, role=%s", session.GuestID, session.Role)
	return session, nil
}

// Session возвращает загруженную сессию
func (p *Provider) Session() (*Session, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.session == nil {
		return nil, ErrNotLoaded
	}
	return p.session, nil
}

// Token токен загруженной сессии или пустая строка
func (p *Provider) Token() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.session.Token()
}

// Decode разбирает токен без обращения к хранилищу
// Без SigningKey подпись не проверяется
func (p *Provider) Decode(raw string) (*Session, error) {
	claims := jwt.MapClaims{}

	if p.opts.SigningKey != "" {
		parser := jwt.NewParser(jwt.WithValidMethods([]string{
			jwt.SigningMethodHS256.Alg(),
			jwt.SigningMethodHS384.Alg(),
			jwt.SigningMethodHS512.Alg(),
		}), jwt.WithoutClaimsValidation())

		token, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(p.opts.SigningKey), nil
		})
		if err != nil || !token.Valid {
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
	} else {
		if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
	}

	session := &Session{token: raw}

	if exp, ok := claims["exp"]; ok {
		expiresAt, err := numericTime(exp)
		if err != nil {
			return nil, fmt.Errorf("%w: exp: %v", ErrInvalidToken, err)
		}
		if !p.nowFunc().Before(expiresAt) {
			return nil, ErrTokenExpired
		}
		session.ExpiresAt = &expiresAt
	}

	guestID, err := claimInt64(claims, p.opts.IDClaim)
	if err != nil {
		return nil, err
	}
	session.GuestID = guestID

	if role, ok := claims[p.opts.RoleClaim].(string); ok {
		session.Role = role
	}

	return session, nil
}

func claimInt64(claims jwt.MapClaims, name string) (int64, error) {
	value, ok := claims[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingClaim, name)
	}

	switch v := value.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %s is not an integer", ErrMissingClaim, name)
		}
		return int64(v), nil
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s is not numeric", ErrMissingClaim, name)
		}
		return id, nil
	default:
		return 0, fmt.Errorf("%w: %s has unexpected type %T", ErrMissingClaim, name, value)
	}
}

func numericTime(value interface{}) (time.Time, error) {
	switch v := value.(type) {
	case float64:
		return time.Unix(int64(v), 0), nil
	case string:
		sec, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return time.Time{}, err
		}
		return time.Unix(sec, 0), nil
	default:
		return time.Time{}, fmt.Errorf("unexpected type %T", value)
	}
}
