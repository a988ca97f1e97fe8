package auth

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/infra/tokenstore"
)

type nopLogger struct{ l *log.Logger }

func newNopLogger() *nopLogger { return &nopLogger{l: log.New(io.Discard, "", 0)} }

func (n *nopLogger) Info(format string, v ...interface{})  { n.l.Printf(format, v...) }
func (n *nopLogger) Warn(format string, v ...interface{})  { n.l.Printf(format, v...) }
func (n *nopLogger) Error(format string, v ...interface{}) { n.l.Printf(format, v...) }

type stubStore struct {
	token string
	err   error
	calls int
}

func (s *stubStore) Get(context.Context) (string, error) {
	s.calls++
	return s.token, s.err
}

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func signed(t *testing.T, claims jwt.MapClaims, key string) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func newProvider(store TokenStore, opts Options) *Provider {
	p := NewProvider(store, opts, newNopLogger())
	p.nowFunc = func() time.Time { return now }
	return p
}

func TestLoad_DecodesOnceAndCaches(t *testing.T) {
	store := &stubStore{token: signed(t, jwt.MapClaims{
		"clientId": 42,
		"role":     "Guest",
		"exp":      now.Add(time.Hour).Unix(),
	}, "any")}
	p := newProvider(store, Options{})

	session, err := p.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), session.GuestID)
	assert.Equal(t, "Guest", session.Role)
	require.NotNil(t, session.ExpiresAt)
	assert.Equal(t, now.Add(time.Hour).Unix(), session.ExpiresAt.Unix())
	assert.Equal(t, store.token, session.Token())

	again, err := p.Load(context.Background())
	require.NoError(t, err)
	assert.Same(t, session, again)
	assert.Equal(t, 1, store.calls)

	cached, err := p.Session()
	require.NoError(t, err)
	assert.Same(t, session, cached)
	assert.Equal(t, store.token, p.Token())
}

func TestSession_NotLoaded(t *testing.T) {
	p := newProvider(&stubStore{}, Options{})

	_, err := p.Session()
	assert.ErrorIs(t, err, ErrNotLoaded)
	assert.Empty(t, p.Token())
}

func TestLoad_StoreErrors(t *testing.T) {
	p := newProvider(&stubStore{err: tokenstore.ErrTokenNotFound}, Options{})
	_, err := p.Load(context.Background())
	assert.ErrorIs(t, err, ErrTokenNotFound)

	p = newProvider(&stubStore{err: errors.New("disk failure")}, Options{})
	_, err = p.Load(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestDecode_CustomClaimsAndStringID(t *testing.T) {
	p := newProvider(&stubStore{}, Options{IDClaim: "guestId", RoleClaim: "r"})

	session, err := p.Decode(signed(t, jwt.MapClaims{"guestId": "17", "r": "Employee"}, "k"))
	require.NoError(t, err)
	assert.Equal(t, int64(17), session.GuestID)
	assert.Equal(t, "Employee", session.Role)
	assert.Nil(t, session.ExpiresAt)
}

func TestDecode_Errors(t *testing.T) {
	p := newProvider(&stubStore{}, Options{})

	_, err := p.Decode("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = p.Decode(signed(t, jwt.MapClaims{"role": "Guest"}, "k"))
	assert.ErrorIs(t, err, ErrMissingClaim)

	_, err = p.Decode(signed(t, jwt.MapClaims{"clientId": "abc"}, "k"))
	assert.ErrorIs(t, err, ErrMissingClaim)

	_, err = p.Decode(signed(t, jwt.MapClaims{"clientId": true}, "k"))
	assert.ErrorIs(t, err, ErrMissingClaim)

	_, err = p.Decode(signed(t, jwt.MapClaims{"clientId": 12.7, "exp": now.Add(time.Hour).Unix()}, "k"))
	assert.ErrorIs(t, err, ErrMissingClaim)

	_, err = p.Decode(signed(t, jwt.MapClaims{"clientId": 1, "exp": now.Add(-time.Minute).Unix()}, "k"))
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestDecode_VerifiesSignatureWhenKeyConfigured(t *testing.T) {
	p := newProvider(&stubStore{}, Options{SigningKey: "secret"})

	session, err := p.Decode(signed(t, jwt.MapClaims{"clientId": 5}, "secret"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), session.GuestID)

	_, err = p.Decode(signed(t, jwt.MapClaims{"clientId": 5}, "other"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}
