package hotelapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/domain"
)

// Маршруты backend (для логов и метрик)
const (
	routeGuestBookings  = "/room-bookings/{guestId}/guest"
	routeConfirmBooking = "/room-bookings/{id}/confirm"
	routeDeleteBooking  = "/room-bookings/{id}"
)

// maxErrorBody ограничение на размер тела ошибки в сообщении
const maxErrorBody = 512

// TokenProvider источник bearer токена; пустая строка означает запрос без авторизации
type TokenProvider interface {
	Token() string
}

// RequestObserver получает данные о каждом запросе к backend
type RequestObserver interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с backend гостиницы
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
	location   *time.Location
	observer   RequestObserver
	log        Logger
}

// NewClient создает новый экземпляр клиента backend
func NewClient(baseURL string, timeout time.Duration, tokens TokenProvider, loc *time.Location, log Logger) *Client {
	if loc == nil {
		loc = time.Local
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens:   tokens,
		location: loc,
		log:      log,
	}
}

// WithObserver подключает сбор метрик запросов
func (c *Client) WithObserver(observer RequestObserver) *Client {
	c.observer = observer
	return c
}

// GetGuestBookings получает бронирования номеров гостя
func (c *Client) GetGuestBookings(ctx context.Context, guestID int64) ([]domain.RoomBookingView, error) {
	url := fmt.Sprintf("%s/room-bookings/%d/guest", c.baseURL, guestID)

	resp, err := c.do(ctx, http.MethodGet, url, routeGuestBookings)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var bookings []RoomBooking
	if err := json.NewDecoder(resp.Body).Decode(&bookings); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	result := make([]domain.RoomBookingView, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, b.ToDomain(c.location))
	}

	return result, nil
}

// ConfirmBooking подтверждает бронирование и возвращает изменённые поля
func (c *Client) ConfirmBooking(ctx context.Context, bookingID int64) (*domain.RoomBookingPatch, error) {
	url := fmt.Sprintf("%s/room-bookings/%d/confirm", c.baseURL, bookingID)

	resp, err := c.do(ctx, http.MethodPatch, url, routeConfirmBooking)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	// Пустое тело: сервер подтвердил без возврата полей
	var patch RoomBookingPatch
	if len(strings.TrimSpace(string(body))) > 0 {
		if err := json.Unmarshal(body, &patch); err != nil {
			return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
	}

	result := patch.ToDomain(c.location)
	if result.IsConfirmed == nil {
		confirmed := true
		result.IsConfirmed = &confirmed
	}

	return &result, nil
}

// DeleteBooking удаляет (отменяет) бронирование
func (c *Client) DeleteBooking(ctx context.Context, bookingID int64) error {
	url := fmt.Sprintf("%s/room-bookings/%d", c.baseURL, bookingID)

	resp, err := c.do(ctx, http.MethodDelete, url, routeDeleteBooking)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) do(ctx context.Context, method, url, route string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.observe(method, route, 0, duration)
		c.log.Warn("%s %s failed: request_id=%s, error=%v", method, route, requestID, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	c.observe(method, route, resp.StatusCode, duration)
	c.log.Info("%s %s -> %d in %s (request_id=%s)", method, route, resp.StatusCode, duration.Round(time.Millisecond), requestID)

	return resp, nil
}

func (c *Client) observe(method, route string, status int, duration time.Duration) {
	if c.observer != nil {
		c.observer.ObserveRequest(method, route, status, duration)
	}
}

// checkStatus обработка статус-кодов: любой 2xx успешен
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	message := errorMessage(body)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: status %d: %s", ErrUnauthorized, resp.StatusCode, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrBookingNotFound, message)
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, message)
	}
}

// errorMessage извлекает message из JSON ошибки, иначе возвращает тело как есть
func errorMessage(body []byte) string {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return strings.TrimSpace(string(body))
}
