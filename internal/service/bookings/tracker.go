package bookings

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/domain"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/service/bookings/models"
	"github.com/WhatKindOfPhrasesDoYouUse/HotelFrontend-sub000/internal/validation"
)

// Результаты для метрик
const (
	resultSuccess = "success"
	resultError   = "error"
	resultStale   = "stale"
	resultAborted = "aborted"

	actionConfirm = "confirm"
	actionCancel  = "cancel"
)

// Tracker отслеживает бронирования гостя: обратный отсчёт окна подтверждения,
// возможность отмены и периодическое обновление списка с backend
//
// Сервер авторитетен: переходы состояний происходят только по его ответам,
// обратный отсчёт носит информационный характер
type Tracker struct {
	api      HotelAPIClient
	clock    TimeProvider
	notifier Notifier
	metrics  Metrics
	logger   Logger

	mu        sync.RWMutex
	bookings  []domain.RoomBookingView
	timeLeft  map[int64]string
	lastError string
	loadedAt  *time.Time

	// Согласование ответов опроса с локальными изменениями:
	// каждая загрузка и каждое локальное изменение получают номер из seq
	seq         uint64
	appliedLoad uint64
	touched     map[int64]uint64 // bookingID -> номер последнего подтверждения
	removed     map[int64]uint64 // bookingID -> номер отмены

	lifecycleMu sync.Mutex
	cancels     []context.CancelFunc
	polling     bool
	counting    bool
	stopped     atomic.Bool
	wg          sync.WaitGroup
}

// NewTracker создает трекер; clock и metrics могут быть nil
func NewTracker(
	api HotelAPIClient,
	clock TimeProvider,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *Tracker {
	if clock == nil {
		clock = &RealTimeProvider{}
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &Tracker{
		api:      api,
		clock:    clock,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
		timeLeft: make(map[int64]string),
		touched:  make(map[int64]uint64),
		removed:  make(map[int64]uint64),
	}
}

// LoadBookings загружает бронирования гостя и заменяет отслеживаемую коллекцию
// При ошибке предыдущая коллекция сохраняется, а ошибка показывается пользователю
func (t *Tracker) LoadBookings(ctx context.Context, guestID int64) ([]domain.RoomBookingView, error) {
	if t.stopped.Load() {
		return nil, ErrStopped
	}

	t.mu.Lock()
	t.seq++
	startSeq := t.seq
	t.mu.Unlock()

	t.logger.Info("LoadBookings: fetching bookings for guest=%d", guestID)

	bookings, err := t.api.GetGuestBookings(ctx, guestID)

	// После остановки состояние не меняем
	if ctx.Err() != nil || t.stopped.Load() {
		t.metrics.ObservePoll(resultAborted)
		t.logger.Info("LoadBookings: request for guest=%d aborted", guestID)
		return nil, fmt.Errorf("%w: guest=%d: request aborted", ErrFetch, guestID)
	}

	if err != nil {
		t.logger.Error("LoadBookings: failed to fetch bookings for guest=%d: %v", guestID, err)

		t.mu.Lock()
		defer t.mu.Unlock()

		switch {
		case t.stopped.Load():
			return nil, ErrStopped
		case startSeq < t.appliedLoad:
			// Ошибку устаревшего запроса поверх свежих данных не показываем
			t.metrics.ObservePoll(resultStale)
		default:
			t.metrics.ObservePoll(resultError)
			t.lastError = MsgFetchFailed
		}

		return nil, fmt.Errorf("%w: guest=%d: %v", ErrFetch, guestID, err)
	}

	for i := range bookings {
		t.checkStayWindow(&bookings[i])
	}

	now := t.clock.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped.Load() {
		return nil, ErrStopped
	}

	// Ответ запроса, начатого раньше уже применённого, устарел
	if startSeq < t.appliedLoad {
		t.metrics.ObservePoll(resultStale)
		t.logger.Warn("LoadBookings: discarding stale response for guest=%d (seq=%d, applied=%d)",
			guestID, startSeq, t.appliedLoad)
		return cloneBookings(t.bookings), nil
	}

	t.bookings = t.reconcileLocked(bookings, startSeq)
	t.appliedLoad = startSeq
	t.lastError = ""
	t.loadedAt = &now
	t.recomputeLocked(now)

	t.metrics.ObservePoll(resultSuccess)
	t.logger.Info("LoadBookings: tracking %d bookings for guest=%d", len(t.bookings), guestID)

	return cloneBookings(t.bookings), nil
}

// StartPolling сразу загружает список и далее обновляет его с интервалом interval
// Перекрывающиеся загрузки не дедуплицируются; устаревшие ответы отбрасываются
func (t *Tracker) StartPolling(ctx context.Context, guestID int64, interval time.Duration) error {
	if interval <= 0 {
		interval = domain.DefaultPollInterval
	}

	loopCtx, err := t.startLoop(ctx, &t.polling)
	if err != nil {
		return err
	}

	t.wg.Add(1)
	go t.pollLoop(loopCtx, guestID, interval)
	return nil
}

// StartCountdown пересчитывает обратный отсчёт с интервалом interval
func (t *Tracker) StartCountdown(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = domain.DefaultTickInterval
	}

	loopCtx, err := t.startLoop(ctx, &t.counting)
	if err != nil {
		return err
	}

	t.wg.Add(1)
	go t.countdownLoop(loopCtx, interval)
	return nil
}

// Stop останавливает оба таймера и дожидается завершения загрузок
// После возврата состояние трекера больше не меняется
func (t *Tracker) Stop() {
	t.lifecycleMu.Lock()
	if t.stopped.Load() {
		t.lifecycleMu.Unlock()
		return
	}
	t.stopped.Store(true)
	cancels := t.cancels
	t.cancels = nil
	t.lifecycleMu.Unlock()

	// Дожидаемся секций, уже захвативших mu до установки флага
	t.mu.Lock()
	t.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
	t.wg.Wait()

	t.logger.Info("Stop: tracker stopped")
}

// Tick пересчитывает обратный отсчёт для всех ожидающих бронирований
func (t *Tracker) Tick() {
	now := t.clock.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped.Load() {
		return
	}
	t.recomputeLocked(now)
}

// ConfirmBooking подтверждает бронирование и сливает ответ сервера с локальной записью
// При ошибке локальное состояние не меняется, пользователь получает alert
func (t *Tracker) ConfirmBooking(ctx context.Context, bookingID int64) (domain.RoomBookingView, error) {
	if t.stopped.Load() {
		return domain.RoomBookingView{}, ErrStopped
	}

	t.logger.Info("ConfirmBooking: confirming booking id=%d", bookingID)

	patch, err := t.api.ConfirmBooking(ctx, bookingID)
	if err != nil {
		t.metrics.ObserveAction(actionConfirm, resultError)
		t.logger.Error("ConfirmBooking: failed to confirm booking id=%d: %v", bookingID, err)
		t.notifier.Alert(MsgConfirmFailed)
		return domain.RoomBookingView{}, fmt.Errorf("%w: booking=%d: %v", ErrConfirm, bookingID, err)
	}

	t.metrics.ObserveAction(actionConfirm, resultSuccess)

	if patch == nil {
		patch = &domain.RoomBookingPatch{}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped.Load() {
		return domain.RoomBookingView{}, ErrStopped
	}

	idx := t.indexLocked(bookingID)
	if idx < 0 {
		t.logger.Warn("ConfirmBooking: booking id=%d confirmed but not tracked locally", bookingID)
		return domain.RoomBookingView{ID: bookingID}.Apply(*patch), nil
	}

	t.seq++
	updated := t.bookings[idx].Apply(*patch)
	t.bookings[idx] = updated
	t.touched[bookingID] = t.seq
	t.recomputeLocked(t.clock.Now())

	t.logger.Info("ConfirmBooking: successfully confirmed booking id=%d", bookingID)
	return updated, nil
}

// CancelBooking отменяет бронирование и убирает его из коллекции
// При ошибке запись остаётся на месте, чтобы пользователь мог повторить
func (t *Tracker) CancelBooking(ctx context.Context, bookingID int64) error {
	if t.stopped.Load() {
		return ErrStopped
	}

	t.logger.Info("CancelBooking: cancelling booking id=%d", bookingID)

	now := t.clock.Now()

	t.mu.RLock()
	idx := t.indexLocked(bookingID)
	cancellable := idx < 0 || t.bookings[idx].IsCancellable(now)
	t.mu.RUnlock()

	// Для неотслеживаемой записи решение принимает сервер
	if !cancellable {
		t.logger.Warn("CancelBooking: booking id=%d cannot be cancelled", bookingID)
		return ErrNotCancellable
	}

	if err := t.api.DeleteBooking(ctx, bookingID); err != nil {
		t.metrics.ObserveAction(actionCancel, resultError)
		t.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", bookingID, err)

		t.mu.Lock()
		if !t.stopped.Load() {
			t.lastError = MsgCancelFailed
		}
		t.mu.Unlock()

		return fmt.Errorf("%w: booking=%d: %v", ErrCancel, bookingID, err)
	}

	t.metrics.ObserveAction(actionCancel, resultSuccess)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped.Load() {
		return ErrStopped
	}

	t.seq++
	t.removed[bookingID] = t.seq
	delete(t.touched, bookingID)
	if idx := t.indexLocked(bookingID); idx >= 0 {
		t.bookings = append(t.bookings[:idx], t.bookings[idx+1:]...)
	}
	t.recomputeLocked(t.clock.Now())

	t.logger.Info("CancelBooking: successfully cancelled booking id=%d, state=%s", bookingID, domain.StateCancelled)
	return nil
}

// Snapshot согласованная копия состояния для отображения
func (t *Tracker) Snapshot() models.TrackerView {
	now := t.clock.Now()

	t.mu.RLock()
	defer t.mu.RUnlock()

	view := models.TrackerView{
		Bookings: make([]models.BookingView, 0, len(t.bookings)),
		Error:    t.lastError,
	}
	if t.loadedAt != nil {
		loadedAt := *t.loadedAt
		view.LoadedAt = &loadedAt
	}

	for _, b := range t.bookings {
		view.Bookings = append(view.Bookings, models.FromDomainBooking(b, t.timeLeft[b.ID], now))
	}

	return view
}

// Booking строка представления для одного бронирования
func (t *Tracker) Booking(bookingID int64) (models.BookingView, bool) {
	now := t.clock.Now()

	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := t.indexLocked(bookingID)
	if idx < 0 {
		return models.BookingView{}, false
	}

	b := t.bookings[idx]
	return models.FromDomainBooking(b, t.timeLeft[b.ID], now), true
}

// View строка представления для бронирования, не обязательно отслеживаемого
// Производные поля считаются по часам трекера
func (t *Tracker) View(b domain.RoomBookingView) models.BookingView {
	now := t.clock.Now()

	timeLeft, _ := b.TimeLeft(now)
	return models.FromDomainBooking(b, timeLeft, now)
}

// TimeLeft текущие значения обратного отсчёта
func (t *Tracker) TimeLeft() map[int64]string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make(map[int64]string, len(t.timeLeft))
	for id, v := range t.timeLeft {
		result[id] = v
	}
	return result
}

// Вспомогательные методы

func (t *Tracker) startLoop(ctx context.Context, flag *bool) (context.Context, error) {
	t.lifecycleMu.Lock()
	defer t.lifecycleMu.Unlock()

	if t.stopped.Load() {
		return nil, ErrStopped
	}
	if *flag {
		return nil, ErrAlreadyStarted
	}

	loopCtx, cancel := context.WithCancel(ctx)
	t.cancels = append(t.cancels, cancel)
	*flag = true

	return loopCtx, nil
}

func (t *Tracker) pollLoop(ctx context.Context, guestID int64, interval time.Duration) {
	defer t.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	t.logger.Info("Polling started for guest=%d every %s", guestID, interval)

	t.spawnLoad(ctx, guestID)
	for {
		select {
		case <-ctx.Done():
			t.logger.Info("Polling stopped for guest=%d", guestID)
			return
		case <-ticker.C:
			t.spawnLoad(ctx, guestID)
		}
	}
}

// spawnLoad запускает загрузку в отдельной горутине (медленный ответ не блокирует следующий тик)
func (t *Tracker) spawnLoad(ctx context.Context, guestID int64) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		// Ошибка уже залогирована и показана в снимке
		_, _ = t.LoadBookings(ctx, guestID)
	}()
}

func (t *Tracker) countdownLoop(ctx context.Context, interval time.Duration) {
	defer t.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	t.Tick()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Tick()
		}
	}
}

// reconcileLocked применяет ответ загрузки, начатой с номером startSeq:
// записи, изменённые локально после её начала, сохраняют локальную версию,
// отменённые после её начала не возвращаются
func (t *Tracker) reconcileLocked(incoming []domain.RoomBookingView, startSeq uint64) []domain.RoomBookingView {
	local := make(map[int64]domain.RoomBookingView, len(t.bookings))
	for _, b := range t.bookings {
		local[b.ID] = b
	}

	result := make([]domain.RoomBookingView, 0, len(incoming))
	for _, b := range incoming {
		if seq, ok := t.removed[b.ID]; ok && seq > startSeq {
			continue
		}
		if seq, ok := t.touched[b.ID]; ok && seq > startSeq {
			if l, ok := local[b.ID]; ok {
				b = l
			}
		}
		result = append(result, b)
	}

	// Изменения, которые этот ответ уже учитывает, больше не нужны
	for id, seq := range t.touched {
		if seq < startSeq {
			delete(t.touched, id)
		}
	}
	for id, seq := range t.removed {
		if seq < startSeq {
			delete(t.removed, id)
		}
	}

	return result
}

// recomputeLocked пересобирает timeLeft и метрики по состояниям
func (t *Tracker) recomputeLocked(now time.Time) {
	timeLeft := make(map[int64]string, len(t.bookings))
	byState := make(map[string]int, len(domain.AllStates))
	for _, state := range domain.AllStates {
		byState[string(state)] = 0
	}

	for i := range t.bookings {
		b := &t.bookings[i]
		if left, ok := b.TimeLeft(now); ok {
			timeLeft[b.ID] = left
		}
		byState[string(domain.StateOf(*b, now))]++
	}

	t.timeLeft = timeLeft
	t.metrics.SetTracked(byState)
}

func (t *Tracker) indexLocked(bookingID int64) int {
	for i := range t.bookings {
		if t.bookings[i].ID == bookingID {
			return i
		}
	}
	return -1
}

// checkStayWindow логирует бронирования с некорректным периодом проживания
func (t *Tracker) checkStayWindow(b *domain.RoomBookingView) {
	if b.CheckInDate == "" || b.CheckOutDate == "" {
		return
	}

	checkIn, errIn := time.Parse(domain.DateFormat, b.CheckInDate)
	checkOut, errOut := time.Parse(domain.DateFormat, b.CheckOutDate)
	if errIn != nil || errOut != nil {
		t.logger.Warn("LoadBookings: booking id=%d has unparsable stay dates %q..%q", b.ID, b.CheckInDate, b.CheckOutDate)
		return
	}

	if err := validation.StayOrder(checkIn, checkOut); err != nil {
		t.logger.Warn("LoadBookings: booking id=%d has inconsistent stay window: %v", b.ID, err)
	}
}

func cloneBookings(bookings []domain.RoomBookingView) []domain.RoomBookingView {
	result := make([]domain.RoomBookingView, len(bookings))
	copy(result, bookings)
	return result
}
