package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

var base = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestIsCancellable(t *testing.T) {
	deadline := base.Add(time.Hour)

	tests := []struct {
		name    string
		booking RoomBookingView
		now     time.Time
		want    bool
	}{
		{
			name:    "before deadline, not confirmed",
			booking: RoomBookingView{CancelUntil: &deadline},
			now:     base,
			want:    true,
		},
		{
			name:    "exactly at deadline",
			booking: RoomBookingView{CancelUntil: &deadline},
			now:     deadline,
			want:    false,
		},
		{
			name:    "after deadline",
			booking: RoomBookingView{CancelUntil: &deadline},
			now:     deadline.Add(time.Second),
			want:    false,
		},
		{
			name:    "confirmed before deadline",
			booking: RoomBookingView{CancelUntil: &deadline, IsConfirmed: true},
			now:     base,
			want:    false,
		},
		{
			name:    "no deadline",
			booking: RoomBookingView{},
			now:     base,
			want:    false,
		},
		{
			name:    "paid but not confirmed, before deadline",
			booking: RoomBookingView{CancelUntil: &deadline, IsPayd: true},
			now:     base,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCancellable(tt.booking, tt.now))
			assert.Equal(t, tt.want, tt.booking.IsCancellable(tt.now))
		})
	}
}

func TestIsCancellable_ConfirmedNeverCancellable(t *testing.T) {
	far := base.AddDate(1, 0, 0)
	b := RoomBookingView{CancelUntil: &far, IsConfirmed: true}

	for _, now := range []time.Time{base.AddDate(-1, 0, 0), base, far.Add(-time.Nanosecond)} {
		assert.False(t, IsCancellable(b, now))
	}
}

func TestStateOf(t *testing.T) {
	created := base

	assert.Equal(t, StatePaid, StateOf(RoomBookingView{IsPayd: true, IsConfirmed: true}, base))
	assert.Equal(t, StatePaid, StateOf(RoomBookingView{IsPayd: true}, base))
	assert.Equal(t, StateConfirmedUnpaid, StateOf(RoomBookingView{IsConfirmed: true, CreatedAt: &created}, base.Add(time.Hour)))
	assert.Equal(t, StatePending, StateOf(RoomBookingView{CreatedAt: &created}, base.Add(14*time.Minute)))
	assert.Equal(t, StateExpired, StateOf(RoomBookingView{CreatedAt: &created}, base.Add(ConfirmationWindow)))
	assert.Equal(t, StatePending, StateOf(RoomBookingView{}, base.Add(time.Hour)))
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "15:00", FormatCountdown(15*time.Minute))
	assert.Equal(t, "14:59", FormatCountdown(14*time.Minute+59*time.Second))
	assert.Equal(t, "00:01", FormatCountdown(500*time.Millisecond))
	assert.Equal(t, "01:05", FormatCountdown(64*time.Second+time.Millisecond))
	assert.Equal(t, ExpiredSentinel, FormatCountdown(0))
	assert.Equal(t, ExpiredSentinel, FormatCountdown(-time.Minute))
}

func TestTimeLeft(t *testing.T) {
	created := base

	pending := RoomBookingView{CreatedAt: &created}
	left, ok := pending.TimeLeft(base.Add(time.Minute))
	assert.True(t, ok)
	assert.Equal(t, "14:00", left)

	left, ok = pending.TimeLeft(base.Add(15*time.Minute + time.Second))
	assert.True(t, ok)
	assert.Equal(t, ExpiredSentinel, left)

	confirmed := RoomBookingView{CreatedAt: &created, IsConfirmed: true}
	_, ok = confirmed.TimeLeft(base)
	assert.False(t, ok)

	noCreatedAt := RoomBookingView{}
	_, ok = noCreatedAt.TimeLeft(base)
	assert.False(t, ok)
}

func TestApply_MergesOnlyPresentFields(t *testing.T) {
	created := base
	original := RoomBookingView{
		ID:             7,
		RoomNumber:     101,
		UnitPrice:      3500,
		NumberOfGuests: 2,
		CreatedAt:      &created,
	}

	deadline := base.Add(24 * time.Hour)
	updated := original.Apply(RoomBookingPatch{
		IsConfirmed: ptr(true),
		UnitPrice:   ptr(3000.0),
		CancelUntil: &deadline,
	})

	assert.True(t, updated.IsConfirmed)
	assert.Equal(t, 3000.0, updated.UnitPrice)
	assert.Equal(t, 101, updated.RoomNumber)
	assert.Equal(t, 2, updated.NumberOfGuests)
	assert.Equal(t, deadline, *updated.CancelUntil)

	// Исходная запись не меняется
	assert.False(t, original.IsConfirmed)
	assert.Equal(t, 3500.0, original.UnitPrice)
}
