//go:build unit

package queries

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ref(itemID uuid.UUID, start time.Time, d time.Duration, status booking.Status) BookingRef {
	return BookingRef{
		ID:       uuid.New(),
		ItemID:   itemID,
		BookerID: uuid.New(),
		Start:    start,
		End:      start.Add(d),
		Status:   status,
	}
}

func TestLastBooking(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	itemID := uuid.New()

	t.Run("latest past start wins", func(t *testing.T) {
		older := ref(itemID, now.Add(-3*time.Hour), time.Hour, booking.StatusApproved)
		newer := ref(itemID, now.Add(-1*time.Hour), time.Hour, booking.StatusApproved)

		got := LastBooking([]BookingRef{older, newer}, now)
		require.NotNil(t, got)

		want := &NearestBooking{ID: newer.ID, BookerID: newer.BookerID, Start: newer.Start, End: newer.End}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("LastBooking mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("declined candidate hides the slot instead of falling back", func(t *testing.T) {
		approved := ref(itemID, now.Add(-3*time.Hour), time.Hour, booking.StatusApproved)
		rejected := ref(itemID, now.Add(-1*time.Hour), time.Hour, booking.StatusRejected)

		assert.Nil(t, LastBooking([]BookingRef{approved, rejected}, now))
	})

	t.Run("canceled candidate also hides the slot", func(t *testing.T) {
		canceled := ref(itemID, now.Add(-1*time.Hour), time.Hour, booking.StatusCanceled)
		assert.Nil(t, LastBooking([]BookingRef{canceled}, now))
	})

	t.Run("waiting bookings count", func(t *testing.T) {
		waiting := ref(itemID, now.Add(-1*time.Hour), time.Hour, booking.StatusWaiting)
		got := LastBooking([]BookingRef{waiting}, now)
		require.NotNil(t, got)
		assert.Equal(t, waiting.ID, got.ID)
	})

	t.Run("booking starting exactly at now is excluded", func(t *testing.T) {
		boundary := ref(itemID, now, time.Hour, booking.StatusApproved)
		assert.Nil(t, LastBooking([]BookingRef{boundary}, now))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, LastBooking(nil, now))
	})
}

func TestNextBooking(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	itemID := uuid.New()

	t.Run("earliest future start wins", func(t *testing.T) {
		near := ref(itemID, now.Add(time.Hour), time.Hour, booking.StatusWaiting)
		far := ref(itemID, now.Add(3*time.Hour), time.Hour, booking.StatusApproved)

		got := NextBooking([]BookingRef{far, near}, now)
		require.NotNil(t, got)

		want := &NearestBooking{ID: near.ID, BookerID: near.BookerID, Start: near.Start, End: near.End}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("NextBooking mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("declined candidate hides the slot instead of falling back", func(t *testing.T) {
		rejected := ref(itemID, now.Add(time.Hour), time.Hour, booking.StatusRejected)
		approved := ref(itemID, now.Add(3*time.Hour), time.Hour, booking.StatusApproved)

		assert.Nil(t, NextBooking([]BookingRef{rejected, approved}, now))
	})

	t.Run("booking starting exactly at now is excluded", func(t *testing.T) {
		boundary := ref(itemID, now, time.Hour, booking.StatusApproved)
		assert.Nil(t, NextBooking([]BookingRef{boundary}, now))
	})

	t.Run("past bookings are ignored", func(t *testing.T) {
		past := ref(itemID, now.Add(-time.Hour), time.Hour, booking.StatusApproved)
		assert.Nil(t, NextBooking([]BookingRef{past}, now))
	})
}

func TestGroupByItem(t *testing.T) {
	now := time.Now()
	itemA := uuid.New()
	itemB := uuid.New()

	refs := []BookingRef{
		ref(itemA, now, time.Hour, booking.StatusApproved),
		ref(itemB, now, time.Hour, booking.StatusWaiting),
		ref(itemA, now.Add(2*time.Hour), time.Hour, booking.StatusApproved),
	}

	grouped := groupByItem(refs)
	assert.Len(t, grouped, 2)
	assert.Len(t, grouped[itemA], 2)
	assert.Len(t, grouped[itemB], 1)
}

func TestPageFor(t *testing.T) {
	testCases := []struct {
		name  string
		from  int
		size  int
		page  int
		errIs error
	}{
		{name: "first page", from: 0, size: 10, page: 0},
		{name: "exact page boundary", from: 20, size: 10, page: 2},
		{name: "offset inside a page truncates", from: 7, size: 5, page: 1},
		{name: "negative from", from: -1, size: 10, errIs: errs.ErrInvalidPagination},
		{name: "zero size", from: 0, size: 0, errIs: errs.ErrInvalidPagination},
		{name: "negative size", from: 0, size: -5, errIs: errs.ErrInvalidPagination},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			page, err := pageFor(tc.from, tc.size)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.page, page)
		})
	}
}
