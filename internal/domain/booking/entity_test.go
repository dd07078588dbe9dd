//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/errs"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.ItemID, actual.ItemID())
		assert.Equal(t, b.BookerID, actual.BookerID())
		assert.Equal(t, booking.StatusWaiting, actual.Status())
		assert.Equal(t, b.Start, actual.Period().Start())
		assert.Equal(t, b.End, actual.Period().End())
	})

	t.Run("interval validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "end equals start",
				mutate: func(b *builder.BookingBuilder) { b.End = b.Start },
				errIs:  errs.ErrInvalidInterval,
			},
			{
				name:   "end before start",
				mutate: func(b *builder.BookingBuilder) { b.End = b.Start.Add(-time.Hour) },
				errIs:  errs.ErrInvalidInterval,
			},
			{
				name: "start in the past",
				mutate: func(b *builder.BookingBuilder) {
					b.Start = b.Now.Add(-time.Hour)
					b.End = b.Now.Add(time.Hour)
				},
				errIs: errs.ErrBackdatedBooking,
			},
			{
				name: "whole window in the past",
				mutate: func(b *builder.BookingBuilder) {
					b.Start = b.Now.Add(-3 * time.Hour)
					b.End = b.Now.Add(-time.Hour)
				},
				errIs: errs.ErrBackdatedBooking,
			},
			{
				name: "reversed window in the past reports interval first",
				mutate: func(b *builder.BookingBuilder) {
					b.Start = b.Now.Add(-time.Hour)
					b.End = b.Now.Add(-2 * time.Hour)
				},
				errIs: errs.ErrInvalidInterval,
			},
		})
	})

	t.Run("item and actor validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "unavailable item",
				mutate: func(b *builder.BookingBuilder) { b.Available = false },
				errIs:  errs.ErrItemUnavailable,
			},
			{
				name: "unavailable wins over self-booking",
				mutate: func(b *builder.BookingBuilder) {
					b.Available = false
					b.BookerID = b.OwnerID
				},
				errIs: errs.ErrItemUnavailable,
			},
			{
				name:   "owner books own item",
				mutate: func(b *builder.BookingBuilder) { b.BookerID = b.OwnerID },
				errIs:  errs.ErrSelfBooking,
			},
		})
	})
}

func TestBookingDecide(t *testing.T) {
	t.Run("approve from waiting", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildReconstructed()
		require.NoError(t, b.Decide(true))
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("reject from waiting", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildReconstructed()
		require.NoError(t, b.Decide(false))
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("second decision fails", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildReconstructed()
		require.NoError(t, b.Decide(true))

		err := b.Decide(false)
		assert.ErrorIs(t, err, errs.ErrAlreadyDecided)
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("externally canceled booking refuses a decision", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		bb.Status = booking.StatusCanceled
		b := bb.BuildReconstructed()

		assert.ErrorIs(t, b.Decide(true), errs.ErrAlreadyDecided)
		assert.Equal(t, booking.StatusCanceled, b.Status())
	})
}

func TestAuthorization(t *testing.T) {
	owner := uuid.New()
	booker := uuid.New()
	stranger := uuid.New()

	assert.True(t, booking.CanCreate(owner, booker))
	assert.False(t, booking.CanCreate(owner, owner))

	assert.True(t, booking.CanDecide(owner, owner))
	assert.False(t, booking.CanDecide(owner, booker))

	assert.True(t, booking.CanView(owner, booker, owner))
	assert.True(t, booking.CanView(owner, booker, booker))
	assert.False(t, booking.CanView(owner, booker, stranger))
}

func TestParseBucket(t *testing.T) {
	valid := map[string]booking.Bucket{
		"ALL":      booking.BucketAll,
		"all":      booking.BucketAll,
		"Current":  booking.BucketCurrent,
		"PAST":     booking.BucketPast,
		"future":   booking.BucketFuture,
		"WAITING":  booking.BucketWaiting,
		"rejected": booking.BucketRejected,
	}
	for token, expected := range valid {
		actual, err := booking.ParseBucket(token)
		require.NoError(t, err, token)
		assert.Equal(t, expected, actual)
	}

	_, err := booking.ParseBucket("BOGUS")
	assert.ErrorIs(t, err, errs.ErrUnknownBucket)

	// APPROVED and CANCELED are statuses, not buckets
	_, err = booking.ParseBucket("APPROVED")
	assert.ErrorIs(t, err, errs.ErrUnknownBucket)
}

func TestStatus(t *testing.T) {
	assert.True(t, booking.StatusRejected.IsDeclined())
	assert.True(t, booking.StatusCanceled.IsDeclined())
	assert.False(t, booking.StatusWaiting.IsDeclined())
	assert.False(t, booking.StatusApproved.IsDeclined())

	assert.True(t, booking.StatusCanceled.IsValid())
	assert.False(t, booking.Status("UNKNOWN").IsValid())
}
