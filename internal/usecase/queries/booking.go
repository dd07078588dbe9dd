package queries

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	// GetByID is the authorized lookup: only the booker or the item owner
	// may see the booking.
	GetByID(ctx context.Context, bookingID, actorID uuid.UUID) (*BookingView, error)
	// GetByIDSystem skips authorization; commands use it to read back what
	// they just wrote.
	GetByIDSystem(ctx context.Context, bookingID uuid.UUID) (*BookingView, error)
	ListForBooker(ctx context.Context, bookerID uuid.UUID, state string, from, size int) ([]BookingView, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, state string, from, size int) ([]BookingView, error)
	// CanComment reports whether userID has at least one approved booking
	// of itemID that already ended.
	CanComment(ctx context.Context, itemID, userID uuid.UUID) (bool, error)
}

type bookingQueries struct {
	store BookingReadStore
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueries{store: store, clock: clk}
}

func (q *bookingQueries) GetByID(ctx context.Context, bookingID, actorID uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.CanView(view.Item.OwnerID, view.Booker.ID, actorID) {
		return nil, errs.Mark(errs.New("booking is hidden from this user"), errs.ErrForbidden)
	}
	return view, nil
}

func (q *bookingQueries) GetByIDSystem(ctx context.Context, bookingID uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueries) ListForBooker(ctx context.Context, bookerID uuid.UUID, state string, from, size int) ([]BookingView, error) {
	bucket, page, err := q.parseWindow(state, from, size)
	if err != nil {
		return nil, err
	}
	return q.store.ListForBooker(ctx, bookerID, bucket, q.clock.Now(), page, size)
}

func (q *bookingQueries) ListForOwner(ctx context.Context, ownerID uuid.UUID, state string, from, size int) ([]BookingView, error) {
	bucket, page, err := q.parseWindow(state, from, size)
	if err != nil {
		return nil, err
	}
	return q.store.ListForOwner(ctx, ownerID, bucket, q.clock.Now(), page, size)
}

func (q *bookingQueries) CanComment(ctx context.Context, itemID, userID uuid.UUID) (bool, error) {
	return q.store.HasFinishedApprovedBooking(ctx, itemID, userID, q.clock.Now())
}

// parseWindow resolves the pagination window and the state token together
// so both list endpoints fail the same way. Pagination errors win over
// bucket errors.
func (q *bookingQueries) parseWindow(state string, from, size int) (booking.Bucket, int, error) {
	page, err := pageFor(from, size)
	if err != nil {
		return "", 0, err
	}
	bucket, err := booking.ParseBucket(state)
	if err != nil {
		return "", 0, err
	}
	return bucket, page, nil
}
