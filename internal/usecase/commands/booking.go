package commands

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	ItemID uuid.UUID
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, bookerID uuid.UUID, in CreateBookingInput) (*queries.BookingView, error)
	// Decide applies the owner's approval or rejection. The booking row is
	// locked for the duration so a concurrent decision loses cleanly.
	Decide(ctx context.Context, bookingID, actorID uuid.UUID, approved bool) (*queries.BookingView, error)
}

type bookingCommands struct {
	uow   shared.UnitOfWork
	views queries.BookingQueries
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, views queries.BookingQueries, clk clock.Clock) BookingCommands {
	return &bookingCommands{uow: uow, views: views, clock: clk}
}

func (c *bookingCommands) Create(ctx context.Context, bookerID uuid.UUID, in CreateBookingInput) (*queries.BookingView, error) {
	reads := c.uow.CommandReads()

	if _, err := reads.UserByID(ctx, bookerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, err
	}
	itemSnap, err := reads.ItemByID(ctx, in.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrItemNotFound)
		}
		return nil, err
	}

	b, err := booking.New(booking.ItemSpec{
		ID:        itemSnap.ID,
		OwnerID:   itemSnap.OwnerID,
		Available: itemSnap.Available,
	}, bookerID, in.Start, in.End, c.clock.Now())
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Bookings().Create(ctx, tx.DB(), b)
		return err
	})
	if err != nil {
		return nil, err
	}

	return c.views.GetByIDSystem(ctx, b.ID())
}

func (c *bookingCommands) Decide(ctx context.Context, bookingID, actorID uuid.UUID, approved bool) (*queries.BookingView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByIDForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return err
		}

		b := booking.Reconstruct(
			snap.ID, snap.ItemID, snap.BookerID,
			booking.ReconstructPeriod(snap.Start, snap.End),
			snap.Status,
			time.Time{}, time.Time{},
		)
		// Settled bookings fail as already-decided even for non-owners.
		if err := b.Decide(approved); err != nil {
			return err
		}
		if !booking.CanDecide(snap.ItemOwnerID, actorID) {
			return errs.Mark(errs.New("only the item owner may decide"), errs.ErrForbidden)
		}

		return tx.Bookings().UpdateStatus(ctx, tx.DB(), snap.ID, b.Status())
	})
	if err != nil {
		return nil, err
	}

	return c.views.GetByIDSystem(ctx, bookingID)
}
