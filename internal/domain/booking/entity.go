package booking

import (
	"time"

	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

// ItemSpec is the slice of the item catalog the lifecycle rules need.
type ItemSpec struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Available bool
}

type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	bookerID  uuid.UUID
	period    Period
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// New runs the full creation rule chain: interval, backdating, item
// availability, self-booking. The first failing check wins.
func New(item ItemSpec, bookerID uuid.UUID, start, end, now time.Time) (*Booking, error) {
	period, err := NewPeriod(start, end, now)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, errs.ErrItemUnavailable
	}
	if item.OwnerID == bookerID {
		return nil, errs.ErrSelfBooking
	}

	return &Booking{
		id:       uuid.New(),
		itemID:   item.ID,
		bookerID: bookerID,
		period:   period,
		status:   StatusWaiting,
	}, nil
}

func Reconstruct(
	id, itemID, bookerID uuid.UUID,
	period Period,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		period:    period,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Decide applies the single owner decision. Any booking that has left
// WAITING, including externally canceled ones, refuses a second decision.
func (b *Booking) Decide(approved bool) error {
	if b.status != StatusWaiting {
		return errs.ErrAlreadyDecided
	}
	if approved {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

func (b *Booking) ID() uuid.UUID       { return b.id }
func (b *Booking) ItemID() uuid.UUID   { return b.itemID }
func (b *Booking) BookerID() uuid.UUID { return b.bookerID }
func (b *Booking) Period() Period      { return b.period }
func (b *Booking) Status() Status      { return b.status }
func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}
func (b *Booking) UpdatedAt() time.Time {
	return b.updatedAt
}
