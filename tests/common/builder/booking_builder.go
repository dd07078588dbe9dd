//go:build unit || e2e

package builder

import (
	"time"

	dombooking "shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ItemID     uuid.UUID
	ItemName   string
	OwnerID    uuid.UUID
	BookerID   uuid.UUID
	BookerName string
	Available  bool
	Start      time.Time
	End        time.Time
	Status     dombooking.Status
	Now        time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().Truncate(time.Second)
	return &BookingBuilder{
		ItemID:     uuid.New(),
		ItemName:   "Cordless drill",
		OwnerID:    uuid.New(),
		BookerID:   uuid.New(),
		BookerName: "Booker",
		Available:  true,
		Start:      now.Add(24 * time.Hour),
		End:        now.Add(48 * time.Hour),
		Status:     dombooking.StatusWaiting,
		Now:        now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.New(dombooking.ItemSpec{
		ID:        b.ItemID,
		OwnerID:   b.OwnerID,
		Available: b.Available,
	}, b.BookerID, b.Start, b.End, b.Now)
}

func (b *BookingBuilder) BuildReconstructed() *dombooking.Booking {
	return dombooking.Reconstruct(
		uuid.New(), b.ItemID, b.BookerID,
		dombooking.ReconstructPeriod(b.Start, b.End),
		b.Status,
		b.Now, b.Now,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:     uuid.New(),
		Start:  b.Start,
		End:    b.End,
		Status: b.Status,
		Booker: queries.UserRef{ID: b.BookerID, Name: b.BookerName},
		Item:   queries.ItemRef{ID: b.ItemID, OwnerID: b.OwnerID, Name: b.ItemName},
	}
}

func (b *BookingBuilder) BuildRef() queries.BookingRef {
	return queries.BookingRef{
		ID:       uuid.New(),
		ItemID:   b.ItemID,
		BookerID: b.BookerID,
		Start:    b.Start,
		End:      b.End,
		Status:   b.Status,
	}
}
