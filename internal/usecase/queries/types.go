package queries

import (
	"context"
	"time"

	"shareit/internal/domain/booking"

	"github.com/google/uuid"
)

// View types returned by query services. Handlers map these to response
// DTOs; fields like Item.OwnerID exist for authorization and never leave
// the process.

type UserRef struct {
	ID   uuid.UUID
	Name string
}

type ItemRef struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
}

type BookingView struct {
	ID     uuid.UUID
	Start  time.Time
	End    time.Time
	Status booking.Status
	Booker UserRef
	Item   ItemRef
}

// BookingRef is the slim schedule row used by the last/next computation.
type BookingRef struct {
	ID       uuid.UUID
	ItemID   uuid.UUID
	BookerID uuid.UUID
	Start    time.Time
	End      time.Time
	Status   booking.Status
}

type NearestBooking struct {
	ID       uuid.UUID
	BookerID uuid.UUID
	Start    time.Time
	End      time.Time
}

type CommentView struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	Text       string
	AuthorName string
	Created    time.Time
}

type ItemView struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

type ItemDetailView struct {
	ItemView
	LastBooking *NearestBooking
	NextBooking *NearestBooking
	Comments    []CommentView
}

type UserView struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type RequestView struct {
	ID          uuid.UUID
	Description string
	Created     time.Time
	Items       []ItemView
}

// Read store contracts implemented by internal/infra/readstore.

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListForBooker(ctx context.Context, bookerID uuid.UUID, bucket booking.Bucket, now time.Time, page, size int) ([]BookingView, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, bucket booking.Bucket, now time.Time, page, size int) ([]BookingView, error)
	ListByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]BookingRef, error)
	HasFinishedApprovedBooking(ctx context.Context, itemID, userID uuid.UUID, now time.Time) (bool, error)
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page, size int) ([]ItemView, error)
	Search(ctx context.Context, text string, page, size int) ([]ItemView, error)
	ListByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) ([]ItemView, error)
}

type CommentReadStore interface {
	ListByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]CommentView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	List(ctx context.Context) ([]UserView, error)
}

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]RequestView, error)
	ListAllExcept(ctx context.Context, requesterID uuid.UUID, page, size int) ([]RequestView, error)
}
