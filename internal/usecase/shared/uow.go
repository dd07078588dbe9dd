package shared

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Items() ItemRepository
	Users() UserRepository
	Comments() CommentRepository
	Requests() RequestRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	ItemByID(ctx context.Context, id uuid.UUID) (*ItemSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// BookingByIDForUpdate row-locks the booking; only meaningful inside Within.
	BookingByIDForUpdate(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	RequestByID(ctx context.Context, id uuid.UUID) (*RequestSnapshot, error)
}

// Minimal snapshots for command read operations

type UserSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type ItemSnapshot struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

type BookingSnapshot struct {
	ID          uuid.UUID
	ItemID      uuid.UUID
	ItemOwnerID uuid.UUID
	BookerID    uuid.UUID
	Start       time.Time
	End         time.Time
	Status      booking.Status
}

type RequestSnapshot struct {
	ID          uuid.UUID
	Description string
	Created     time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error
}

type ItemRepository interface {
	Create(ctx context.Context, tx db.DBTX, it *item.Item) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, it *item.Item) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, name, email string) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, name, email *string) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type CommentRepository interface {
	Create(ctx context.Context, tx db.DBTX, itemID, authorID uuid.UUID, text string, created time.Time) (uuid.UUID, error)
}

type RequestRepository interface {
	Create(ctx context.Context, tx db.DBTX, requesterID uuid.UUID, description string, created time.Time) (uuid.UUID, error)
}
