package readstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const bookingViewSelect = `
	SELECT b.id, b.start_at, b.end_at, b.status,
	       u.id, u.name,
	       i.id, i.owner_id, i.name
	FROM bookings b
	JOIN users u ON u.id = b.booker_id
	JOIN items i ON i.id = b.item_id
`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := s.db.QueryRow(ctx, bookingViewSelect+` WHERE b.id = $1`, id)
	view, err := scanBookingView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (s *BookingReadStore) ListForBooker(ctx context.Context, bookerID uuid.UUID, bucket booking.Bucket, now time.Time, page, size int) ([]queries.BookingView, error) {
	return s.listBySubject(ctx, "b.booker_id", bookerID, bucket, now, page, size)
}

func (s *BookingReadStore) ListForOwner(ctx context.Context, ownerID uuid.UUID, bucket booking.Bucket, now time.Time, page, size int) ([]queries.BookingView, error) {
	return s.listBySubject(ctx, "i.owner_id", ownerID, bucket, now, page, size)
}

// listBySubject builds the bucket query. CURRENT/PAST/FUTURE compare
// strictly against now; WAITING/REJECTED filter on the literal status.
func (s *BookingReadStore) listBySubject(ctx context.Context, subjectCol string, subjectID uuid.UUID, bucket booking.Bucket, now time.Time, page, size int) ([]queries.BookingView, error) {
	query := bookingViewSelect + ` WHERE ` + subjectCol + ` = $1`
	args := []any{subjectID}

	switch bucket {
	case booking.BucketAll:
	case booking.BucketCurrent:
		query += ` AND b.start_at < $2 AND b.end_at > $2`
		args = append(args, now)
	case booking.BucketPast:
		query += ` AND b.end_at < $2`
		args = append(args, now)
	case booking.BucketFuture:
		query += ` AND b.start_at > $2`
		args = append(args, now)
	case booking.BucketWaiting, booking.BucketRejected:
		query += ` AND b.status = $2`
		args = append(args, string(bucket))
	}

	query += fmt.Sprintf(` ORDER BY b.start_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, size, page*size)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := make([]queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return views, nil
}

func (s *BookingReadStore) ListByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]queries.BookingRef, error) {
	const query = `
		SELECT b.id, b.item_id, b.booker_id, b.start_at, b.end_at, b.status
		FROM bookings b
		WHERE b.item_id = ANY($1)
	`
	rows, err := s.db.Query(ctx, query, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by item IDs", err)
	}
	defer rows.Close()

	refs := make([]queries.BookingRef, 0)
	for rows.Next() {
		var ref queries.BookingRef
		var status string
		if err := rows.Scan(&ref.ID, &ref.ItemID, &ref.BookerID, &ref.Start, &ref.End, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking ref", err)
		}
		ref.Status = booking.Status(status)
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking refs", err)
	}
	return refs, nil
}

func (s *BookingReadStore) HasFinishedApprovedBooking(ctx context.Context, itemID, userID uuid.UUID, now time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE item_id = $1 AND booker_id = $2 AND status = 'APPROVED' AND end_at < $3
		)
	`
	var exists bool
	if err := s.db.QueryRow(ctx, query, itemID, userID, now).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check finished bookings", err)
	}
	return exists, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var view queries.BookingView
	var status string
	err := row.Scan(
		&view.ID, &view.Start, &view.End, &status,
		&view.Booker.ID, &view.Booker.Name,
		&view.Item.ID, &view.Item.OwnerID, &view.Item.Name,
	)
	if err != nil {
		return nil, err
	}
	view.Status = booking.Status(status)
	return &view, nil
}
