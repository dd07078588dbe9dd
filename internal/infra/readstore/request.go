package readstore

import (
	"context"
	"errors"

	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(db db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: db}
}

const requestViewSelect = `
	SELECT r.id, r.description, r.created_at
	FROM requests r
`

func (s *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	row := s.db.QueryRow(ctx, requestViewSelect+` WHERE r.id = $1`, id)
	view, err := scanRequestView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item request by ID", err)
	}
	return view, nil
}

func (s *RequestReadStore) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]queries.RequestView, error) {
	query := requestViewSelect + ` WHERE r.requester_id = $1 ORDER BY r.created_at DESC`
	return s.list(ctx, query, requesterID)
}

func (s *RequestReadStore) ListAllExcept(ctx context.Context, requesterID uuid.UUID, page, size int) ([]queries.RequestView, error) {
	query := requestViewSelect + ` WHERE r.requester_id <> $1 ORDER BY r.created_at DESC LIMIT $2 OFFSET $3`
	return s.list(ctx, query, requesterID, size, page*size)
}

func (s *RequestReadStore) list(ctx context.Context, query string, args ...any) ([]queries.RequestView, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item requests", err)
	}
	defer rows.Close()

	views := make([]queries.RequestView, 0)
	for rows.Next() {
		view, err := scanRequestView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item request row", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item request rows", err)
	}
	return views, nil
}

func scanRequestView(row pgx.Row) (*queries.RequestView, error) {
	var view queries.RequestView
	if err := row.Scan(&view.ID, &view.Description, &view.Created); err != nil {
		return nil, err
	}
	return &view, nil
}
