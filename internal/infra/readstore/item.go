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

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(db db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: db}
}

const itemViewSelect = `
	SELECT i.id, i.owner_id, i.name, i.description, i.available, i.request_id
	FROM items i
`

func (s *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	row := s.db.QueryRow(ctx, itemViewSelect+` WHERE i.id = $1`, id)
	view, err := scanItemView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}
	return view, nil
}

func (s *ItemReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, page, size int) ([]queries.ItemView, error) {
	query := itemViewSelect + ` WHERE i.owner_id = $1 ORDER BY i.created_at, i.id LIMIT $2 OFFSET $3`
	return s.list(ctx, query, ownerID, size, page*size)
}

// Search matches name or description case-insensitively among available
// items only.
func (s *ItemReadStore) Search(ctx context.Context, text string, page, size int) ([]queries.ItemView, error) {
	query := itemViewSelect + `
		WHERE i.available
		  AND (i.name ILIKE '%' || $1 || '%' OR i.description ILIKE '%' || $1 || '%')
		ORDER BY i.created_at, i.id LIMIT $2 OFFSET $3`
	return s.list(ctx, query, text, size, page*size)
}

func (s *ItemReadStore) ListByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) ([]queries.ItemView, error) {
	query := itemViewSelect + ` WHERE i.request_id = ANY($1) ORDER BY i.created_at, i.id`
	return s.list(ctx, query, requestIDs)
}

func (s *ItemReadStore) list(ctx context.Context, query string, args ...any) ([]queries.ItemView, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	defer rows.Close()

	views := make([]queries.ItemView, 0)
	for rows.Next() {
		view, err := scanItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item rows", err)
	}
	return views, nil
}

func scanItemView(row pgx.Row) (*queries.ItemView, error) {
	var view queries.ItemView
	err := row.Scan(
		&view.ID, &view.OwnerID, &view.Name, &view.Description,
		&view.Available, &view.RequestID,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
