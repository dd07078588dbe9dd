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

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const query = `
		SELECT id, name, email FROM users WHERE id = $1
	`
	var view queries.UserView
	err := s.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.Name, &view.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

func (s *UserReadStore) List(ctx context.Context) ([]queries.UserView, error) {
	const query = `
		SELECT id, name, email FROM users ORDER BY created_at, id
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	views := make([]queries.UserView, 0)
	for rows.Next() {
		var view queries.UserView
		if err := rows.Scan(&view.ID, &view.Name, &view.Email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}
	return views, nil
}
