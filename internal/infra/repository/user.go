package repository

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() shared.UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, name, email string) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id
	`
	var id uuid.UUID
	if err := tx.QueryRow(ctx, query, name, email).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, name, email *string) error {
	const query = `
		UPDATE users
		SET name = COALESCE($2, name), email = COALESCE($3, email), updated_at = now()
		WHERE id = $1
	`
	tag, err := tx.Exec(ctx, query, id, name, email)
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `
		DELETE FROM users WHERE id = $1
	`
	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
