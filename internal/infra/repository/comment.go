package repository

import (
	"context"
	"time"

	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CommentRepository struct{}

func NewCommentRepository() shared.CommentRepository {
	return &CommentRepository{}
}

func (r *CommentRepository) Create(ctx context.Context, tx db.DBTX, itemID, authorID uuid.UUID, text string, created time.Time) (uuid.UUID, error) {
	const query = `
		INSERT INTO comments (item_id, author_id, text, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id uuid.UUID
	if err := tx.QueryRow(ctx, query, itemID, authorID, text, created).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create comment", err)
	}
	return id, nil
}
