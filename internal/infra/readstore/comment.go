package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentReadStore struct {
	db db.DBTX
}

func NewCommentReadStore(db db.DBTX) *CommentReadStore {
	return &CommentReadStore{db: db}
}

func (s *CommentReadStore) ListByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]queries.CommentView, error) {
	const query = `
		SELECT c.id, c.item_id, c.text, u.name, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = ANY($1)
		ORDER BY c.created_at
	`
	rows, err := s.db.Query(ctx, query, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	defer rows.Close()

	views := make([]queries.CommentView, 0)
	for rows.Next() {
		var view queries.CommentView
		if err := rows.Scan(&view.ID, &view.ItemID, &view.Text, &view.AuthorName, &view.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read comment rows", err)
	}
	return views, nil
}
