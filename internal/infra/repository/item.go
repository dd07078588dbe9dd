package repository

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type ItemRepository struct{}

func NewItemRepository() shared.ItemRepository {
	return &ItemRepository{}
}

func (r *ItemRepository) Create(ctx context.Context, tx db.DBTX, it *item.Item) (uuid.UUID, error) {
	const query = `
		INSERT INTO items (id, owner_id, name, description, available, request_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := tx.Exec(ctx, query,
		it.ID(), it.OwnerID(), it.Name(), it.Description(), it.Available(), it.RequestID(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create item", err)
	}
	return it.ID(), nil
}

func (r *ItemRepository) Update(ctx context.Context, tx db.DBTX, it *item.Item) error {
	const query = `
		UPDATE items
		SET name = $2, description = $3, available = $4, updated_at = now()
		WHERE id = $1
	`
	tag, err := tx.Exec(ctx, query, it.ID(), it.Name(), it.Description(), it.Available())
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}
