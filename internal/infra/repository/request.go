package repository

import (
	"context"
	"time"

	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type RequestRepository struct{}

func NewRequestRepository() shared.RequestRepository {
	return &RequestRepository{}
}

func (r *RequestRepository) Create(ctx context.Context, tx db.DBTX, requesterID uuid.UUID, description string, created time.Time) (uuid.UUID, error) {
	const query = `
		INSERT INTO requests (requester_id, description, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id uuid.UUID
	if err := tx.QueryRow(ctx, query, requesterID, description, created).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create item request", err)
	}
	return id, nil
}
