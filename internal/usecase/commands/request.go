package commands

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type RequestCommands interface {
	Create(ctx context.Context, requesterID uuid.UUID, description string) (*queries.RequestView, error)
}

type requestCommands struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRequestCommands(uow shared.UnitOfWork, clk clock.Clock) RequestCommands {
	return &requestCommands{uow: uow, clock: clk}
}

func (c *requestCommands) Create(ctx context.Context, requesterID uuid.UUID, description string) (*queries.RequestView, error) {
	if _, err := c.uow.CommandReads().UserByID(ctx, requesterID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, err
	}

	created := c.clock.Now()
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Requests().Create(ctx, tx.DB(), requesterID, description, created)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &queries.RequestView{
		ID:          id,
		Description: description,
		Created:     created,
		Items:       []queries.ItemView{},
	}, nil
}
