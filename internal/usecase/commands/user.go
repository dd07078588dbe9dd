package commands

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserCommands interface {
	Create(ctx context.Context, name, email string) (*queries.UserView, error)
	// Update patches name and/or email; nil fields keep the stored value.
	Update(ctx context.Context, id uuid.UUID, name, email *string) (*queries.UserView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userCommands struct {
	uow   shared.UnitOfWork
	views queries.UserQueries
}

func NewUserCommands(uow shared.UnitOfWork, views queries.UserQueries) UserCommands {
	return &userCommands{uow: uow, views: views}
}

func (c *userCommands) Create(ctx context.Context, name, email string) (*queries.UserView, error) {
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Users().Create(ctx, tx.DB(), name, email)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrEmailTaken)
		}
		return nil, err
	}
	return c.views.GetByID(ctx, id)
}

func (c *userCommands) Update(ctx context.Context, id uuid.UUID, name, email *string) (*queries.UserView, error) {
	if _, err := c.uow.CommandReads().UserByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, err
	}
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Update(ctx, tx.DB(), id, name, email)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrEmailTaken)
		}
		return nil, err
	}
	return c.views.GetByID(ctx, id)
}

func (c *userCommands) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrUserNotFound)
		}
		return err
	}
	return nil
}
