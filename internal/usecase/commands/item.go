package commands

import (
	"context"
	"time"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateItemInput struct {
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

type PatchItemInput struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, in CreateItemInput) (*queries.ItemView, error)
	Update(ctx context.Context, itemID, actorID uuid.UUID, in PatchItemInput) (*queries.ItemView, error)
}

type itemCommands struct {
	uow shared.UnitOfWork
}

func NewItemCommands(uow shared.UnitOfWork) ItemCommands {
	return &itemCommands{uow: uow}
}

func (c *itemCommands) Create(ctx context.Context, ownerID uuid.UUID, in CreateItemInput) (*queries.ItemView, error) {
	reads := c.uow.CommandReads()
	if _, err := reads.UserByID(ctx, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, err
	}
	if in.RequestID != nil {
		if _, err := reads.RequestByID(ctx, *in.RequestID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, errs.ErrRequestNotFound)
			}
			return nil, err
		}
	}

	it, err := item.New(ownerID, in.Name, in.Description, in.Available, in.RequestID)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Items().Create(ctx, tx.DB(), it)
		return err
	})
	if err != nil {
		return nil, err
	}
	return viewOf(it), nil
}

func (c *itemCommands) Update(ctx context.Context, itemID, actorID uuid.UUID, in PatchItemInput) (*queries.ItemView, error) {
	snap, err := c.uow.CommandReads().ItemByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrItemNotFound)
		}
		return nil, err
	}
	if snap.OwnerID != actorID {
		return nil, errs.Mark(errs.New("item belongs to another user"), errs.ErrNotItemOwner)
	}

	it := item.Reconstruct(
		snap.ID, snap.OwnerID,
		snap.Name, snap.Description,
		snap.Available, snap.RequestID,
		time.Time{}, time.Time{},
	)
	if err := it.Patch(in.Name, in.Description, in.Available); err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Items().Update(ctx, tx.DB(), it)
	})
	if err != nil {
		return nil, err
	}
	return viewOf(it), nil
}

func viewOf(it *item.Item) *queries.ItemView {
	return &queries.ItemView{
		ID:          it.ID(),
		OwnerID:     it.OwnerID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		RequestID:   it.RequestID(),
	}
}
