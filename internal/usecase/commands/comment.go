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

type CommentCommands interface {
	// Create posts a comment on an item. The author must have an approved
	// booking of that item that has already ended.
	Create(ctx context.Context, itemID, authorID uuid.UUID, text string) (*queries.CommentView, error)
}

type commentCommands struct {
	uow      shared.UnitOfWork
	bookings queries.BookingQueries
	clock    clock.Clock
}

func NewCommentCommands(uow shared.UnitOfWork, bookings queries.BookingQueries, clk clock.Clock) CommentCommands {
	return &commentCommands{uow: uow, bookings: bookings, clock: clk}
}

func (c *commentCommands) Create(ctx context.Context, itemID, authorID uuid.UUID, text string) (*queries.CommentView, error) {
	reads := c.uow.CommandReads()

	author, err := reads.UserByID(ctx, authorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, err
	}
	if _, err := reads.ItemByID(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrItemNotFound)
		}
		return nil, err
	}

	eligible, err := c.bookings.CanComment(ctx, itemID, authorID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, errs.Mark(errs.New("no finished approved booking for this item"), errs.ErrCommentNotAllowed)
	}

	created := c.clock.Now()
	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Comments().Create(ctx, tx.DB(), itemID, authorID, text, created)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &queries.CommentView{
		ID:         id,
		ItemID:     itemID,
		Text:       text,
		AuthorName: author.Name,
		Created:    created,
	}, nil
}
