package queries

import (
	"context"
	"strings"

	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

type ItemQueries interface {
	// GetByID returns the item with its comments. The last/next schedule
	// fields are populated only when the viewer owns the item.
	GetByID(ctx context.Context, itemID, viewerID uuid.UUID) (*ItemDetailView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, from, size int) ([]ItemDetailView, error)
	// Search matches name or description, available items only. Blank text
	// short-circuits to an empty result.
	Search(ctx context.Context, text string, from, size int) ([]ItemView, error)
}

type itemQueries struct {
	items    ItemReadStore
	bookings BookingReadStore
	comments CommentReadStore
	clock    clock.Clock
}

func NewItemQueries(items ItemReadStore, bookings BookingReadStore, comments CommentReadStore, clk clock.Clock) ItemQueries {
	return &itemQueries{items: items, bookings: bookings, comments: comments, clock: clk}
}

func (q *itemQueries) GetByID(ctx context.Context, itemID, viewerID uuid.UUID) (*ItemDetailView, error) {
	view, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrItemNotFound)
		}
		return nil, err
	}

	comments, err := q.comments.ListByItemIDs(ctx, []uuid.UUID{itemID})
	if err != nil {
		return nil, err
	}

	detail := &ItemDetailView{ItemView: *view, Comments: comments}
	if view.OwnerID != viewerID {
		return detail, nil
	}

	refs, err := q.bookings.ListByItemIDs(ctx, []uuid.UUID{itemID})
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()
	detail.LastBooking = LastBooking(refs, now)
	detail.NextBooking = NextBooking(refs, now)
	return detail, nil
}

func (q *itemQueries) ListByOwner(ctx context.Context, ownerID uuid.UUID, from, size int) ([]ItemDetailView, error) {
	page, err := pageFor(from, size)
	if err != nil {
		return nil, err
	}
	views, err := q.items.ListByOwner(ctx, ownerID, page, size)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return []ItemDetailView{}, nil
	}

	itemIDs := make([]uuid.UUID, 0, len(views))
	for _, v := range views {
		itemIDs = append(itemIDs, v.ID)
	}

	// Two batch reads instead of a round-trip per item.
	refs, err := q.bookings.ListByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	comments, err := q.comments.ListByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	refsByItem := groupByItem(refs)
	commentsByItem := make(map[uuid.UUID][]CommentView, len(views))
	for _, c := range comments {
		commentsByItem[c.ItemID] = append(commentsByItem[c.ItemID], c)
	}

	now := q.clock.Now()
	details := make([]ItemDetailView, 0, len(views))
	for _, v := range views {
		details = append(details, ItemDetailView{
			ItemView:    v,
			LastBooking: LastBooking(refsByItem[v.ID], now),
			NextBooking: NextBooking(refsByItem[v.ID], now),
			Comments:    commentsByItem[v.ID],
		})
	}
	return details, nil
}

func (q *itemQueries) Search(ctx context.Context, text string, from, size int) ([]ItemView, error) {
	page, err := pageFor(from, size)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return []ItemView{}, nil
	}
	return q.items.Search(ctx, text, page, size)
}
