package queries

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

type RequestQueries interface {
	GetByID(ctx context.Context, requestID, actorID uuid.UUID) (*RequestView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]RequestView, error)
	// ListAll pages through other users' requests, newest first.
	ListAll(ctx context.Context, actorID uuid.UUID, from, size int) ([]RequestView, error)
}

type requestQueries struct {
	requests RequestReadStore
	items    ItemReadStore
	users    UserReadStore
}

func NewRequestQueries(requests RequestReadStore, items ItemReadStore, users UserReadStore) RequestQueries {
	return &requestQueries{requests: requests, items: items, users: users}
}

func (q *requestQueries) GetByID(ctx context.Context, requestID, actorID uuid.UUID) (*RequestView, error) {
	if err := q.requireUser(ctx, actorID); err != nil {
		return nil, err
	}
	view, err := q.requests.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRequestNotFound)
		}
		return nil, err
	}
	views, err := q.attachItems(ctx, []RequestView{*view})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (q *requestQueries) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]RequestView, error) {
	if err := q.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}
	views, err := q.requests.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return q.attachItems(ctx, views)
}

func (q *requestQueries) ListAll(ctx context.Context, actorID uuid.UUID, from, size int) ([]RequestView, error) {
	page, err := pageFor(from, size)
	if err != nil {
		return nil, err
	}
	views, err := q.requests.ListAllExcept(ctx, actorID, page, size)
	if err != nil {
		return nil, err
	}
	return q.attachItems(ctx, views)
}

func (q *requestQueries) requireUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := q.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrUserNotFound)
		}
		return err
	}
	return nil
}

// attachItems batch-loads the items offered in response to the requests.
func (q *requestQueries) attachItems(ctx context.Context, views []RequestView) ([]RequestView, error) {
	if len(views) == 0 {
		return []RequestView{}, nil
	}
	requestIDs := make([]uuid.UUID, 0, len(views))
	for _, v := range views {
		requestIDs = append(requestIDs, v.ID)
	}
	items, err := q.items.ListByRequestIDs(ctx, requestIDs)
	if err != nil {
		return nil, err
	}
	byRequest := make(map[uuid.UUID][]ItemView, len(views))
	for _, it := range items {
		if it.RequestID == nil {
			continue
		}
		byRequest[*it.RequestID] = append(byRequest[*it.RequestID], it)
	}
	for i := range views {
		items := byRequest[views[i].ID]
		if items == nil {
			items = []ItemView{}
		}
		views[i].Items = items
	}
	return views, nil
}
