package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	RequestID   *uuid.UUID `json:"requestId,omitempty"`
}

type ItemDetailResponse struct {
	ItemResponse
	LastBooking *NearestBookingResponse `json:"lastBooking"`
	NextBooking *NearestBookingResponse `json:"nextBooking"`
	Comments    []CommentResponse       `json:"comments"`
}

type NearestBookingResponse struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func FromItemView(view *queries.ItemView) *ItemResponse {
	return &ItemResponse{
		ID:          view.ID,
		Name:        view.Name,
		Description: view.Description,
		Available:   view.Available,
		RequestID:   view.RequestID,
	}
}

func FromItemViews(views []queries.ItemView) []ItemResponse {
	responses := make([]ItemResponse, len(views))
	for i := range views {
		responses[i] = *FromItemView(&views[i])
	}
	return responses
}

func FromItemDetailView(view *queries.ItemDetailView) *ItemDetailResponse {
	return &ItemDetailResponse{
		ItemResponse: *FromItemView(&view.ItemView),
		LastBooking:  fromNearestBooking(view.LastBooking),
		NextBooking:  fromNearestBooking(view.NextBooking),
		Comments:     FromCommentViews(view.Comments),
	}
}

func FromItemDetailViews(views []queries.ItemDetailView) []ItemDetailResponse {
	responses := make([]ItemDetailResponse, len(views))
	for i := range views {
		responses[i] = *FromItemDetailView(&views[i])
	}
	return responses
}

func FromCommentView(view *queries.CommentView) *CommentResponse {
	return &CommentResponse{
		ID:         view.ID,
		Text:       view.Text,
		AuthorName: view.AuthorName,
		Created:    view.Created,
	}
}

func FromCommentViews(views []queries.CommentView) []CommentResponse {
	responses := make([]CommentResponse, 0, len(views))
	for i := range views {
		responses = append(responses, *FromCommentView(&views[i]))
	}
	return responses
}

func fromNearestBooking(view *queries.NearestBooking) *NearestBookingResponse {
	if view == nil {
		return nil
	}
	return &NearestBookingResponse{
		ID:       view.ID,
		BookerID: view.BookerID,
		Start:    view.Start,
		End:      view.End,
	}
}
