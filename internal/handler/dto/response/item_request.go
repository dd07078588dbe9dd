package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemRequestResponse struct {
	ID          uuid.UUID      `json:"id"`
	Description string         `json:"description"`
	Created     time.Time      `json:"created"`
	Items       []ItemResponse `json:"items"`
}

func FromRequestView(view *queries.RequestView) *ItemRequestResponse {
	return &ItemRequestResponse{
		ID:          view.ID,
		Description: view.Description,
		Created:     view.Created,
		Items:       FromItemViews(view.Items),
	}
}

func FromRequestViews(views []queries.RequestView) []ItemRequestResponse {
	responses := make([]ItemRequestResponse, len(views))
	for i := range views {
		responses[i] = *FromRequestView(&views[i])
	}
	return responses
}
