package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID     uuid.UUID          `json:"id"`
	Start  time.Time          `json:"start"`
	End    time.Time          `json:"end"`
	Status string             `json:"status"`
	Booker BookerResponse     `json:"booker"`
	Item   BookedItemResponse `json:"item"`
}

type BookerResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookedItemResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     view.ID,
		Start:  view.Start,
		End:    view.End,
		Status: view.Status.String(),
		Booker: BookerResponse{
			ID:   view.Booker.ID,
			Name: view.Booker.Name,
		},
		Item: BookedItemResponse{
			ID:   view.Item.ID,
			Name: view.Item.Name,
		},
	}
}

func FromBookingViews(views []queries.BookingView) []BookingResponse {
	responses := make([]BookingResponse, len(views))
	for i := range views {
		responses[i] = *FromBookingView(&views[i])
	}
	return responses
}
