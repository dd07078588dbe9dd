package response

import (
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func FromUserView(view *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:    view.ID,
		Name:  view.Name,
		Email: view.Email,
	}
}

func FromUserViews(views []queries.UserView) []UserResponse {
	responses := make([]UserResponse, len(views))
	for i := range views {
		responses[i] = *FromUserView(&views[i])
	}
	return responses
}
