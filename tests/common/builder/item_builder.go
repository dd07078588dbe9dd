//go:build unit || e2e

package builder

import (
	domitem "shareit/internal/domain/item"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		OwnerID:     uuid.New(),
		Name:        "Cordless drill",
		Description: "18V drill with two batteries",
		Available:   true,
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) BuildDomain() (*domitem.Item, error) {
	return domitem.New(b.OwnerID, b.Name, b.Description, b.Available, b.RequestID)
}

func (b *ItemBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequest {
	available := b.Available
	return reqdto.CreateItemRequest{
		Name:        b.Name,
		Description: b.Description,
		Available:   &available,
		RequestID:   b.RequestID,
	}
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:          uuid.New(),
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.Available,
		RequestID:   b.RequestID,
	}
}
