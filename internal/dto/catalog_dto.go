package dto

import "github.com/google/uuid"

// HotCountMessage is the payload of one hot-counter increment on the internal bus.
type HotCountMessage struct {
	ProductId uuid.UUID `json:"product_id"`
}

type PageQuery struct {
	Page  int
	Limit int
}

type PagedResponse[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}
