package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProductRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	Brand        string `json:"brand" validate:"max=100"`
	Model        string `json:"model" validate:"max=100"`
	Description  string `json:"description"`
	PriceHKD     int    `json:"price_hkd" validate:"gte=0"`
	CategoryType int    `json:"category_type" validate:"required,min=1,max=4"`
}

type CreateProductResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateProductRequest struct {
	Id           uuid.UUID `json:"-"`
	Name         string    `json:"name" validate:"required,max=255"`
	Brand        string    `json:"brand" validate:"max=100"`
	Model        string    `json:"model" validate:"max=100"`
	Description  string    `json:"description"`
	PriceHKD     int       `json:"price_hkd" validate:"gte=0"`
	CategoryType int       `json:"category_type" validate:"required,min=1,max=4"`
}

type ProductResponse struct {
	Id            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Brand         string     `json:"brand"`
	Model         string     `json:"model"`
	Description   string     `json:"description"`
	PriceHKD      int        `json:"price_hkd"`
	CategoryType  int        `json:"category_type"`
	CategoryLabel string     `json:"category_label"`
	HotCount      int64      `json:"hot_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}
