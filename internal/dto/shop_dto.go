package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateShopRequest struct {
	Name         string  `json:"name" validate:"required,max=255"`
	Region       string  `json:"region" validate:"max=100"`
	District     string  `json:"district" validate:"max=100"`
	Address      string  `json:"address" validate:"required"`
	Latitude     float64 `json:"latitude" validate:"latitude"`
	Longitude    float64 `json:"longitude" validate:"longitude"`
	Phone        string  `json:"phone" validate:"max=50"`
	OpeningHours string  `json:"opening_hours" validate:"max=255"`
}

type CreateShopResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateShopRequest struct {
	Id           uuid.UUID `json:"-"`
	Name         string    `json:"name" validate:"required,max=255"`
	Region       string    `json:"region" validate:"max=100"`
	District     string    `json:"district" validate:"max=100"`
	Address      string    `json:"address" validate:"required"`
	Latitude     float64   `json:"latitude" validate:"latitude"`
	Longitude    float64   `json:"longitude" validate:"longitude"`
	Phone        string    `json:"phone" validate:"max=50"`
	OpeningHours string    `json:"opening_hours" validate:"max=255"`
}

type ShopResponse struct {
	Id           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Region       string     `json:"region"`
	District     string     `json:"district"`
	Address      string     `json:"address"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	Phone        string     `json:"phone"`
	OpeningHours string     `json:"opening_hours"`
	MapURL       string     `json:"map_url"`
	DistanceKm   *float64   `json:"distance_km,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}
