// FILE: internal/entity/shop_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type Shop struct {
	Id           uuid.UUID
	Name         string
	Region       string
	District     string
	Address      string
	Latitude     float64
	Longitude    float64
	Phone        string
	OpeningHours string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
