// FILE: internal/entity/product_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryDrilling  = 1
	CategoryCutting   = 2
	CategorySurface   = 3
	CategorySpecialty = 4
)

type Product struct {
	Id           uuid.UUID
	Name         string
	Brand        string
	Model        string
	Description  string
	PriceHKD     int
	CategoryType int // 1..4, see Category* constants
	HotCount     int64
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
