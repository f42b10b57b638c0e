// FILE: internal/model/product_model.go
// GORM model for the product catalog table
package model

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string     `gorm:"type:varchar(255);not null;index"`
	Brand        string     `gorm:"type:varchar(100)"`
	Model        string     `gorm:"type:varchar(100)"`
	Description  string     `gorm:"type:text"`
	PriceHKD     int        `gorm:"column:price_hkd;not null;default:0"`
	CategoryType int        `gorm:"not null;default:4"`
	HotCount     int64      `gorm:"not null;default:0;index"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    *time.Time `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
