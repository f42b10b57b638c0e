package model

import (
	"time"

	"github.com/google/uuid"
)

type Shop struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string     `gorm:"type:varchar(255);not null"`
	Region       string     `gorm:"type:varchar(100)"`
	District     string     `gorm:"type:varchar(100)"`
	Address      string     `gorm:"type:text"`
	Latitude     float64    `gorm:"type:double precision;not null"`
	Longitude    float64    `gorm:"type:double precision;not null"`
	Phone        string     `gorm:"type:varchar(50)"`
	OpeningHours string     `gorm:"type:varchar(255)"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    *time.Time `gorm:"autoUpdateTime"`
}

func (Shop) TableName() string {
	return "shops"
}
