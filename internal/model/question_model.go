package model

import (
	"time"

	"github.com/google/uuid"
)

// Question is one FAQ entry.
type Question struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Question  string     `gorm:"type:text;not null"`
	Answer    string     `gorm:"type:text;not null"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime"`
}

func (Question) TableName() string {
	return "questions"
}
