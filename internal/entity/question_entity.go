// FILE: internal/entity/question_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	Id        uuid.UUID
	Question  string
	Answer    string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
