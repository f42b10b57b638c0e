package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateQuestionRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type CreateQuestionResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateQuestionRequest struct {
	Id       uuid.UUID `json:"-"`
	Question string    `json:"question" validate:"required"`
	Answer   string    `json:"answer" validate:"required"`
}

type QuestionResponse struct {
	Id        uuid.UUID  `json:"id"`
	Question  string     `json:"question"`
	Answer    string     `json:"answer"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
