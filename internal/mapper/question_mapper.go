package mapper

import (
	"storefront-bot/internal/entity"
	"storefront-bot/internal/model"
)

type QuestionMapper struct{}

func NewQuestionMapper() *QuestionMapper {
	return &QuestionMapper{}
}

func (m *QuestionMapper) ToEntity(model *model.Question) *entity.Question {
	if model == nil {
		return nil
	}
	return &entity.Question{
		Id:        model.Id,
		Question:  model.Question,
		Answer:    model.Answer,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func (m *QuestionMapper) ToModel(entity *entity.Question) *model.Question {
	if entity == nil {
		return nil
	}
	return &model.Question{
		Id:        entity.Id,
		Question:  entity.Question,
		Answer:    entity.Answer,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func (m *QuestionMapper) ToEntities(models []*model.Question) []*entity.Question {
	entities := make([]*entity.Question, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
