package service

import (
	"context"
	"time"

	"storefront-bot/internal/dto"
	"storefront-bot/internal/entity"
	"storefront-bot/internal/mapper"
	"storefront-bot/internal/repository/specification"
	"storefront-bot/internal/repository/unitofwork"
	"storefront-bot/pkg/audit"

	"github.com/google/uuid"
)

type IQuestionService interface {
	GetAll(ctx context.Context, page dto.PageQuery) (*dto.PagedResponse[*dto.QuestionResponse], error)
	Show(ctx context.Context, id uuid.UUID) (*dto.QuestionResponse, error)
	Create(ctx context.Context, actor string, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error)
	Update(ctx context.Context, actor string, req *dto.UpdateQuestionRequest) (*dto.QuestionResponse, error)
	Delete(ctx context.Context, actor string, id uuid.UUID) error
}

type questionService struct {
	uowFactory unitofwork.RepositoryFactory
	audit      audit.Publisher
}

func NewQuestionService(uowFactory unitofwork.RepositoryFactory, auditPublisher audit.Publisher) IQuestionService {
	return &questionService{
		uowFactory: uowFactory,
		audit:      auditPublisher,
	}
}

func (s *questionService) GetAll(ctx context.Context, page dto.PageQuery) (*dto.PagedResponse[*dto.QuestionResponse], error) {
	page = normalizePage(page)
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.QuestionRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	questions, err := uow.QuestionRepository().FindAll(ctx,
		specification.CatalogOrder{},
		specification.Pagination{Limit: page.Limit, Offset: (page.Page - 1) * page.Limit},
	)
	if err != nil {
		return nil, err
	}

	return &dto.PagedResponse[*dto.QuestionResponse]{
		Items: mapper.ToQuestionResponses(questions),
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
	}, nil
}

func (s *questionService) Show(ctx context.Context, id uuid.UUID) (*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	question, err := uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}
	return mapper.ToQuestionResponse(question), nil
}

func (s *questionService) Create(ctx context.Context, actor string, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	question := entity.Question{
		Id:        uuid.New(),
		Question:  req.Question,
		Answer:    req.Answer,
		CreatedAt: time.Now(),
	}

	if err := uow.QuestionRepository().Create(ctx, &question); err != nil {
		return nil, err
	}

	s.audit.PublishCatalogChanged(ctx, "question", audit.ActionCreated, question.Id, actor)
	return &dto.CreateQuestionResponse{Id: question.Id}, nil
}

func (s *questionService) Update(ctx context.Context, actor string, req *dto.UpdateQuestionRequest) (*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	question, err := uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	now := time.Now()
	question.Question = req.Question
	question.Answer = req.Answer
	question.UpdatedAt = &now

	if err := uow.QuestionRepository().Update(ctx, question); err != nil {
		return nil, err
	}

	s.audit.PublishCatalogChanged(ctx, "question", audit.ActionUpdated, question.Id, actor)
	return mapper.ToQuestionResponse(question), nil
}

func (s *questionService) Delete(ctx context.Context, actor string, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	question, err := uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if question == nil {
		return ErrQuestionNotFound
	}

	if err := uow.QuestionRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.audit.PublishCatalogChanged(ctx, "question", audit.ActionDeleted, id, actor)
	return nil
}
