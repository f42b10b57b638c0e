// FILE: internal/service/product_service.go
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

type IProductService interface {
	GetAll(ctx context.Context, page dto.PageQuery) (*dto.PagedResponse[*dto.ProductResponse], error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	Create(ctx context.Context, actor string, req *dto.CreateProductRequest) (*dto.CreateProductResponse, error)
	Update(ctx context.Context, actor string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, actor string, id uuid.UUID) error
}

type productService struct {
	uowFactory unitofwork.RepositoryFactory
	audit      audit.Publisher
}

func NewProductService(uowFactory unitofwork.RepositoryFactory, auditPublisher audit.Publisher) IProductService {
	return &productService{
		uowFactory: uowFactory,
		audit:      auditPublisher,
	}
}

func (s *productService) GetAll(ctx context.Context, page dto.PageQuery) (*dto.PagedResponse[*dto.ProductResponse], error) {
	page = normalizePage(page)
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.ProductRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uow.ProductRepository().FindAll(ctx,
		specification.CatalogOrder{},
		specification.Pagination{Limit: page.Limit, Offset: (page.Page - 1) * page.Limit},
	)
	if err != nil {
		return nil, err
	}

	return &dto.PagedResponse[*dto.ProductResponse]{
		Items: mapper.ToProductResponses(products),
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
	}, nil
}

func (s *productService) Show(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return mapper.ToProductResponse(product), nil
}

func (s *productService) Create(ctx context.Context, actor string, req *dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product := entity.Product{
		Id:           uuid.New(),
		Name:         req.Name,
		Brand:        req.Brand,
		Model:        req.Model,
		Description:  req.Description,
		PriceHKD:     req.PriceHKD,
		CategoryType: req.CategoryType,
		CreatedAt:    time.Now(),
	}

	if err := uow.ProductRepository().Create(ctx, &product); err != nil {
		return nil, err
	}

	s.audit.PublishCatalogChanged(ctx, "product", audit.ActionCreated, product.Id, actor)
	return &dto.CreateProductResponse{Id: product.Id}, nil
}

func (s *productService) Update(ctx context.Context, actor string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	now := time.Now()
	product.Name = req.Name
	product.Brand = req.Brand
	product.Model = req.Model
	product.Description = req.Description
	product.PriceHKD = req.PriceHKD
	product.CategoryType = req.CategoryType
	product.UpdatedAt = &now

	if err := uow.ProductRepository().Update(ctx, product); err != nil {
		return nil, err
	}

	s.audit.PublishCatalogChanged(ctx, "product", audit.ActionUpdated, product.Id, actor)
	return mapper.ToProductResponse(product), nil
}

func (s *productService) Delete(ctx context.Context, actor string, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	if err := uow.ProductRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.audit.PublishCatalogChanged(ctx, "product", audit.ActionDeleted, id, actor)
	return nil
}

func normalizePage(p dto.PageQuery) dto.PageQuery {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	return p
}
