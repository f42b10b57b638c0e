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

type IShopService interface {
	GetAll(ctx context.Context, page dto.PageQuery) (*dto.PagedResponse[*dto.ShopResponse], error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShopResponse, error)
	Create(ctx context.Context, actor string, req *dto.CreateShopRequest) (*dto.CreateShopResponse, error)
	Update(ctx context.Context, actor string, req *dto.UpdateShopRequest) (*dto.ShopResponse, error)
	Delete(ctx context.Context, actor string, id uuid.UUID) error
}

type shopService struct {
	uowFactory unitofwork.RepositoryFactory
	audit      audit.Publisher
}

func NewShopService(uowFactory unitofwork.RepositoryFactory, auditPublisher audit.Publisher) IShopService {
	return &shopService{
		uowFactory: uowFactory,
		audit:      auditPublisher,
	}
}

func (s *shopService) GetAll(ctx context.Context, page dto.PageQuery) (*dto.PagedResponse[*dto.ShopResponse], error) {
	page = normalizePage(page)
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.ShopRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	shops, err := uow.ShopRepository().FindAll(ctx,
		specification.CatalogOrder{},
		specification.Pagination{Limit: page.Limit, Offset: (page.Page - 1) * page.Limit},
	)
	if err != nil {
		return nil, err
	}

	return &dto.PagedResponse[*dto.ShopResponse]{
		Items: mapper.ToShopResponses(shops),
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
	}, nil
}

func (s *shopService) Show(ctx context.Context, id uuid.UUID) (*dto.ShopResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	shop, err := uow.ShopRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}
	return mapper.ToShopResponse(shop), nil
}

func (s *shopService) Create(ctx context.Context, actor string, req *dto.CreateShopRequest) (*dto.CreateShopResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	shop := entity.Shop{
		Id:           uuid.New(),
		Name:         req.Name,
		Region:       req.Region,
		District:     req.District,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Phone:        req.Phone,
		OpeningHours: req.OpeningHours,
		CreatedAt:    time.Now(),
	}

	if err := uow.ShopRepository().Create(ctx, &shop); err != nil {
		return nil, err
	}

	s.audit.PublishCatalogChanged(ctx, "shop", audit.ActionCreated, shop.Id, actor)
	return &dto.CreateShopResponse{Id: shop.Id}, nil
}

func (s *shopService) Update(ctx context.Context, actor string, req *dto.UpdateShopRequest) (*dto.ShopResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	shop, err := uow.ShopRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}

	now := time.Now()
	shop.Name = req.Name
	shop.Region = req.Region
	shop.District = req.District
	shop.Address = req.Address
	shop.Latitude = req.Latitude
	shop.Longitude = req.Longitude
	shop.Phone = req.Phone
	shop.OpeningHours = req.OpeningHours
	shop.UpdatedAt = &now

	if err := uow.ShopRepository().Update(ctx, shop); err != nil {
		return nil, err
	}

	s.audit.PublishCatalogChanged(ctx, "shop", audit.ActionUpdated, shop.Id, actor)
	return mapper.ToShopResponse(shop), nil
}

func (s *shopService) Delete(ctx context.Context, actor string, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	shop, err := uow.ShopRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if shop == nil {
		return ErrShopNotFound
	}

	if err := uow.ShopRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.audit.PublishCatalogChanged(ctx, "shop", audit.ActionDeleted, id, actor)
	return nil
}
