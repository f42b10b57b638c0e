// FILE: internal/service/catalog_service.go
package service

import (
	"context"
	"fmt"

	"storefront-bot/internal/entity"
	"storefront-bot/internal/pkg/logger"
	"storefront-bot/internal/repository/specification"
	"storefront-bot/internal/repository/unitofwork"
	"storefront-bot/pkg/query"
)

// ICatalogService answers the read-only catalog queries used by the bot and the
// public catalog endpoints. Every call works on a fresh snapshot of the table.
type ICatalogService interface {
	SearchByName(ctx context.Context, keyword string) ([]*entity.Product, error)
	SearchByNameAndPrice(ctx context.Context, keyword string, price query.PriceRange) ([]*entity.Product, error)
	SearchQuestions(ctx context.Context, keyword string) ([]*entity.Question, error)
	NearbyShops(ctx context.Context, origin query.Point) ([]*entity.Shop, error)
	TopProducts(ctx context.Context) ([]*entity.Product, error)
	RadiusKm() float64
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	radiusKm   float64
	topLimit   int
	logger     logger.ILogger
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, radiusKm float64, topLimit int, log logger.ILogger) ICatalogService {
	if radiusKm <= 0 {
		radiusKm = query.DefaultRadiusKm
	}
	if topLimit <= 0 {
		topLimit = query.DefaultTopN
	}
	return &catalogService{
		uowFactory: uowFactory,
		radiusKm:   radiusKm,
		topLimit:   topLimit,
		logger:     log,
	}
}

func (s *catalogService) RadiusKm() float64 {
	return s.radiusKm
}

func (s *catalogService) products(ctx context.Context) ([]*entity.Product, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	products, err := uow.ProductRepository().FindAll(ctx, specification.CatalogOrder{})
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return products, nil
}

func (s *catalogService) SearchByName(ctx context.Context, keyword string) ([]*entity.Product, error) {
	products, err := s.products(ctx)
	if err != nil {
		return nil, err
	}
	return query.NameMatch(products, keyword), nil
}

func (s *catalogService) SearchByNameAndPrice(ctx context.Context, keyword string, price query.PriceRange) ([]*entity.Product, error) {
	products, err := s.products(ctx)
	if err != nil {
		return nil, err
	}
	return query.NameAndPriceMatch(products, keyword, price), nil
}

func (s *catalogService) SearchQuestions(ctx context.Context, keyword string) ([]*entity.Question, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	questions, err := uow.QuestionRepository().FindAll(ctx, specification.CatalogOrder{})
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return query.QuestionMatch(questions, keyword), nil
}

func (s *catalogService) NearbyShops(ctx context.Context, origin query.Point) ([]*entity.Shop, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	shops, err := uow.ShopRepository().FindAll(ctx, specification.CatalogOrder{})
	if err != nil {
		return nil, fmt.Errorf("load shops: %w", err)
	}

	nearby := query.WithinRadius(shops, origin, s.radiusKm)
	s.logger.Debug("Catalog", "Nearby shop lookup", map[string]interface{}{
		"shops":   len(shops),
		"matched": len(nearby),
	})
	return nearby, nil
}

func (s *catalogService) TopProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.products(ctx)
	if err != nil {
		return nil, err
	}
	return query.TopN(products, s.topLimit), nil
}
