package service

import (
	"context"
	"testing"
	"time"

	"storefront-bot/internal/entity"
	"storefront-bot/internal/pkg/logger"
	"storefront-bot/pkg/query"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore() *fakeStore {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &fakeStore{
		products: []*entity.Product{
			{Id: uuid.New(), Name: "Makita Drill DF333D", PriceHKD: 1200, CategoryType: 1, HotCount: 4, CreatedAt: base},
			{Id: uuid.New(), Name: "Makita Jigsaw", PriceHKD: 650, CategoryType: 2, HotCount: 9, CreatedAt: base.Add(time.Hour)},
			{Id: uuid.New(), Name: "Bosch Sander", PriceHKD: 900, CategoryType: 3, HotCount: 4, CreatedAt: base.Add(2 * time.Hour)},
		},
		shops: []*entity.Shop{
			{Id: uuid.New(), Name: "Tsim Sha Tsui", Latitude: 22.3135, Longitude: 114.17},
			{Id: uuid.New(), Name: "Causeway Bay", Latitude: 22.2783, Longitude: 114.1747},
		},
		questions: []*entity.Question{
			{Id: uuid.New(), Question: "How long is the warranty?", Answer: "One year."},
			{Id: uuid.New(), Question: "Do you deliver?", Answer: "Yes."},
		},
	}
}

func TestCatalogService_Search(t *testing.T) {
	svc := NewCatalogService(&fakeFactory{seededStore()}, 2, 5, logger.NewNopLogger())
	ctx := context.Background()

	byName, err := svc.SearchByName(ctx, "MAKITA")
	require.NoError(t, err)
	require.Len(t, byName, 2)
	assert.Equal(t, "Makita Drill DF333D", byName[0].Name)

	ranged, err := svc.SearchByNameAndPrice(ctx, "makita", query.PriceRange{Min: 600, Max: 700})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, "Makita Jigsaw", ranged[0].Name)

	questions, err := svc.SearchQuestions(ctx, "warranty")
	require.NoError(t, err)
	require.Len(t, questions, 1)
}

func TestCatalogService_NearbyShops(t *testing.T) {
	svc := NewCatalogService(&fakeFactory{seededStore()}, 2, 5, logger.NewNopLogger())

	shops, err := svc.NearbyShops(context.Background(), query.Point{Latitude: 22.3193, Longitude: 114.1694})
	require.NoError(t, err)
	require.Len(t, shops, 1)
	assert.Equal(t, "Tsim Sha Tsui", shops[0].Name)
	assert.Equal(t, 2.0, svc.RadiusKm())
}

func TestCatalogService_TopProducts(t *testing.T) {
	svc := NewCatalogService(&fakeFactory{seededStore()}, 2, 2, logger.NewNopLogger())

	top, err := svc.TopProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Makita Jigsaw", top[0].Name)
	// Ties keep snapshot order.
	assert.Equal(t, "Makita Drill DF333D", top[1].Name)
}

func TestCatalogService_StoreFailure(t *testing.T) {
	store := seededStore()
	store.failReads = true
	svc := NewCatalogService(&fakeFactory{store}, 0, 0, logger.NewNopLogger())

	_, err := svc.SearchByName(context.Background(), "makita")
	assert.ErrorIs(t, err, errStore)
	_, err = svc.NearbyShops(context.Background(), query.Point{})
	assert.ErrorIs(t, err, errStore)
}
