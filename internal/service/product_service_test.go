package service

import (
	"context"
	"testing"

	"storefront-bot/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_Lifecycle(t *testing.T) {
	store := &fakeStore{}
	rec := &recordingAudit{}
	svc := NewProductService(&fakeFactory{store}, rec)
	ctx := context.Background()

	created, err := svc.Create(ctx, "owner", &dto.CreateProductRequest{Name: "Makita Drill", PriceHKD: 800, CategoryType: 1})
	require.NoError(t, err)

	shown, err := svc.Show(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Drilling & fastening tools", shown.CategoryLabel)

	updated, err := svc.Update(ctx, "owner", &dto.UpdateProductRequest{Id: created.Id, Name: "Makita Drill XL", PriceHKD: 950, CategoryType: 1})
	require.NoError(t, err)
	assert.Equal(t, "Makita Drill XL", updated.Name)
	assert.NotNil(t, updated.UpdatedAt)

	require.NoError(t, svc.Delete(ctx, "owner", created.Id))
	_, err = svc.Show(ctx, created.Id)
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.Equal(t, []string{"product:created:owner", "product:updated:owner", "product:deleted:owner"}, rec.changes)
}

func TestProductService_UpdateKeepsHotCount(t *testing.T) {
	store := &fakeStore{}
	svc := NewProductService(&fakeFactory{store}, &recordingAudit{})
	ctx := context.Background()

	created, err := svc.Create(ctx, "owner", &dto.CreateProductRequest{Name: "Saw", CategoryType: 2})
	require.NoError(t, err)
	require.NoError(t, (&fakeProductRepo{store}).IncrementHot(ctx, created.Id))

	updated, err := svc.Update(ctx, "owner", &dto.UpdateProductRequest{Id: created.Id, Name: "Saw", CategoryType: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.HotCount)
}

func TestProductService_NotFound(t *testing.T) {
	rec := &recordingAudit{}
	svc := NewProductService(&fakeFactory{&fakeStore{}}, rec)
	ctx := context.Background()

	_, err := svc.Update(ctx, "owner", &dto.UpdateProductRequest{Id: uuid.New(), Name: "x", CategoryType: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "owner", uuid.New()), ErrProductNotFound)
	assert.Empty(t, rec.changes)
}

func TestProductService_GetAllPaging(t *testing.T) {
	store := &fakeStore{}
	svc := NewProductService(&fakeFactory{store}, &recordingAudit{})
	ctx := context.Background()
	for _, name := range []string{"a", "b", "c"} {
		_, err := svc.Create(ctx, "owner", &dto.CreateProductRequest{Name: name, CategoryType: 4})
		require.NoError(t, err)
	}

	page, err := svc.GetAll(ctx, dto.PageQuery{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "c", page.Items[0].Name)

	defaults, err := svc.GetAll(ctx, dto.PageQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, defaults.Page)
	assert.Equal(t, 10, defaults.Limit)
}

func TestShopAndQuestionServices(t *testing.T) {
	store := &fakeStore{}
	rec := &recordingAudit{}
	ctx := context.Background()

	shops := NewShopService(&fakeFactory{store}, rec)
	shop, err := shops.Create(ctx, "owner", &dto.CreateShopRequest{Name: "Mong Kok", Address: "1 Nathan Rd", Latitude: 22.3193, Longitude: 114.1694})
	require.NoError(t, err)
	shown, err := shops.Show(ctx, shop.Id)
	require.NoError(t, err)
	assert.Equal(t, "https://maps.google.com/?q=22.3193,114.1694", shown.MapURL)
	_, err = shops.Show(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrShopNotFound)

	questions := NewQuestionService(&fakeFactory{store}, rec)
	q, err := questions.Create(ctx, "owner", &dto.CreateQuestionRequest{Question: "Warranty?", Answer: "One year."})
	require.NoError(t, err)
	updated, err := questions.Update(ctx, "owner", &dto.UpdateQuestionRequest{Id: q.Id, Question: "Warranty?", Answer: "Two years."})
	require.NoError(t, err)
	assert.Equal(t, "Two years.", updated.Answer)
	assert.ErrorIs(t, questions.Delete(ctx, "owner", uuid.New()), ErrQuestionNotFound)

	assert.Equal(t, []string{"shop:created:owner", "question:created:owner", "question:updated:owner"}, rec.changes)
}
