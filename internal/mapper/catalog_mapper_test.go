package mapper

import (
	"testing"
	"time"

	"storefront-bot/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestProductMapper_NilSafe(t *testing.T) {
	m := NewProductMapper()
	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
	assert.Empty(t, m.ToEntities(nil))
}

func TestProductMapper_KeepsHotCount(t *testing.T) {
	m := NewProductMapper()
	p := &entity.Product{Id: uuid.New(), Name: "Drill", PriceHKD: 800, CategoryType: 1, HotCount: 12, CreatedAt: time.Now()}

	got := m.ToEntity(m.ToModel(p))
	assert.Equal(t, p, got)
}

func TestShopMapper_Coordinates(t *testing.T) {
	m := NewShopMapper()
	s := &entity.Shop{Id: uuid.New(), Name: "Mong Kok", Latitude: 22.3193, Longitude: 114.1694}

	mdl := m.ToModel(s)
	assert.Equal(t, 22.3193, mdl.Latitude)
	assert.Equal(t, 114.1694, mdl.Longitude)
}
