package query

import (
	"testing"

	"storefront-bot/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func product(name string, price int, hot int64) *entity.Product {
	return &entity.Product{Id: uuid.New(), Name: name, PriceHKD: price, HotCount: hot, CategoryType: entity.CategoryDrilling}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lower case", input: "MAKITA", want: "makita"},
		{name: "single inner space", input: "Makita Drill", want: "makitadrill"},
		{name: "every whitespace run", input: "  Bosch \t Impact\nDriver ", want: "boschimpactdriver"},
		{name: "full width space", input: "電鑽　套裝", want: "電鑽套裝"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNameMatch(t *testing.T) {
	drill := product("Makita Drill", 1500, 0)
	saw := product("Makita Saw", 3000, 0)
	sander := product("Bosch Sander", 900, 0)
	snapshot := []*entity.Product{drill, saw, sander}

	t.Run("keeps snapshot order", func(t *testing.T) {
		got := NameMatch(snapshot, "makita")
		assert.Equal(t, []*entity.Product{drill, saw}, got)
	})

	t.Run("whitespace in keyword is ignored", func(t *testing.T) {
		got := NameMatch(snapshot, "MAKITA   DRILL")
		assert.Equal(t, []*entity.Product{drill}, got)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		got := NameMatch(snapshot, "hilti")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("idempotent subset", func(t *testing.T) {
		first := NameMatch(snapshot, "a")
		second := NameMatch(snapshot, "a")
		assert.Equal(t, first, second)
		for _, p := range first {
			assert.Contains(t, snapshot, p)
			assert.Contains(t, Normalize(p.Name), Normalize("a"))
		}
	})

	t.Run("nil entries are skipped", func(t *testing.T) {
		got := NameMatch([]*entity.Product{nil, drill}, "drill")
		assert.Equal(t, []*entity.Product{drill}, got)
	})
}

func TestNameAndPriceMatch(t *testing.T) {
	drill := product("Makita Drill", 1500, 0)
	saw := product("Makita Saw", 3000, 0)
	snapshot := []*entity.Product{drill, saw}

	t.Run("search makita 800 2000 returns only the drill", func(t *testing.T) {
		got := NameAndPriceMatch(snapshot, "makita", PriceRange{Min: 800, Max: 2000})
		assert.Equal(t, []*entity.Product{drill}, got)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		got := NameAndPriceMatch(snapshot, "makita", PriceRange{Min: 1500, Max: 3000})
		assert.Equal(t, []*entity.Product{drill, saw}, got)
	})

	t.Run("never returns outside range", func(t *testing.T) {
		r := PriceRange{Min: 1501, Max: 2999}
		for _, p := range NameAndPriceMatch(snapshot, "makita", r) {
			assert.True(t, r.Includes(p.PriceHKD))
		}
		assert.Empty(t, NameAndPriceMatch(snapshot, "makita", r))
	})
}

func TestQuestionMatch(t *testing.T) {
	warranty := &entity.Question{Id: uuid.New(), Question: "warranty period?", Answer: "12 months"}
	hours := &entity.Question{Id: uuid.New(), Question: "opening hours?", Answer: "10:00-20:00"}

	got := QuestionMatch([]*entity.Question{warranty, hours}, "warranty")
	assert.Equal(t, []*entity.Question{warranty}, got)

	got = QuestionMatch([]*entity.Question{warranty, hours}, "Warranty Period")
	assert.Equal(t, []*entity.Question{warranty}, got)
}
