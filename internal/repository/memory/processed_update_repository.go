package memory

import (
	"context"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

type ProcessedUpdateRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewProcessedUpdateRepository(ttl time.Duration) *ProcessedUpdateRepository {
	return &ProcessedUpdateRepository{
		cache: cache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

// MarkProcessed relies on cache.Add failing for a live key, which is atomic.
func (r *ProcessedUpdateRepository) MarkProcessed(_ context.Context, updateID int) (bool, error) {
	err := r.cache.Add(strconv.Itoa(updateID), struct{}{}, r.ttl)
	return err == nil, nil
}
