package implementation

import (
	"context"
	"fmt"
	"time"

	"storefront-bot/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const processedUpdateKeyPrefix = "storefront:tg:update:"

type ProcessedUpdateRepositoryRedis struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewProcessedUpdateRepositoryRedis(rdb redis.Cmdable, ttl time.Duration) contract.ProcessedUpdateRepository {
	return &ProcessedUpdateRepositoryRedis{rdb: rdb, ttl: ttl}
}

func (r *ProcessedUpdateRepositoryRedis) MarkProcessed(ctx context.Context, updateID int) (bool, error) {
	key := fmt.Sprintf("%s%d", processedUpdateKeyPrefix, updateID)
	return r.rdb.SetNX(ctx, key, 1, r.ttl).Result()
}
