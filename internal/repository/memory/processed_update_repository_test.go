package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProcessedUpdateRepository_FirstOnly(t *testing.T) {
	repo := NewProcessedUpdateRepository(time.Hour)
	ctx := context.Background()

	first, err := repo.MarkProcessed(ctx, 100)
	assert.NoError(t, err)
	assert.True(t, first)

	again, _ := repo.MarkProcessed(ctx, 100)
	assert.False(t, again)

	other, _ := repo.MarkProcessed(ctx, 101)
	assert.True(t, other)
}

func TestProcessedUpdateRepository_Concurrent(t *testing.T) {
	repo := NewProcessedUpdateRepository(time.Hour)
	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := repo.MarkProcessed(context.Background(), 7); ok {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins)
}

func TestProcessedUpdateRepository_Expires(t *testing.T) {
	repo := NewProcessedUpdateRepository(20 * time.Millisecond)
	ctx := context.Background()

	first, _ := repo.MarkProcessed(ctx, 5)
	assert.True(t, first)

	time.Sleep(40 * time.Millisecond)
	again, _ := repo.MarkProcessed(ctx, 5)
	assert.True(t, again)
}
