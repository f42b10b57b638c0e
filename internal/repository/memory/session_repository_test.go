package memory

import (
	"sync"
	"testing"
	"time"

	"storefront-bot/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSessionRepository_GetCreatesDefault(t *testing.T) {
	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	repo := NewSessionRepositoryWithClock(fixedClock(now))

	s := repo.Get(42)
	assert.Equal(t, int64(42), s.ChatID)
	assert.Equal(t, now, s.LastActivity)
	assert.Equal(t, store.PendingNone, s.Pending)
	assert.Equal(t, 1, repo.Count())

	repo.Get(42)
	assert.Equal(t, 1, repo.Count(), "a chat has exactly one session")
}

func TestSessionRepository_PendingTransitions(t *testing.T) {
	repo := NewSessionRepository()

	repo.SetPending(7, store.AwaitingProductSearch)
	assert.Equal(t, store.AwaitingProductSearch, repo.Get(7).Pending)

	repo.ClearPending(7)
	assert.Equal(t, store.PendingNone, repo.Get(7).Pending)
}

func TestSessionRepository_Touch(t *testing.T) {
	current := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	repo := NewSessionRepositoryWithClock(func() time.Time { return current })

	repo.Get(1)
	current = current.Add(time.Minute)
	repo.Touch(1)

	assert.Equal(t, current, repo.Get(1).LastActivity)
}

func TestSessionRepository_UpdateIsAtomicPerChat(t *testing.T) {
	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	repo := NewSessionRepositoryWithClock(fixedClock(base))

	const writers = 200
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			repo.Update(99, func(s *store.Session) {
				s.LastActivity = s.LastActivity.Add(time.Second)
			})
		}()
	}
	wg.Wait()

	got := repo.Get(99)
	require.Equal(t, int64(99), got.ChatID)
	assert.Equal(t, base.Add(writers*time.Second), got.LastActivity, "no increments lost")
}

func TestSessionRepository_NegativeChatIDs(t *testing.T) {
	repo := NewSessionRepository()
	repo.SetPending(-1001234567890, store.AwaitingQuestionSearch)
	assert.Equal(t, store.AwaitingQuestionSearch, repo.Get(-1001234567890).Pending)
}
