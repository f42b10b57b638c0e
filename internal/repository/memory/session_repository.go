package memory

import (
	"strconv"
	"sync"
	"time"

	"storefront-bot/pkg/store"

	"github.com/patrickmn/go-cache"
)

const sessionLockShards = 64

type SessionRepository struct {
	cache *cache.Cache
	locks [sessionLockShards]sync.Mutex
	now   func() time.Time
}

func NewSessionRepository() *SessionRepository {
	return NewSessionRepositoryWithClock(time.Now)
}

// NewSessionRepositoryWithClock lets tests pin the time used for new sessions and Touch.
func NewSessionRepositoryWithClock(now func() time.Time) *SessionRepository {
	// Sessions live for the whole process; inactivity is judged from LastActivity.
	c := cache.New(cache.NoExpiration, 0)
	return &SessionRepository{
		cache: c,
		now:   now,
	}
}

func (r *SessionRepository) key(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}

func (r *SessionRepository) lockFor(chatID int64) *sync.Mutex {
	idx := chatID % sessionLockShards
	if idx < 0 {
		idx = -idx
	}
	return &r.locks[idx]
}

// load must be called with the chat's lock held.
func (r *SessionRepository) load(chatID int64) *store.Session {
	if x, found := r.cache.Get(r.key(chatID)); found {
		return x.(*store.Session)
	}
	s := &store.Session{
		ChatID:       chatID,
		LastActivity: r.now(),
		Pending:      store.PendingNone,
	}
	r.cache.Set(r.key(chatID), s, cache.NoExpiration)
	return s
}

func (r *SessionRepository) Get(chatID int64) store.Session {
	mu := r.lockFor(chatID)
	mu.Lock()
	defer mu.Unlock()

	return *r.load(chatID)
}

func (r *SessionRepository) Touch(chatID int64) {
	r.Update(chatID, func(s *store.Session) {
		s.LastActivity = r.now()
	})
}

func (r *SessionRepository) SetPending(chatID int64, action store.PendingAction) {
	r.Update(chatID, func(s *store.Session) {
		s.Pending = action
	})
}

func (r *SessionRepository) ClearPending(chatID int64) {
	r.SetPending(chatID, store.PendingNone)
}

// Update applies fn to the chat's session atomically and returns the stored result.
func (r *SessionRepository) Update(chatID int64, fn func(s *store.Session)) store.Session {
	mu := r.lockFor(chatID)
	mu.Lock()
	defer mu.Unlock()

	s := r.load(chatID)
	fn(s)
	s.ChatID = chatID
	return *s
}

// Count is the number of chats seen since start.
func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}
