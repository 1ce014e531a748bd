package handler

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"gamedeals/internal/domain/entity"
	"gamedeals/internal/domain/value"
)

// session is the presentation state of one chat: its filter/sort config, the
// deals last shown and the detail fetch in flight.
type session struct {
	mu            sync.Mutex
	config        entity.FilterSortConfig
	shown         []value.DealID
	cancelDetails context.CancelFunc
	detailsGen    uint64
}

func newSession() *session {
	return &session{config: entity.DefaultFilterSortConfig()}
}

func (s *session) Config() entity.FilterSortConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.config
}

// UpdateConfig applies f to the config and returns the result.
func (s *session) UpdateConfig(f func(cfg *entity.FilterSortConfig)) entity.FilterSortConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	f(&s.config)

	return s.config
}

func (s *session) SetShown(deals []entity.Deal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shown = make([]value.DealID, len(deals))
	for i, deal := range deals {
		s.shown[i] = deal.ID
	}
}

// Shown returns the id of the n-th shown deal, counting from 1.
func (s *session) Shown(n int) (value.DealID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n < 1 || n > len(s.shown) {
		return "", false
	}

	return s.shown[n-1], true
}

// BeginDetails cancels the previous detail fetch of the chat and returns the
// context for the new one. done must be called once the fetch is over.
func (s *session) BeginDetails(ctx context.Context) (context.Context, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelDetails != nil {
		s.cancelDetails()
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancelDetails = cancel
	s.detailsGen++
	gen := s.detailsGen

	done := func() {
		cancel()

		s.mu.Lock()
		defer s.mu.Unlock()

		// A newer fetch may already own the slot.
		if s.detailsGen == gen {
			s.cancelDetails = nil
		}
	}

	return ctx, done
}

// Sessions keeps one session per chat. Idle sessions expire after ttl.
type Sessions struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		cache: cache.New(ttl, ttl),
	}
}

func (s *Sessions) Get(chatID int64) *session {
	key := strconv.FormatInt(chatID, 10)

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.cache.Get(key)
	if !ok {
		sess = newSession()
	}

	// Refresh the expiration on every access.
	s.cache.SetDefault(key, sess)

	return sess.(*session) //nolint:forcetypeassert
}
