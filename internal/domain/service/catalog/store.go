package catalog

import (
	"sync"
	"time"

	"gamedeals/internal/domain/entity"
	"gamedeals/internal/domain/value"
	"gamedeals/pkg/lox"
)

// Store holds the loaded deal list. A load swaps the whole list; a metadata
// merge replaces exactly one entry by id.
type Store struct {
	mu       sync.RWMutex
	deals    []entity.Deal
	index    map[value.DealID]int
	loadedAt time.Time
}

func NewStore() *Store {
	return &Store{
		index: map[value.DealID]int{},
	}
}

func (s *Store) Replace(deals []entity.Deal) {
	deals = append([]entity.Deal(nil), deals...)

	index := lox.IndexBy(deals, func(deal entity.Deal) (value.DealID, bool) {
		return deal.ID, deal.ID != ""
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	s.deals = deals
	s.index = index
	s.loadedAt = time.Now()
}

// All returns a snapshot of the list in load order.
func (s *Store) All() []entity.Deal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]entity.Deal(nil), s.deals...)
}

func (s *Store) Get(id value.DealID) (entity.Deal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return entity.Deal{}, false
	}

	return s.deals[i], true
}

// Update replaces the entry with the same id. It reports false when the id
// is not part of the current list, e.g. after the list was reloaded.
func (s *Store) Update(deal entity.Deal) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[deal.ID]
	if !ok {
		return false
	}

	s.deals[i] = deal

	return true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.deals)
}

// LoadedAt returns the time of the last Replace, zero before the first load.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadedAt
}
