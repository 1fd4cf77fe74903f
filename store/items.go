// Package store holds the reactive state of the application: one store
// per area, each with its in-memory cache, a loading flag and the last
// error message. Caches are only mutated after a backend call succeeds.
package store

import (
	"sort"
	"sync"

	"github.com/jo-carlos-borges/pantry-tracker/models"
)

// ItemsBackend is what the items store needs from the service layer.
type ItemsBackend interface {
	GetItems() ([]models.Item, error)
	GetItemByID(id int) (*models.Item, error)
	CreateItem(input models.ItemInput) (*models.Item, error)
	UpdateItem(id int, update models.ItemUpdate) (*models.Item, error)
	DeleteItem(id int) error
	AddPriceToItem(itemID int, input models.PriceInput) (*models.Item, error)
}

// LowStockThreshold is the quantity at or below which an item counts as
// low stock.
const LowStockThreshold = 2

// ItemsStore caches the item collection and the currently viewed item.
type ItemsStore struct {
	mu  sync.RWMutex
	svc ItemsBackend

	items   []models.Item
	current *models.Item
	loading bool
	err     string
}

func NewItemsStore(svc ItemsBackend) *ItemsStore {
	return &ItemsStore{svc: svc}
}

// Items returns a snapshot of the cached collection.
func (s *ItemsStore) Items() []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Current returns the currently viewed item, or nil.
func (s *ItemsStore) Current() *models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// Loading reports whether an action is in flight.
func (s *ItemsStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the message of the last failed action, or "".
func (s *ItemsStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// SortedByPriority returns the cached items ordered HIGH, MEDIUM, LOW.
// The sort is stable: items of equal priority keep their cache order.
// Recomputed from the cache on every call, never stored.
func (s *ItemsStore) SortedByPriority() []models.Item {
	out := s.Items()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	return out
}

// GroupedByCategory maps each category id to its items, preserving the
// cache order inside every group.
func (s *ItemsStore) GroupedByCategory() map[int][]models.Item {
	grouped := make(map[int][]models.Item)
	for _, item := range s.Items() {
		grouped[item.CategoryID] = append(grouped[item.CategoryID], item)
	}
	return grouped
}

// LowStock returns the cached items with quantity at or below the
// threshold.
func (s *ItemsStore) LowStock() []models.Item {
	var out []models.Item
	for _, item := range s.Items() {
		if item.Quantity <= LowStockThreshold {
			out = append(out, item)
		}
	}
	return out
}

// FetchItems replaces the cache with the backend's item list.
func (s *ItemsStore) FetchItems() bool {
	s.begin()
	items, err := s.svc.GetItems()
	if err != nil {
		s.fail(err)
		return false
	}
	s.mu.Lock()
	s.items = items
	s.loading = false
	s.mu.Unlock()
	return true
}

// FetchItemByID loads one enriched item into the current slot.
func (s *ItemsStore) FetchItemByID(id int) *models.Item {
	s.begin()
	item, err := s.svc.GetItemByID(id)
	if err != nil {
		s.fail(err)
		return nil
	}
	s.mu.Lock()
	s.current = item
	s.loading = false
	s.mu.Unlock()
	return item
}

// AddItem creates an item and appends it to the cache.
func (s *ItemsStore) AddItem(input models.ItemInput) *models.Item {
	s.begin()
	item, err := s.svc.CreateItem(input)
	if err != nil {
		s.fail(err)
		return nil
	}
	s.mu.Lock()
	s.items = append(s.items, *item)
	s.loading = false
	s.mu.Unlock()
	return item
}

// UpdateItem applies a partial update and replaces the cached record.
func (s *ItemsStore) UpdateItem(id int, update models.ItemUpdate) *models.Item {
	s.begin()
	item, err := s.svc.UpdateItem(id, update)
	if err != nil {
		s.fail(err)
		return nil
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i] = *item
			break
		}
	}
	if s.current != nil && s.current.ID == id {
		s.current = item
	}
	s.loading = false
	s.mu.Unlock()
	return item
}

// DeleteItem removes an item from the backend and the cache.
func (s *ItemsStore) DeleteItem(id int) bool {
	s.begin()
	if err := s.svc.DeleteItem(id); err != nil {
		s.fail(err)
		return false
	}
	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	s.loading = false
	s.mu.Unlock()
	return true
}

// AddPriceToItem records a price and replaces the cached record with
// the enriched result.
func (s *ItemsStore) AddPriceToItem(itemID int, input models.PriceInput) *models.Item {
	s.begin()
	item, err := s.svc.AddPriceToItem(itemID, input)
	if err != nil {
		s.fail(err)
		return nil
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i] = *item
			break
		}
	}
	if s.current != nil && s.current.ID == itemID {
		s.current = item
	}
	s.loading = false
	s.mu.Unlock()
	return item
}

func (s *ItemsStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *ItemsStore) fail(err error) {
	s.mu.Lock()
	s.err = err.Error()
	s.loading = false
	s.mu.Unlock()
}
