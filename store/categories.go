package store

import (
	"sync"

	"github.com/jo-carlos-borges/pantry-tracker/models"
)

// CategoriesBackend is what the categories store needs from the
// service layer.
type CategoriesBackend interface {
	GetCategories() ([]models.Category, error)
	CreateCategory(name string) (*models.Category, error)
	UpdateCategory(id int, name string) (*models.Category, error)
	DeleteCategory(id int) error
}

// CategoriesStore caches the category collection.
type CategoriesStore struct {
	mu  sync.RWMutex
	svc CategoriesBackend

	categories []models.Category
	loading    bool
	err        string
}

func NewCategoriesStore(svc CategoriesBackend) *CategoriesStore {
	return &CategoriesStore{svc: svc}
}

// Categories returns a snapshot of the cached collection.
func (s *CategoriesStore) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *CategoriesStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *CategoriesStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// FetchCategories replaces the cache with the backend's category list.
func (s *CategoriesStore) FetchCategories() bool {
	s.begin()
	categories, err := s.svc.GetCategories()
	if err != nil {
		s.fail(err)
		return false
	}
	s.mu.Lock()
	s.categories = categories
	s.loading = false
	s.mu.Unlock()
	return true
}

// AddCategory creates a category and appends it to the cache.
func (s *CategoriesStore) AddCategory(name string) *models.Category {
	s.begin()
	category, err := s.svc.CreateCategory(name)
	if err != nil {
		s.fail(err)
		return nil
	}
	s.mu.Lock()
	s.categories = append(s.categories, *category)
	s.loading = false
	s.mu.Unlock()
	return category
}

// UpdateCategory renames a category and replaces the cached record.
func (s *CategoriesStore) UpdateCategory(id int, name string) *models.Category {
	s.begin()
	category, err := s.svc.UpdateCategory(id, name)
	if err != nil {
		s.fail(err)
		return nil
	}
	s.mu.Lock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i] = *category
			break
		}
	}
	s.loading = false
	s.mu.Unlock()
	return category
}

// DeleteCategory removes a category from the backend and the cache.
func (s *CategoriesStore) DeleteCategory(id int) bool {
	s.begin()
	if err := s.svc.DeleteCategory(id); err != nil {
		s.fail(err)
		return false
	}
	s.mu.Lock()
	kept := s.categories[:0]
	for _, c := range s.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.categories = kept
	s.loading = false
	s.mu.Unlock()
	return true
}

func (s *CategoriesStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *CategoriesStore) fail(err error) {
	s.mu.Lock()
	s.err = err.Error()
	s.loading = false
	s.mu.Unlock()
}
