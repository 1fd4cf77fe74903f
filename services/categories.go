package services

import "github.com/jo-carlos-borges/pantry-tracker/models"

// CategoriesAPI is what the categories service needs from a backend.
type CategoriesAPI interface {
	GetCategories() ([]models.Category, error)
	CreateCategory(name string) (*models.Category, error)
	UpdateCategory(id int, name string) (*models.Category, error)
	DeleteCategory(id int) error
}

// CategoriesService forwards category calls to the backend unchanged.
type CategoriesService struct {
	api CategoriesAPI
}

func NewCategoriesService(api CategoriesAPI) *CategoriesService {
	return &CategoriesService{api: api}
}

func (s *CategoriesService) GetCategories() ([]models.Category, error) {
	return s.api.GetCategories()
}

func (s *CategoriesService) CreateCategory(name string) (*models.Category, error) {
	return s.api.CreateCategory(name)
}

func (s *CategoriesService) UpdateCategory(id int, name string) (*models.Category, error) {
	return s.api.UpdateCategory(id, name)
}

func (s *CategoriesService) DeleteCategory(id int) error {
	return s.api.DeleteCategory(id)
}
