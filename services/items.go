package services

import "github.com/jo-carlos-borges/pantry-tracker/models"

// ItemsAPI is what the items service needs from a backend.
type ItemsAPI interface {
	GetItems() ([]models.Item, error)
	GetItemByID(id int) (*models.Item, error)
	CreateItem(input models.ItemInput) (*models.Item, error)
	UpdateItem(id int, update models.ItemUpdate) (*models.Item, error)
	DeleteItem(id int) error
	AddPriceToItem(itemID int, input models.PriceInput) (*models.Item, error)
}

// ItemsService forwards item calls to the backend unchanged.
type ItemsService struct {
	api ItemsAPI
}

func NewItemsService(api ItemsAPI) *ItemsService {
	return &ItemsService{api: api}
}

func (s *ItemsService) GetItems() ([]models.Item, error) {
	return s.api.GetItems()
}

func (s *ItemsService) GetItemByID(id int) (*models.Item, error) {
	return s.api.GetItemByID(id)
}

func (s *ItemsService) CreateItem(input models.ItemInput) (*models.Item, error) {
	return s.api.CreateItem(input)
}

func (s *ItemsService) UpdateItem(id int, update models.ItemUpdate) (*models.Item, error) {
	return s.api.UpdateItem(id, update)
}

func (s *ItemsService) DeleteItem(id int) error {
	return s.api.DeleteItem(id)
}

func (s *ItemsService) AddPriceToItem(itemID int, input models.PriceInput) (*models.Item, error) {
	return s.api.AddPriceToItem(itemID, input)
}
