package mockapi

import (
	"github.com/jo-carlos-borges/pantry-tracker/models"
	"github.com/jo-carlos-borges/pantry-tracker/storage"
)

// GetCategories returns the raw category collection.
func (a *API) GetCategories() ([]models.Category, error) {
	a.delayOp()
	return storage.GetData[models.Category](a.store, storage.KeyCategories)
}

// CreateCategory assigns the next id and appends the category.
func (a *API) CreateCategory(name string) (*models.Category, error) {
	a.delayOp()

	categories, err := storage.GetData[models.Category](a.store, storage.KeyCategories)
	if err != nil {
		return nil, err
	}

	category := models.Category{
		ID:   nextID(categories, func(c models.Category) int { return c.ID }),
		Name: name,
	}
	categories = append(categories, category)
	if err := storage.SaveData(a.store, storage.KeyCategories, categories); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames an existing category.
func (a *API) UpdateCategory(id int, name string) (*models.Category, error) {
	a.delayOp()

	categories, err := storage.GetData[models.Category](a.store, storage.KeyCategories)
	if err != nil {
		return nil, err
	}

	for i := range categories {
		if categories[i].ID == id {
			categories[i].Name = name
			if err := storage.SaveData(a.store, storage.KeyCategories, categories); err != nil {
				return nil, err
			}
			return &categories[i], nil
		}
	}
	return nil, models.ErrCategoryNotFound
}

// DeleteCategory removes a category. The in-use check runs before the
// existence check: a referenced id always reports the in-use error.
func (a *API) DeleteCategory(id int) error {
	a.delayOp()

	items, err := storage.GetData[models.Item](a.store, storage.KeyItems)
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.CategoryID == id {
			return models.ErrCategoryInUse
		}
	}

	categories, err := storage.GetData[models.Category](a.store, storage.KeyCategories)
	if err != nil {
		return err
	}
	for i := range categories {
		if categories[i].ID == id {
			categories = append(categories[:i], categories[i+1:]...)
			return storage.SaveData(a.store, storage.KeyCategories, categories)
		}
	}
	return models.ErrCategoryNotFound
}
