package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jo-carlos-borges/pantry-tracker/models"
)

// The facade must not add behavior: results and errors pass through
// unchanged. A stub backend is enough to prove it.

type stubBackend struct {
	err     error
	session *models.Session
	item    *models.Item
}

func (s *stubBackend) Login(models.LoginCredentials) (*models.Session, error) {
	return s.session, s.err
}
func (s *stubBackend) Register(models.RegisterData) (*models.Session, error) {
	return s.session, s.err
}
func (s *stubBackend) GetItems() ([]models.Item, error) { return nil, s.err }
func (s *stubBackend) GetItemByID(int) (*models.Item, error) {
	return s.item, s.err
}
func (s *stubBackend) CreateItem(models.ItemInput) (*models.Item, error) {
	return s.item, s.err
}
func (s *stubBackend) UpdateItem(int, models.ItemUpdate) (*models.Item, error) {
	return s.item, s.err
}
func (s *stubBackend) DeleteItem(int) error { return s.err }
func (s *stubBackend) AddPriceToItem(int, models.PriceInput) (*models.Item, error) {
	return s.item, s.err
}
func (s *stubBackend) GetCategories() ([]models.Category, error) { return nil, s.err }
func (s *stubBackend) CreateCategory(string) (*models.Category, error) {
	return nil, s.err
}
func (s *stubBackend) UpdateCategory(int, string) (*models.Category, error) {
	return nil, s.err
}
func (s *stubBackend) DeleteCategory(int) error { return s.err }

func TestFacadePropagatesErrorsUnchanged(t *testing.T) {
	sentinel := errors.New("backend exploded")
	backend := &stubBackend{err: sentinel}

	auth := NewAuthService(backend)
	items := NewItemsService(backend)
	categories := NewCategoriesService(backend)

	_, err := auth.Login(models.LoginCredentials{})
	assert.Same(t, sentinel, err)
	_, err = auth.Register(models.RegisterData{})
	assert.Same(t, sentinel, err)

	_, err = items.GetItems()
	assert.Same(t, sentinel, err)
	_, err = items.GetItemByID(1)
	assert.Same(t, sentinel, err)
	_, err = items.CreateItem(models.ItemInput{})
	assert.Same(t, sentinel, err)
	_, err = items.UpdateItem(1, models.ItemUpdate{})
	assert.Same(t, sentinel, err)
	assert.Same(t, sentinel, items.DeleteItem(1))
	_, err = items.AddPriceToItem(1, models.PriceInput{})
	assert.Same(t, sentinel, err)

	_, err = categories.GetCategories()
	assert.Same(t, sentinel, err)
	_, err = categories.CreateCategory("x")
	assert.Same(t, sentinel, err)
	_, err = categories.UpdateCategory(1, "x")
	assert.Same(t, sentinel, err)
	assert.Same(t, sentinel, categories.DeleteCategory(1))
}

func TestFacadePassesResultsThrough(t *testing.T) {
	session := &models.Session{Token: "t", User: models.User{ID: 1}}
	item := &models.Item{ID: 7, Name: "Milk"}
	backend := &stubBackend{session: session, item: item}

	got, err := NewAuthService(backend).Login(models.LoginCredentials{})
	require.NoError(t, err)
	assert.Same(t, session, got)

	gotItem, err := NewItemsService(backend).GetItemByID(7)
	require.NoError(t, err)
	assert.Same(t, item, gotItem)
}
