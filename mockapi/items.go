package mockapi

import (
	"github.com/jo-carlos-borges/pantry-tracker/models"
	"github.com/jo-carlos-borges/pantry-tracker/storage"
)

// GetItems returns the raw item collection, without enrichment.
func (a *API) GetItems() ([]models.Item, error) {
	a.delayOp()
	return storage.GetData[models.Item](a.store, storage.KeyItems)
}

// GetItemByID returns one item enriched with its price history and its
// resolved category. The category is nil when it was deleted after the
// item was created.
func (a *API) GetItemByID(id int) (*models.Item, error) {
	a.delayOp()

	items, err := storage.GetData[models.Item](a.store, storage.KeyItems)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == id {
			return a.enrich(item)
		}
	}
	return nil, models.ErrItemNotFound
}

// CreateItem assigns the next id, appends the item and returns the raw
// created record.
func (a *API) CreateItem(input models.ItemInput) (*models.Item, error) {
	a.delayOp()

	items, err := storage.GetData[models.Item](a.store, storage.KeyItems)
	if err != nil {
		return nil, err
	}

	item := models.Item{
		ID:         nextID(items, func(i models.Item) int { return i.ID }),
		Name:       input.Name,
		Quantity:   input.Quantity,
		Priority:   input.Priority,
		CategoryID: input.CategoryID,
	}
	items = append(items, item)
	if err := storage.SaveData(a.store, storage.KeyItems, items); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem merges the non-nil fields of the update into the stored
// record and returns the enriched result.
func (a *API) UpdateItem(id int, update models.ItemUpdate) (*models.Item, error) {
	a.delayOp()

	items, err := storage.GetData[models.Item](a.store, storage.KeyItems)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, models.ErrItemNotFound
	}

	if update.Name != nil {
		items[idx].Name = *update.Name
	}
	if update.Quantity != nil {
		items[idx].Quantity = *update.Quantity
	}
	if update.Priority != nil {
		items[idx].Priority = *update.Priority
	}
	if update.CategoryID != nil {
		items[idx].CategoryID = *update.CategoryID
	}

	if err := storage.SaveData(a.store, storage.KeyItems, items); err != nil {
		return nil, err
	}
	return a.enrich(items[idx])
}

// DeleteItem removes the item and cascades the delete to every price
// recorded against it.
func (a *API) DeleteItem(id int) error {
	a.delayOp()

	items, err := storage.GetData[models.Item](a.store, storage.KeyItems)
	if err != nil {
		return err
	}

	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.ErrItemNotFound
	}

	items = append(items[:idx], items[idx+1:]...)
	if err := storage.SaveData(a.store, storage.KeyItems, items); err != nil {
		return err
	}

	prices, err := storage.GetData[models.Price](a.store, storage.KeyPrices)
	if err != nil {
		return err
	}
	kept := prices[:0]
	for _, p := range prices {
		if p.ItemID != id {
			kept = append(kept, p)
		}
	}
	return storage.SaveData(a.store, storage.KeyPrices, kept)
}

// AddPriceToItem records a new price observation against an existing
// item. The date is assigned server-side; the record is immutable from
// then on. Returns the item enriched with the updated price list.
func (a *API) AddPriceToItem(itemID int, input models.PriceInput) (*models.Item, error) {
	a.delayOp()

	items, err := storage.GetData[models.Item](a.store, storage.KeyItems)
	if err != nil {
		return nil, err
	}

	var item *models.Item
	for i := range items {
		if items[i].ID == itemID {
			item = &items[i]
			break
		}
	}
	if item == nil {
		return nil, models.ErrItemNotFound
	}

	prices, err := storage.GetData[models.Price](a.store, storage.KeyPrices)
	if err != nil {
		return nil, err
	}
	price := models.Price{
		ID:       nextID(prices, func(p models.Price) int { return p.ID }),
		Value:    input.Value,
		StoreURL: input.StoreURL,
		Date:     a.now(),
		ItemID:   itemID,
	}
	prices = append(prices, price)
	if err := storage.SaveData(a.store, storage.KeyPrices, prices); err != nil {
		return nil, err
	}

	return a.enrich(*item)
}

// enrich resolves the prices and the category of an item.
func (a *API) enrich(item models.Item) (*models.Item, error) {
	prices, err := storage.GetData[models.Price](a.store, storage.KeyPrices)
	if err != nil {
		return nil, err
	}
	item.Prices = []models.Price{}
	for _, p := range prices {
		if p.ItemID == item.ID {
			item.Prices = append(item.Prices, p)
		}
	}

	categories, err := storage.GetData[models.Category](a.store, storage.KeyCategories)
	if err != nil {
		return nil, err
	}
	item.Category = nil
	for i := range categories {
		if categories[i].ID == item.CategoryID {
			item.Category = &categories[i]
			break
		}
	}
	return &item, nil
}
