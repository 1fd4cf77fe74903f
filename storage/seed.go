package storage

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jo-carlos-borges/pantry-tracker/models"
)

// DemoEmail is the address of the seeded demo account. It is the only
// account the mock backend lets in with an arbitrary password.
const DemoEmail = "demo@example.com"

// Seed writes the default dataset into every collection key that is
// completely absent. Present keys are left untouched, even when their
// content is partial or unparseable, so seeding is idempotent and never
// merges.
func Seed(s Store, now time.Time) error {
	if absent, err := missing(s, KeyUsers); err != nil {
		return err
	} else if absent {
		users := []models.User{
			{ID: 1, Username: "demo", Email: DemoEmail},
		}
		if err := SaveData(s, KeyUsers, users); err != nil {
			return err
		}
	}

	if absent, err := missing(s, KeyCategories); err != nil {
		return err
	} else if absent {
		categories := []models.Category{
			{ID: 1, Name: "Dairy"},
			{ID: 2, Name: "Fruits"},
			{ID: 3, Name: "Vegetables"},
			{ID: 4, Name: "Grains"},
			{ID: 5, Name: "Canned Goods"},
		}
		if err := SaveData(s, KeyCategories, categories); err != nil {
			return err
		}
	}

	if absent, err := missing(s, KeyItems); err != nil {
		return err
	} else if absent {
		items := []models.Item{
			{ID: 1, Name: "Milk", Quantity: 1, Priority: models.PriorityHigh, CategoryID: 1},
			{ID: 2, Name: "Apples", Quantity: 5, Priority: models.PriorityMedium, CategoryID: 2},
			{ID: 3, Name: "Rice", Quantity: 2, Priority: models.PriorityLow, CategoryID: 4},
			{ID: 4, Name: "Canned Beans", Quantity: 4, Priority: models.PriorityLow, CategoryID: 5},
			{ID: 5, Name: "Carrots", Quantity: 6, Priority: models.PriorityMedium, CategoryID: 3},
		}
		if err := SaveData(s, KeyItems, items); err != nil {
			return err
		}
	}

	if absent, err := missing(s, KeyPrices); err != nil {
		return err
	} else if absent {
		lastWeek := now.AddDate(0, 0, -7)
		twoWeeksAgo := now.AddDate(0, 0, -14)
		prices := []models.Price{
			{ID: 1, Value: decimal.NewFromFloat(3.99), StoreURL: "https://store-a.com", Date: now, ItemID: 1},
			{ID: 2, Value: decimal.NewFromFloat(4.29), StoreURL: "https://store-b.com", Date: lastWeek, ItemID: 1},
			{ID: 3, Value: decimal.NewFromFloat(4.49), StoreURL: "https://store-c.com", Date: twoWeeksAgo, ItemID: 1},
			{ID: 4, Value: decimal.NewFromFloat(2.99), StoreURL: "https://store-a.com", Date: now, ItemID: 2},
			{ID: 5, Value: decimal.NewFromFloat(1.49), StoreURL: "https://store-b.com", Date: now, ItemID: 3},
		}
		if err := SaveData(s, KeyPrices, prices); err != nil {
			return err
		}
	}

	return nil
}

func missing(s Store, key string) (bool, error) {
	_, ok, err := s.Load(key)
	if err != nil {
		return false, err
	}
	return !ok, nil
}
