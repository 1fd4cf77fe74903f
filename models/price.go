package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price is a timestamped observation of an item's cost at a store.
// Records are immutable once created: they are only appended and
// cascade-deleted with their item, never updated.
type Price struct {
	ID       int             `json:"id"`
	Value    decimal.Decimal `json:"value"`
	StoreURL string          `json:"storeUrl"`
	Date     time.Time       `json:"date"`
	ItemID   int             `json:"itemId"`
}

// PriceInput holds the caller-supplied fields of a new price
// observation. ID and Date are assigned at creation.
type PriceInput struct {
	Value    decimal.Decimal `json:"value"`
	StoreURL string          `json:"storeUrl"`
}
