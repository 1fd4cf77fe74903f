package models

import "fmt"

// Priority ranks how urgently an item needs restocking.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Rank returns the sort position of the priority: HIGH sorts before
// MEDIUM, MEDIUM before LOW. Unknown values sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// ParsePriority validates a raw priority string.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s), nil
	}
	return "", fmt.Errorf("invalid priority %q", s)
}

// Item represents a tracked pantry good.
//
// Category and Prices are populated only on enriched reads (item detail,
// update, add-price); list reads return the raw record with both unset.
type Item struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Quantity   int      `json:"quantity"`
	Priority   Priority `json:"priority"`
	CategoryID int      `json:"categoryId"`

	Category *Category `json:"category,omitempty"`
	Prices   []Price   `json:"prices,omitempty"`
}

// ItemInput holds the caller-supplied fields of a new item.
type ItemInput struct {
	Name       string   `json:"name"`
	Quantity   int      `json:"quantity"`
	Priority   Priority `json:"priority"`
	CategoryID int      `json:"categoryId"`
}

// ItemUpdate holds a partial update: nil fields are left untouched,
// non-nil fields overwrite the stored record.
type ItemUpdate struct {
	Name       *string   `json:"name,omitempty"`
	Quantity   *int      `json:"quantity,omitempty"`
	Priority   *Priority `json:"priority,omitempty"`
	CategoryID *int      `json:"categoryId,omitempty"`
}
