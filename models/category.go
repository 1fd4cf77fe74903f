package models

// Category represents a named grouping for items.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
