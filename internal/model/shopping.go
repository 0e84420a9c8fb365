package model

import "time"

type ShoppingItem struct {
	ID         int       `json:"id" db:"id"`
	EventID    int       `json:"-" db:"event_id"`
	CategoryID *int      `json:"categoryId,omitempty" db:"category_id"`
	Name       string    `json:"name" db:"name"`
	Quantity   float64   `json:"quantity" db:"quantity"`
	Unit       string    `json:"unit" db:"unit"`
	Purchased  bool      `json:"purchased" db:"purchased"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`

	CategoryName *string `json:"categoryName,omitempty" db:"-"`
}

type UpdateShoppingItemParams struct {
	Name       *string
	Quantity   *float64
	Unit       *string
	CategoryID *int
	Purchased  *bool
}

// Category and SuggestedItem are global reference data shared by all
// events, used to group the shopping list and pre-populate it.
type Category struct {
	ID        int    `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	SortOrder int    `json:"sortOrder" db:"sort_order"`
}

type SuggestedItem struct {
	ID         int    `json:"id" db:"id"`
	CategoryID int    `json:"categoryId" db:"category_id"`
	Name       string `json:"name" db:"name"`
	Unit       string `json:"unit" db:"unit"`
}
