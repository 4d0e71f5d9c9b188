package domain

import "time"

const OrderTypeDineIn = "DineIn"

type Order struct {
	ID          string
	ShopID      string
	OrderType   string // only DineIn is produced today
	TableID     string
	TakeoutCode *string
	Notes       string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderItem is immutable once its parent order commits. Name and UnitPrice
// are snapshots taken at order time; later catalog edits do not touch them.
type OrderItem struct {
	ID        string
	OrderID   string
	MealID    string
	Name      string
	Quantity  int
	UnitPrice float64
	Notes     string
}
