package domain

// CreateOrderRequest is the customer-facing order submission payload.
// ShopName, TableNumber and TableZone are display-only and are echoed back
// in the broadcast, never persisted.
type CreateOrderRequest struct {
	ShopID      string            `json:"shopId"`
	ShopName    string            `json:"shopName"`
	TableID     string            `json:"tableId"`
	TableNumber int               `json:"tableNumber"`
	TableZone   string            `json:"tableZone"`
	Notes       string            `json:"notes"`
	Items       []CreateOrderItem `json:"items"`
}

type CreateOrderItem struct {
	MealID string  `json:"mealId"`
	Name   string  `json:"name"`
	Qty    int     `json:"qty"`
	Price  float64 `json:"price"`
	Notes  string  `json:"notes"`
}
