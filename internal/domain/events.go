package domain

import "time"

// Event envelope types pushed to subscribed connections as "orderChanged".
// Envelopes are transient: they are built only after the underlying write
// has committed and are never persisted.
const (
	EventCreated       = "created"
	EventStatusChanged = "statusChanged"
	EventError         = "error"
)

type EventItem struct {
	MealID string  `json:"mealId"`
	Name   string  `json:"name"`
	Qty    int     `json:"qty"`
	Price  float64 `json:"price"`
}

type EventOrder struct {
	ID          string      `json:"id"`
	ShopID      string      `json:"shopId"`
	TableID     string      `json:"tableId"`
	TableNumber int         `json:"tableNumber"`
	TableZone   string      `json:"tableZone"`
	Notes       string      `json:"notes,omitempty"`
	Status      string      `json:"status"`
	OrderType   string      `json:"orderType"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Items       []EventItem `json:"items"`
}

// EventDisplay carries the caller-supplied display fields verbatim so
// subscriber UIs can render without a catalog lookup.
type EventDisplay struct {
	ShopID      string      `json:"shopId"`
	ShopName    string      `json:"shopName,omitempty"`
	TableID     string      `json:"tableId"`
	TableNumber int         `json:"tableNumber"`
	TableZone   string      `json:"tableZone"`
	Notes       string      `json:"notes,omitempty"`
	Items       []EventItem `json:"items"`
}

type StatusOrder struct {
	ID        string    `json:"id"`
	ShopID    string    `json:"shopId"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreatedEvent struct {
	Type  string       `json:"type"`
	Order EventOrder   `json:"order"`
	DTO   EventDisplay `json:"dto"`
	TS    time.Time    `json:"ts"`
}

type StatusChangedEvent struct {
	Type    string      `json:"type"`
	OrderID string      `json:"orderId"`
	Status  string      `json:"status"`
	Order   StatusOrder `json:"order"`
	TS      time.Time   `json:"ts"`
}

type ErrorEvent struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

func NewCreatedEvent(order EventOrder, display EventDisplay, ts time.Time) CreatedEvent {
	return CreatedEvent{Type: EventCreated, Order: order, DTO: display, TS: ts}
}

func NewStatusChangedEvent(orderID, shopID string, status Status, updatedAt time.Time) StatusChangedEvent {
	return StatusChangedEvent{
		Type:    EventStatusChanged,
		OrderID: orderID,
		Status:  string(status),
		Order: StatusOrder{
			ID:        orderID,
			ShopID:    shopID,
			Status:    string(status),
			UpdatedAt: updatedAt,
		},
		TS: updatedAt,
	}
}

func NewErrorEvent(msg string) ErrorEvent {
	return ErrorEvent{Type: EventError, Error: msg}
}
