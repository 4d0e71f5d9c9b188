package ws

import "breakfast-shop/internal/domain"

// Method names on the realtime surface.
const (
	methodJoinShop          = "joinShop"
	methodLeaveShop         = "leaveShop"
	methodCreateOrder       = "createOrder"
	methodUpdateOrderStatus = "updateOrderStatus"
)

// clientFrame is one inbound command. Fields beyond Method are set
// per-method; unknown methods get an error reply.
type clientFrame struct {
	ID      int64                      `json:"id,omitempty"`
	Method  string                     `json:"method"`
	ShopID  string                     `json:"shopId,omitempty"`
	OrderID string                     `json:"orderId,omitempty"`
	Status  string                     `json:"status,omitempty"`
	Order   *domain.CreateOrderRequest `json:"order,omitempty"`
}

// resultFrame answers a command. Events are pushed separately as
// eventFrame; createOrder outcomes arrive as orderChanged events only.
type resultFrame struct {
	ID     int64  `json:"id,omitempty"`
	Method string `json:"method"`
	OK     bool   `json:"ok"`
	Status string `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

type eventFrame struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}
