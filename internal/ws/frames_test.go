package ws

import (
	"encoding/json"
	"testing"

	"go.uber.org/zap"
)

func TestClientFrameDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want clientFrame
	}{
		{
			"join",
			`{"id":1,"method":"joinShop","shopId":"shop-1"}`,
			clientFrame{ID: 1, Method: methodJoinShop, ShopID: "shop-1"},
		},
		{
			"leave",
			`{"method":"leaveShop","shopId":"shop-9"}`,
			clientFrame{Method: methodLeaveShop, ShopID: "shop-9"},
		},
		{
			"status update",
			`{"id":7,"method":"updateOrderStatus","shopId":"shop-1","orderId":"o-1","status":"Completed"}`,
			clientFrame{ID: 7, Method: methodUpdateOrderStatus, ShopID: "shop-1", OrderID: "o-1", Status: "Completed"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got clientFrame
			if err := json.Unmarshal([]byte(tt.raw), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got != tt.want {
				t.Errorf("frame = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCreateOrderFrameDecode(t *testing.T) {
	raw := `{"method":"createOrder","order":{"shopId":"shop-1","tableId":"t-1","items":[{"mealId":"m1","name":"Toast","qty":2,"price":35}]}}`
	var got clientFrame
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Order == nil {
		t.Fatal("order payload not decoded")
	}
	if got.Order.ShopID != "shop-1" || len(got.Order.Items) != 1 || got.Order.Items[0].Qty != 2 {
		t.Errorf("order payload = %+v", got.Order)
	}
}

// Deliver must never block the publisher, even with no write pump draining
// the buffer.
func TestDeliverNeverBlocks(t *testing.T) {
	s := newSession("c1", nil, zap.NewNop())
	for i := 0; i < sendBuffer*2; i++ {
		s.Deliver(i)
	}
	if len(s.send) != sendBuffer {
		t.Errorf("buffered %d events, want capped at %d", len(s.send), sendBuffer)
	}
}

func TestEnqueueAfterClose(t *testing.T) {
	s := newSession("c1", nil, zap.NewNop())
	close(s.done)
	s.Deliver("ev") // must not panic or block
}
