package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"breakfast-shop/internal/domain"
	"breakfast-shop/internal/hub"
	"breakfast-shop/internal/orders"
)

// Handler upgrades requests on the realtime endpoint and runs one session
// per connection.
type Handler struct {
	registry *hub.Registry
	orders   *orders.Service
	log      *zap.Logger
	upgrader websocket.Upgrader
}

func NewHandler(registry *hub.Registry, svc *orders.Service, log *zap.Logger) *Handler {
	return &Handler{
		registry: registry,
		orders:   svc,
		log:      log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Auth and origin policy sit in the surrounding session layer.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("upgrade_failed", zap.Error(err))
		return
	}

	s := newSession(uuid.New().String(), conn, h.log)
	h.log.Info("connection_opened", zap.String("conn_id", s.id))

	go s.writePump()
	h.readLoop(r, s)
}

// readLoop processes inbound frames until the connection drops, then runs
// the disconnect hook so every shop membership is cleaned up.
func (h *Handler) readLoop(r *http.Request, s *session) {
	defer func() {
		h.registry.OnDisconnect(s.id)
		close(s.done)
		h.log.Info("connection_closed", zap.String("conn_id", s.id))
	}()

	s.conn.SetReadLimit(64 << 10)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			return
		}
		var frame clientFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			s.reply(resultFrame{Method: frame.Method, OK: false, Error: "invalid frame"})
			continue
		}
		h.dispatch(r, s, frame)
	}
}

func (h *Handler) dispatch(r *http.Request, s *session, frame clientFrame) {
	switch frame.Method {
	case methodJoinShop:
		ok := h.registry.Join(s, frame.ShopID)
		s.reply(resultFrame{ID: frame.ID, Method: frame.Method, OK: ok})

	case methodLeaveShop:
		h.registry.Leave(s.id, frame.ShopID)
		s.reply(resultFrame{ID: frame.ID, Method: frame.Method, OK: true})

	case methodCreateOrder:
		if frame.Order == nil {
			s.Deliver(domain.NewErrorEvent(orders.ErrInvalidShop.Error()))
			return
		}
		// Outcome reaches the caller as an orderChanged event (error or
		// created), matching the subscriber-side shape.
		_, _ = h.orders.CreateOrder(r.Context(), s, *frame.Order)

	case methodUpdateOrderStatus:
		status, err := h.orders.UpdateOrderStatus(r.Context(), s, frame.ShopID, frame.OrderID, frame.Status)
		if err != nil {
			s.reply(resultFrame{ID: frame.ID, Method: frame.Method, OK: false, Error: err.Error()})
			return
		}
		s.reply(resultFrame{ID: frame.ID, Method: frame.Method, OK: true, Status: string(status)})

	default:
		s.reply(resultFrame{ID: frame.ID, Method: frame.Method, OK: false, Error: "unknown method"})
	}
}
