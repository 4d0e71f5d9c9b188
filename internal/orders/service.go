package orders

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"breakfast-shop/internal/domain"
	"breakfast-shop/internal/hub"
)

// User-facing failures. Store internals are never surfaced.
var (
	ErrInvalidShop       = errors.New("invalid shop")
	ErrInvalidTable      = errors.New("invalid table")
	ErrInvalidItems      = errors.New("item data invalid, please reselect")
	ErrNoItems           = errors.New("select at least one item")
	ErrIncompleteRequest = errors.New("order identifiers required")
	ErrStatusNotAllowed  = errors.New("unsupported status update")
	ErrOrderNotFound     = errors.New("order not found")
	ErrStoreFailure      = errors.New("order could not be processed, please try again")
)

// Bridge mirrors committed order events onto a backend fanout exchange.
// Best-effort: a failed bridge publish is logged, never surfaced.
type Bridge interface {
	PublishOrderEvent(ctx context.Context, shopID string, event any) error
}

// Service runs the order validation pipeline and the status transition gate.
// Events are published only after the corresponding write has committed.
type Service struct {
	store      Store
	dispatcher *hub.Dispatcher
	bridge     Bridge // optional
	log        *zap.Logger

	now   func() time.Time
	newID func() string
}

func NewService(store Store, dispatcher *hub.Dispatcher, bridge Bridge, log *zap.Logger) *Service {
	return &Service{
		store:      store,
		dispatcher: dispatcher,
		bridge:     bridge,
		log:        log,
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}
}

// CreateOrder validates and normalizes req, persists the order atomically
// and broadcasts a created event to the shop's subscribers plus caller. On
// any failure only caller is notified, with an error envelope.
func (s *Service) CreateOrder(ctx context.Context, caller hub.Conn, req domain.CreateOrderRequest) (string, error) {
	if strings.TrimSpace(req.ShopID) == "" {
		return "", s.reject(caller, ErrInvalidShop)
	}
	if strings.TrimSpace(req.TableID) == "" {
		return "", s.reject(caller, ErrInvalidTable)
	}

	items, hasInvalid := normalizeItems(req.Items)
	if hasInvalid {
		// Any malformed item poisons the whole request; partial acceptance
		// is disallowed.
		return "", s.reject(caller, ErrInvalidItems)
	}
	if len(items) == 0 {
		return "", s.reject(caller, ErrNoItems)
	}

	now := s.now().UTC()
	order := domain.Order{
		ID:        s.newID(),
		ShopID:    req.ShopID,
		OrderType: domain.OrderTypeDineIn,
		TableID:   req.TableID,
		Notes:     strings.TrimSpace(req.Notes),
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	rows := make([]domain.OrderItem, len(items))
	for i, item := range items {
		rows[i] = domain.OrderItem{
			ID:        s.newID(),
			OrderID:   order.ID,
			MealID:    item.MealID,
			Name:      item.Name,
			Quantity:  item.Qty,
			UnitPrice: item.Price,
			Notes:     strings.TrimSpace(item.Notes),
		}
	}

	if err := s.store.InsertOrderWithItems(ctx, order, rows); err != nil {
		s.log.Error("order_insert_failed",
			zap.String("shop_id", order.ShopID),
			zap.String("order_id", order.ID),
			zap.Error(err))
		return "", s.reject(caller, ErrStoreFailure)
	}

	event := domain.NewCreatedEvent(eventOrder(order, req, items), eventDisplay(order, req, items), now)
	s.dispatcher.Publish(order.ShopID, caller, event)
	s.publishBridge(ctx, order.ShopID, event)

	s.log.Info("order_created",
		zap.String("shop_id", order.ShopID),
		zap.String("order_id", order.ID),
		zap.Int("items", len(rows)))
	return order.ID, nil
}

// UpdateOrderStatus applies a staff status change. The store update is
// scoped by both order id and shop id, so a zero-row match (wrong id, wrong
// shop, missing order, terminal or otherwise illegal transition) reads as a
// single not-found result without revealing which condition failed.
func (s *Service) UpdateOrderStatus(ctx context.Context, caller hub.Conn, shopID, orderID, status string) (domain.Status, error) {
	if strings.TrimSpace(shopID) == "" || strings.TrimSpace(orderID) == "" {
		return "", ErrIncompleteRequest
	}
	next, ok := domain.ParseStatus(strings.TrimSpace(status))
	if !ok || next == domain.StatusPending {
		return "", ErrStatusNotAllowed
	}

	updatedAt, rows, err := s.store.UpdateOrderStatus(ctx, orderID, shopID, next)
	if err != nil {
		s.log.Error("status_update_failed",
			zap.String("shop_id", shopID),
			zap.String("order_id", orderID),
			zap.Error(err))
		return "", ErrStoreFailure
	}
	if rows == 0 {
		return "", ErrOrderNotFound
	}

	event := domain.NewStatusChangedEvent(orderID, shopID, next, updatedAt)
	s.dispatcher.Publish(shopID, caller, event)
	s.publishBridge(ctx, shopID, event)

	s.log.Info("order_status_changed",
		zap.String("shop_id", shopID),
		zap.String("order_id", orderID),
		zap.String("status", string(next)))
	return next, nil
}

// reject notifies only the caller; nothing was persisted, nothing is
// broadcast.
func (s *Service) reject(caller hub.Conn, err error) error {
	if caller != nil {
		caller.Deliver(domain.NewErrorEvent(err.Error()))
	}
	return err
}

func (s *Service) publishBridge(ctx context.Context, shopID string, event any) {
	if s.bridge == nil {
		return
	}
	if err := s.bridge.PublishOrderEvent(ctx, shopID, event); err != nil {
		s.log.Error("bridge_publish_failed", zap.String("shop_id", shopID), zap.Error(err))
	}
}

// normalizeItems scans every submitted item: blank meal id or name, a
// non-positive quantity or a negative price drops the item and raises the
// invalid flag. The scan never stops at the first bad item. Names are
// trimmed; quantity and price are kept verbatim, never recomputed.
func normalizeItems(in []domain.CreateOrderItem) ([]domain.CreateOrderItem, bool) {
	hasInvalid := false
	out := make([]domain.CreateOrderItem, 0, len(in))
	for _, item := range in {
		name := strings.TrimSpace(item.Name)
		if strings.TrimSpace(item.MealID) == "" || name == "" || item.Qty <= 0 || item.Price < 0 {
			hasInvalid = true
			continue
		}
		item.Name = name
		out = append(out, item)
	}
	return out, hasInvalid
}

func eventItems(items []domain.CreateOrderItem) []domain.EventItem {
	out := make([]domain.EventItem, len(items))
	for i, item := range items {
		out[i] = domain.EventItem{MealID: item.MealID, Name: item.Name, Qty: item.Qty, Price: item.Price}
	}
	return out
}

func eventOrder(order domain.Order, req domain.CreateOrderRequest, items []domain.CreateOrderItem) domain.EventOrder {
	return domain.EventOrder{
		ID:          order.ID,
		ShopID:      order.ShopID,
		TableID:     order.TableID,
		TableNumber: req.TableNumber,
		TableZone:   req.TableZone,
		Notes:       order.Notes,
		Status:      string(order.Status),
		OrderType:   order.OrderType,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
		Items:       eventItems(items),
	}
}

func eventDisplay(order domain.Order, req domain.CreateOrderRequest, items []domain.CreateOrderItem) domain.EventDisplay {
	return domain.EventDisplay{
		ShopID:      order.ShopID,
		ShopName:    strings.TrimSpace(req.ShopName),
		TableID:     order.TableID,
		TableNumber: req.TableNumber,
		TableZone:   req.TableZone,
		Notes:       order.Notes,
		Items:       eventItems(items),
	}
}
