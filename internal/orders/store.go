package orders

import (
	"context"
	"time"

	"breakfast-shop/internal/domain"
)

// Store is the Order Store contract. Implementations provide durable,
// transactional persistence; this service never reads orders back.
type Store interface {
	// InsertOrderWithItems writes the order and all its items as a single
	// atomic transaction. On error no row is left behind.
	InsertOrderWithItems(ctx context.Context, order domain.Order, items []domain.OrderItem) error

	// UpdateOrderStatus applies next to the order in a single update scoped
	// by order id, shop id and the statuses next may legally follow. It
	// reports the refreshed updated_at and how many rows matched; zero rows
	// means wrong id, wrong shop, missing order or an illegal transition.
	UpdateOrderStatus(ctx context.Context, orderID, shopID string, next domain.Status) (time.Time, int64, error)
}
