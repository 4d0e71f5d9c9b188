package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"breakfast-shop/internal/domain"
)

// PG is the pgx-backed Order Store. Schema lives in deploy/schema.sql.
type PG struct {
	pool *pgxpool.Pool
}

func NewPG(pool *pgxpool.Pool) *PG {
	return &PG{pool: pool}
}

func (s *PG) InsertOrderWithItems(ctx context.Context, order domain.Order, items []domain.OrderItem) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, shop_id, order_type, table_id, takeout_code, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		order.ID,
		order.ShopID,
		order.OrderType,
		order.TableID,
		order.TakeoutCode,
		nullIfEmpty(order.Notes),
		string(order.Status),
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range items {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (id, order_id, meal_id, meal_name, quantity, unit_price, notes, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`,
			item.ID,
			item.OrderID,
			item.MealID,
			item.Name,
			item.Quantity,
			item.UnitPrice,
			nullIfEmpty(item.Notes),
			order.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order item %s: %w", item.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *PG) UpdateOrderStatus(ctx context.Context, orderID, shopID string, next domain.Status) (time.Time, int64, error) {
	allowed := next.AllowedFrom()
	from := make([]string, len(allowed))
	for i, st := range allowed {
		from[i] = string(st)
	}

	var updatedAt time.Time
	err := s.pool.QueryRow(ctx, `
		UPDATE orders
		SET status = $1, updated_at = now()
		WHERE id = $2 AND shop_id = $3 AND status = ANY($4)
		RETURNING updated_at
	`, string(next), orderID, shopID, from).Scan(&updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, 0, nil
	}
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("failed to update order status: %w", err)
	}
	return updatedAt, 1, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
