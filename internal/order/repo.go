package order

import (
	"context"
	"time"

	"github.com/asavelyev/campus-canteen/internal/types/order"
)

// OrderRepository is the slice of the store this service needs. Items travel
// encoded (Order.RawItems); sql.ErrNoRows signals an empty result.
type OrderRepository interface {
	CreateOrder(ctx context.Context, o *order.Order) error
	ListOrdersByUser(ctx context.Context, userID string, limit, offset int) ([]order.Order, error)
	FindOrderForUser(ctx context.Context, id int64, userID string) (*order.Order, error)
	FindOrderOwner(ctx context.Context, id int64) (string, error)
	UpdateOrderStatus(ctx context.Context, id int64, userID string, status order.Status, updatedAt time.Time) (*order.Order, error)
}
