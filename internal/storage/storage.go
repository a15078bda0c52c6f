package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/asavelyev/campus-canteen/internal/types/order"
	"github.com/asavelyev/campus-canteen/internal/types/session"
	"github.com/asavelyev/campus-canteen/internal/types/user"
)

// UserRepository handles account records.
type UserRepository interface {
	CreateUser(ctx context.Context, u *user.User) error
	FindUserByEmail(ctx context.Context, email string) (*user.User, error)
}

// SessionRepository handles opaque-token session records.
type SessionRepository interface {
	CreateSession(ctx context.Context, s *session.Session) error
	FindSessionByToken(ctx context.Context, token string) (*session.Session, error)
}

// OrderRepository handles order records. Items travel in encoded form
// (Order.RawItems); decoding is the service's concern.
type OrderRepository interface {
	CreateOrder(ctx context.Context, o *order.Order) error
	ListOrdersByUser(ctx context.Context, userID string, limit, offset int) ([]order.Order, error)
	FindOrderForUser(ctx context.Context, id int64, userID string) (*order.Order, error)
	FindOrderOwner(ctx context.Context, id int64) (string, error)
	UpdateOrderStatus(ctx context.Context, id int64, userID string, status order.Status, updatedAt time.Time) (*order.Order, error)
}

// Storage bundles every repository plus connection management.
type Storage interface {
	UserRepository
	SessionRepository
	OrderRepository

	Ping(ctx context.Context) error
	Close() error
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505). Used by the order-number retry loop and the
// duplicate-email check.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
