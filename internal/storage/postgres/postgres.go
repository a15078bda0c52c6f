package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/asavelyev/campus-canteen/internal/types/order"
	"github.com/asavelyev/campus-canteen/internal/types/session"
	"github.com/asavelyev/campus-canteen/internal/types/user"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(dsn string) (*PostgresStorage, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	s := &PostgresStorage{db: db}

	if err := s.db.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStorage) initSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            email_verified BOOLEAN NOT NULL DEFAULT FALSE,
            image TEXT,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS sessions (
            id TEXT PRIMARY KEY,
            token TEXT UNIQUE NOT NULL,
            user_id TEXT NOT NULL REFERENCES users(id),
            expires_at TIMESTAMPTZ NOT NULL,
            created_at TIMESTAMPTZ NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL,
            ip_address TEXT,
            user_agent TEXT
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            user_id TEXT NOT NULL REFERENCES users(id),
            order_number TEXT UNIQUE NOT NULL,
            items TEXT NOT NULL,
            subtotal DOUBLE PRECISION NOT NULL,
            tax DOUBLE PRECISION NOT NULL,
            discount DOUBLE PRECISION NOT NULL,
            total DOUBLE PRECISION NOT NULL,
            payment_method TEXT NOT NULL,
            promo_code TEXT,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL
        )`,
	}
	for _, q := range stmts {
		if _, err := s.db.Exec(q); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

func (s *PostgresStorage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

func (s *PostgresStorage) CreateUser(ctx context.Context, u *user.User) error {
	q := `INSERT INTO users (id,name,email,email_verified,image,password_hash,created_at,updated_at)
          VALUES($1,$2,$3,$4,$5,$6,$7,$8)`
	_, err := s.db.ExecContext(ctx, q,
		u.ID, u.Name, u.Email, u.EmailVerified, u.Image, u.PasswordHash, u.CreatedAt, u.UpdatedAt,
	)
	return err
}

func (s *PostgresStorage) FindUserByEmail(ctx context.Context, email string) (*user.User, error) {
	u := &user.User{}
	q := `SELECT id,name,email,email_verified,image,password_hash,created_at,updated_at
          FROM users WHERE email=$1`
	var image sql.NullString
	if err := s.db.QueryRowContext(ctx, q, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.EmailVerified, &image, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	if image.Valid {
		u.Image = &image.String
	}
	return u, nil
}

func (s *PostgresStorage) CreateSession(ctx context.Context, sess *session.Session) error {
	q := `INSERT INTO sessions (id,token,user_id,expires_at,created_at,updated_at,ip_address,user_agent)
          VALUES($1,$2,$3,$4,$5,$6,$7,$8)`
	_, err := s.db.ExecContext(ctx, q,
		sess.ID, sess.Token, sess.UserID, sess.ExpiresAt, sess.CreatedAt, sess.UpdatedAt, sess.IPAddress, sess.UserAgent,
	)
	return err
}

func (s *PostgresStorage) FindSessionByToken(ctx context.Context, token string) (*session.Session, error) {
	sess := &session.Session{}
	q := `SELECT id,token,user_id,expires_at,created_at,updated_at,ip_address,user_agent
          FROM sessions WHERE token=$1`
	var ip, ua sql.NullString
	if err := s.db.QueryRowContext(ctx, q, token).
		Scan(&sess.ID, &sess.Token, &sess.UserID, &sess.ExpiresAt, &sess.CreatedAt, &sess.UpdatedAt, &ip, &ua); err != nil {
		return nil, err
	}
	if ip.Valid {
		sess.IPAddress = &ip.String
	}
	if ua.Valid {
		sess.UserAgent = &ua.String
	}
	return sess, nil
}

const orderColumns = `id, user_id, order_number, items, subtotal, tax, discount, total, payment_method, promo_code, status, created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (*order.Order, error) {
	var o order.Order
	var promo sql.NullString
	if err := row.Scan(
		&o.ID, &o.UserID, &o.OrderNumber, &o.RawItems,
		&o.Subtotal, &o.Tax, &o.Discount, &o.Total,
		&o.PaymentMethod, &promo, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if promo.Valid {
		o.PromoCode = &promo.String
	}
	return &o, nil
}

func (s *PostgresStorage) CreateOrder(ctx context.Context, o *order.Order) error {
	q := `
        INSERT INTO orders (user_id,order_number,items,subtotal,tax,discount,total,payment_method,promo_code,status,created_at,updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12) RETURNING id`
	return s.db.QueryRowContext(ctx, q,
		o.UserID, o.OrderNumber, o.RawItems,
		o.Subtotal, o.Tax, o.Discount, o.Total,
		o.PaymentMethod, o.PromoCode, o.Status, o.CreatedAt, o.UpdatedAt,
	).Scan(&o.ID)
}

func (s *PostgresStorage) ListOrdersByUser(ctx context.Context, userID string, limit, offset int) ([]order.Order, error) {
	q := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`
	rows, err := s.db.QueryContext(ctx, q, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func (s *PostgresStorage) FindOrderForUser(ctx context.Context, id int64, userID string) (*order.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 AND user_id = $2`
	return scanOrder(s.db.QueryRowContext(ctx, q, id, userID))
}

func (s *PostgresStorage) FindOrderOwner(ctx context.Context, id int64) (string, error) {
	var owner string
	err := s.db.QueryRowContext(ctx, `SELECT user_id FROM orders WHERE id = $1`, id).Scan(&owner)
	return owner, err
}

// UpdateOrderStatus performs the owner-scoped conditional write in a single
// statement; callers classify a sql.ErrNoRows result with FindOrderOwner.
func (s *PostgresStorage) UpdateOrderStatus(ctx context.Context, id int64, userID string, status order.Status, updatedAt time.Time) (*order.Order, error) {
	q := `
        UPDATE orders
        SET status = $1, updated_at = $2
        WHERE id = $3 AND user_id = $4
        RETURNING ` + orderColumns
	return scanOrder(s.db.QueryRowContext(ctx, q, status, updatedAt, id, userID))
}
