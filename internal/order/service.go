package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/asavelyev/campus-canteen/internal/storage"
	"github.com/asavelyev/campus-canteen/internal/types/order"
)

var (
	ErrNotFound          = errors.New("order not found")
	ErrForbidden         = errors.New("access forbidden")
	ErrCreateFailed      = errors.New("failed to create order")
	ErrUpdateFailed      = errors.New("failed to update order")
	ErrInvalidTransition = errors.New("status transition not allowed")
)

const (
	defaultLimit       = 10
	maxLimit           = 100
	orderNumberRetries = 3
)

type Service struct {
	repo       OrderRepository
	strictFlow bool
}

// NewService builds the order service. strictFlow enables forward-only
// status transitions; the default (false) accepts any recognized status on
// update, matching the permissive historical behavior.
func NewService(repo OrderRepository, strictFlow bool) *Service {
	return &Service{repo: repo, strictFlow: strictFlow}
}

func newOrderNumber() string {
	return fmt.Sprintf("ORD%d", time.Now().UnixMilli())
}

// Create validates the payload, persists the order with encoded items and
// status "received", and returns it with items in structured form. Order
// numbers are timestamp-derived; the unique constraint on the column plus a
// bounded retry loop covers concurrent creation in the same instant.
func (s *Service) Create(ctx context.Context, userID string, p *CreatePayload) (*order.Order, error) {
	no, verr := ValidateCreate(p)
	if verr != nil {
		return nil, verr
	}

	now := time.Now().UTC()
	o := &order.Order{
		UserID:        userID,
		Items:         no.Items,
		Subtotal:      no.Subtotal,
		Tax:           no.Tax,
		Discount:      no.Discount,
		Total:         no.Total,
		PaymentMethod: no.PaymentMethod,
		PromoCode:     no.PromoCode,
		Status:        order.StatusReceived,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := o.EncodeItems(); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < orderNumberRetries; attempt++ {
		o.OrderNumber = newOrderNumber()
		err := s.repo.CreateOrder(ctx, o)
		if err == nil {
			return o, nil
		}
		if storage.IsUniqueViolation(err) {
			time.Sleep(time.Millisecond)
			continue
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCreateFailed
		}
		return nil, err
	}
	return nil, ErrCreateFailed
}

// List returns the caller's orders, newest first. limit defaults to 10 and
// is clamped to 100; offset defaults to 0.
func (s *Service) List(ctx context.Context, userID, limitStr, offsetStr string) ([]order.Order, error) {
	limit := defaultLimit
	if limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, &ValidationError{Code: "INVALID_LIMIT", Message: "Invalid limit parameter"}
		}
		limit = n
	}
	if limit < 1 {
		return nil, &ValidationError{Code: "INVALID_LIMIT", Message: "Invalid limit parameter"}
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := 0
	if offsetStr != "" {
		n, err := strconv.Atoi(offsetStr)
		if err != nil || n < 0 {
			return nil, &ValidationError{Code: "INVALID_OFFSET", Message: "Invalid offset parameter"}
		}
		offset = n
	}

	orders, err := s.repo.ListOrdersByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if err := orders[i].DecodeItems(); err != nil {
			return nil, err
		}
	}
	if orders == nil {
		orders = []order.Order{}
	}
	return orders, nil
}

// GetByID returns the order when it exists and belongs to the caller. A miss
// on the owner-filtered read triggers one unfiltered existence probe so that
// "forbidden" and "not found" are never confused.
func (s *Service) GetByID(ctx context.Context, userID, idStr string) (*order.Order, error) {
	id, verr := parseID(idStr)
	if verr != nil {
		return nil, verr
	}

	o, err := s.repo.FindOrderForUser(ctx, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, s.classifyMiss(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	if err := o.DecodeItems(); err != nil {
		return nil, err
	}
	return o, nil
}

// UpdateStatus applies one conditional owner-scoped write and classifies a
// zero-row result afterwards, rather than checking before acting.
func (s *Service) UpdateStatus(ctx context.Context, userID, idStr string, statusVal any) (*order.Order, error) {
	id, verr := parseID(idStr)
	if verr != nil {
		return nil, verr
	}
	st, verr := ValidateStatusValue(statusVal)
	if verr != nil {
		return nil, verr
	}

	if s.strictFlow {
		cur, err := s.repo.FindOrderForUser(ctx, id, userID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, s.classifyMiss(ctx, id)
		}
		if err != nil {
			return nil, err
		}
		if !order.CanTransition(cur.Status, st) {
			return nil, ErrInvalidTransition
		}
	}

	o, err := s.repo.UpdateOrderStatus(ctx, id, userID, st, time.Now().UTC())
	if errors.Is(err, sql.ErrNoRows) {
		owner, err := s.repo.FindOrderOwner(ctx, id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		case err != nil:
			return nil, err
		case owner != userID:
			return nil, ErrForbidden
		default:
			// Existence and ownership hold, yet the conditional write hit
			// nothing: the row changed between the two statements.
			return nil, ErrUpdateFailed
		}
	}
	if err != nil {
		return nil, err
	}
	if err := o.DecodeItems(); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) classifyMiss(ctx context.Context, id int64) error {
	_, err := s.repo.FindOrderOwner(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return ErrForbidden
}

func parseID(idStr string) (int64, *ValidationError) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, &ValidationError{Code: "INVALID_ID", Message: "Valid ID is required"}
	}
	return id, nil
}
