package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asavelyev/campus-canteen/internal/api"
	"github.com/asavelyev/campus-canteen/internal/middleware"
	"github.com/asavelyev/campus-canteen/internal/types/order"
)

// newTestServer mounts the handler behind a stand-in for the session
// middleware that pins the authenticated user.
func newTestServer(repo OrderRepository, userID string) http.Handler {
	h := NewHandler(NewService(repo, false))
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(middleware.ContextWithUserID(req.Context(), userID)))
		})
	})
	r.Mount("/orders", h.Routes())
	return r
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) api.ErrorBody {
	t.Helper()
	var body api.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateOrderHandler(t *testing.T) {
	repo := &mockRepo{
		createOrderFn: func(ctx context.Context, o *order.Order) error {
			o.ID = 42
			return nil
		},
	}
	srv := newTestServer(repo, "user_a")

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var o order.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &o))
	assert.Equal(t, int64(42), o.ID)
	assert.Equal(t, order.StatusReceived, o.Status)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "Masala Dosa", o.Items[0].Name)
}

func TestCreateOrderHandlerValidation(t *testing.T) {
	srv := newTestServer(&mockRepo{}, "user_a")

	tests := []struct {
		body string
		code string
	}{
		{`{"items":[],"subtotal":1,"tax":0,"discount":0,"total":1,"paymentMethod":"cash"}`, "EMPTY_ITEMS"},
		{`{"items":[{"id":"a","name":"A","price":1,"quantity":1}],"subtotal":"10","tax":0,"discount":0,"total":1,"paymentMethod":"cash"}`, "INVALID_SUBTOTAL"},
		{`not json`, "INVALID_BODY"},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tc.body))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, tc.code, decodeErrorBody(t, rec).Code)
	}
}

func TestListOrdersHandler(t *testing.T) {
	var gotLimit int
	repo := &mockRepo{
		listOrdersByUserFn: func(ctx context.Context, userID string, limit, offset int) ([]order.Order, error) {
			gotLimit = limit
			return []order.Order{{ID: 1, UserID: userID, RawItems: "[]"}}, nil
		},
	}
	srv := newTestServer(repo, "user_a")

	req := httptest.NewRequest(http.MethodGet, "/orders?limit=500", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 100, gotLimit)

	var orders []order.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	assert.Len(t, orders, 1)
}

func TestListOrdersHandlerInvalidParams(t *testing.T) {
	srv := newTestServer(&mockRepo{}, "user_a")

	req := httptest.NewRequest(http.MethodGet, "/orders?limit=0", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_LIMIT", decodeErrorBody(t, rec).Code)

	req = httptest.NewRequest(http.MethodGet, "/orders?offset=-1", nil)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_OFFSET", decodeErrorBody(t, rec).Code)
}

func TestGetOrderHandlerErrorTaxonomy(t *testing.T) {
	repo := &mockRepo{
		findOrderForUserFn: func(ctx context.Context, id int64, userID string) (*order.Order, error) {
			return nil, sql.ErrNoRows
		},
	}
	srv := newTestServer(repo, "user_a")

	repo.findOrderOwnerFn = func(ctx context.Context, id int64) (string, error) {
		return "user_b", nil
	}
	req := httptest.NewRequest(http.MethodGet, "/orders/5", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decodeErrorBody(t, rec).Code)

	repo.findOrderOwnerFn = func(ctx context.Context, id int64) (string, error) {
		return "", sql.ErrNoRows
	}
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/5", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeErrorBody(t, rec).Code)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeErrorBody(t, rec).Code)
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	before := time.Now().UTC().Add(-time.Hour)
	repo := &mockRepo{
		updateOrderStatusFn: func(ctx context.Context, id int64, userID string, status order.Status, updatedAt time.Time) (*order.Order, error) {
			return &order.Order{ID: id, UserID: userID, Status: status, CreatedAt: before, UpdatedAt: updatedAt, RawItems: "[]"}, nil
		},
	}
	srv := newTestServer(repo, "user_a")

	req := httptest.NewRequest(http.MethodPatch, "/orders/1", strings.NewReader(`{"status":"preparing"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var o order.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &o))
	assert.Equal(t, order.StatusPreparing, o.Status)
	assert.True(t, o.UpdatedAt.After(before))
}

func TestUpdateOrderStatusHandlerValidation(t *testing.T) {
	srv := newTestServer(&mockRepo{}, "user_a")

	req := httptest.NewRequest(http.MethodPatch, "/orders/1", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MISSING_STATUS", decodeErrorBody(t, rec).Code)

	req = httptest.NewRequest(http.MethodPatch, "/orders/1", strings.NewReader(`{"status":"shipped"}`))
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_STATUS", decodeErrorBody(t, rec).Code)
}
