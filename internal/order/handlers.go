package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/asavelyev/campus-canteen/internal/api"
	"github.com/asavelyev/campus-canteen/internal/logger"
	"github.com/asavelyev/campus-canteen/internal/middleware"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CreateOrder)
	r.Get("/", h.ListOrders)
	r.Get("/{id}", h.GetOrder)
	r.Patch("/{id}", h.UpdateOrderStatus)
	return r
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	var p CreatePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}

	o, err := h.svc.Create(r.Context(), userID, &p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	api.WriteJSON(w, http.StatusCreated, o)
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	q := r.URL.Query()

	orders, err := h.svc.List(r.Context(), userID, q.Get("limit"), q.Get("offset"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, orders)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	o, err := h.svc.GetByID(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	var body struct {
		Status any `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}

	o, err := h.svc.UpdateStatus(r.Context(), userID, chi.URLParam(r, "id"), body.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, o)
}

// writeError maps service failures to the wire taxonomy. Unexpected faults
// are logged with the request id and surface as an opaque 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		api.WriteError(w, http.StatusBadRequest, ve.Message, ve.Code)
		return
	}
	switch {
	case errors.Is(err, ErrForbidden):
		api.WriteError(w, http.StatusForbidden, "Access forbidden", "FORBIDDEN")
	case errors.Is(err, ErrNotFound):
		api.WriteError(w, http.StatusNotFound, "Order not found", "NOT_FOUND")
	case errors.Is(err, ErrInvalidTransition):
		api.WriteError(w, http.StatusConflict, "Status transition not allowed", "INVALID_TRANSITION")
	case errors.Is(err, ErrCreateFailed):
		api.WriteError(w, http.StatusInternalServerError, "Failed to create order", "CREATE_FAILED")
	case errors.Is(err, ErrUpdateFailed):
		api.WriteError(w, http.StatusInternalServerError, "Failed to update order", "UPDATE_FAILED")
	default:
		logger.Log.Error("order request failed",
			zap.String("request_id", chiMiddleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		api.WriteError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL")
	}
}
