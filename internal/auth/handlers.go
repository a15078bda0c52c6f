package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	validatorv10 "github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/asavelyev/campus-canteen/internal/api"
	"github.com/asavelyev/campus-canteen/internal/logger"
	"github.com/asavelyev/campus-canteen/internal/types/session"
	"github.com/asavelyev/campus-canteen/internal/types/user"
)

type Handler struct {
	svc      *Service
	validate *validatorv10.Validate
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc, validate: validatorv10.New()}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	return r
}

type registerReq struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Token     string     `json:"token"`
	ExpiresAt string     `json:"expiresAt"`
	User      *user.User `json:"user"`
}

func newSessionResponse(u *user.User, sess *session.Session) sessionResponse {
	return sessionResponse{
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
		User:      u,
	}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if !h.bindAndValidate(w, r, &req) {
		return
	}

	u, sess, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Password, clientIP(r), r.UserAgent())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	api.WriteJSON(w, http.StatusCreated, newSessionResponse(u, sess))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if !h.bindAndValidate(w, r, &req) {
		return
	}

	u, sess, err := h.svc.Login(r.Context(), req.Email, req.Password, clientIP(r), r.UserAgent())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, newSessionResponse(u, sess))
}

func (h *Handler) bindAndValidate(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return false
	}
	if err := h.validate.Struct(out); err != nil {
		msg := "Invalid request payload"
		var ve validatorv10.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			msg = fmt.Sprintf("Invalid field: %s", ve[0].Field())
		}
		api.WriteError(w, http.StatusBadRequest, msg, "INVALID_PAYLOAD")
		return false
	}
	return true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrEmailTaken):
		api.WriteError(w, http.StatusConflict, "Email already registered", "EMAIL_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		api.WriteError(w, http.StatusUnauthorized, "Invalid email or password", "INVALID_CREDENTIALS")
	default:
		logger.Log.Error("auth request failed",
			zap.String("request_id", chiMiddleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		api.WriteError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL")
	}
}

func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
