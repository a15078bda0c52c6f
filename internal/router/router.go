package router

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/asavelyev/campus-canteen/internal/auth"
	"github.com/asavelyev/campus-canteen/internal/logger"
	"github.com/asavelyev/campus-canteen/internal/menu"
	"github.com/asavelyev/campus-canteen/internal/middleware"
	"github.com/asavelyev/campus-canteen/internal/order"
	"github.com/asavelyev/campus-canteen/internal/storage"
)

func NewRouter(
	authH *auth.Handler,
	menuH *menu.Handler,
	orderH *order.Handler,
	sessions storage.SessionRepository,
) chi.Router {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(logger.WithLogging)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.GzipHandler)

	r.Mount("/auth", authH.Routes())
	r.Mount("/menu", menuH.Routes())

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuthenticator(sessions))
		r.Mount("/orders", orderH.Routes())
	})

	return r
}
