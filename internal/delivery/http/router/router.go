// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"justchoose/internal/delivery/http/middleware"
	"justchoose/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SearchHandler   *handler.SearchHandler
	SpinHandler     *handler.SpinHandler
	FavoriteHandler *handler.FavoriteHandler
	UserHandler     *handler.UserHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	searchHandler   *handler.SearchHandler
	spinHandler     *handler.SpinHandler
	favoriteHandler *handler.FavoriteHandler
	userHandler     *handler.UserHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		searchHandler:   params.SearchHandler,
		spinHandler:     params.SpinHandler,
		favoriteHandler: params.FavoriteHandler,
		userHandler:     params.UserHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	api.POST("/auth/google", r.userHandler.GoogleLogin)

	// Anonymous callers are served from the free provider.
	optional := api.Group("", r.authMiddleware.OptionalAuthenticate)
	{
		optional.POST("/search", r.searchHandler.Search)
		optional.POST("/geocode", r.searchHandler.Geocode)
		optional.POST("/spins", r.spinHandler.Spin)
		optional.POST("/spins/record", r.spinHandler.Record)
	}

	// Replays are shared by link.
	api.GET("/spins/:id/replay", r.spinHandler.Replay)
	api.GET("/spins/:id/qrcode", r.spinHandler.QRCode)

	authed := api.Group("", r.authMiddleware.Authenticate)
	{
		authed.GET("/spins", r.spinHandler.History)
		authed.GET("/favorites", r.favoriteHandler.List)
		authed.POST("/favorites", r.favoriteHandler.Add)
		authed.DELETE("/favorites", r.favoriteHandler.Remove)
		authed.GET("/user/access", r.userHandler.GetAccess)
	}

	admin := api.Group("/admin", r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
	{
		admin.GET("/users", r.userHandler.ListUsers)
		admin.PATCH("/users", r.userHandler.SetAccess)
	}
}
