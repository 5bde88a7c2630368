// Package router registers the ledger API routes.
package router

import (
	"kanakku/internal/delivery/api/middleware"
	"kanakku/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ShopHandler        *handler.ShopHandler
	ProductHandler     *handler.ProductHandler
	TransactionHandler *handler.TransactionHandler
	ProfileHandler     *handler.ProfileHandler
	AnalyticsHandler   *handler.AnalyticsHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	shopHandler        *handler.ShopHandler
	productHandler     *handler.ProductHandler
	transactionHandler *handler.TransactionHandler
	profileHandler     *handler.ProfileHandler
	analyticsHandler   *handler.AnalyticsHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		shopHandler:        params.ShopHandler,
		productHandler:     params.ProductHandler,
		transactionHandler: params.TransactionHandler,
		profileHandler:     params.ProfileHandler,
		analyticsHandler:   params.AnalyticsHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Banner)
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	shops := api.Group("/shops")
	{
		shops.POST("", r.shopHandler.CreateShop)
		shops.GET("", r.shopHandler.ListShops)
		shops.PUT("/:id", r.shopHandler.UpdateShop)
		shops.DELETE("/:id", r.shopHandler.DeleteShop)
		shops.GET("/:id/balance", r.shopHandler.ShopBalance)
		shops.GET("/:id/qrcode", r.shopHandler.PaymentQR)
	}

	products := api.Group("/products")
	{
		products.POST("", r.productHandler.CreateProduct)
		products.GET("", r.productHandler.ListProducts)
		products.PUT("/:id", r.productHandler.UpdateProduct)
		products.DELETE("/:id", r.productHandler.DeleteProduct)
	}

	transactions := api.Group("/transactions")
	{
		transactions.POST("", r.transactionHandler.CreateTransaction)
		transactions.GET("", r.transactionHandler.ListTransactions)
		transactions.DELETE("/:id", r.transactionHandler.DeleteTransaction)
	}

	profile := api.Group("/profile")
	{
		profile.GET("", r.profileHandler.GetProfile)
		profile.PUT("", r.profileHandler.UpdateProfile)
		profile.POST("/reset", r.profileHandler.ResetAccount)
	}

	analytics := api.Group("/analytics")
	{
		analytics.GET("/dashboard", r.analyticsHandler.Dashboard)
	}
}
