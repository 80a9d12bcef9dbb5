package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/yu-shop/storefront-api/internal/api/handler"
	"github.com/yu-shop/storefront-api/internal/core/ports"
	"github.com/yu-shop/storefront-api/internal/pkg/config"

	_ "github.com/yu-shop/storefront-api/docs"
)

// Stores bundles one implementation per resource. The fixture and the
// forwarding data sources each provide a full set.
type Stores struct {
	Members    ports.MemberStore
	Products   ports.ProductStore
	Categories ports.CategoryStore
	Carts      ports.CartStore
	Orders     ports.OrderStore
	AdminUsers ports.AdminUserStore
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, stores Stores, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Handlers ---
	memberHandler := handler.NewMemberHandler(stores.Members)
	adminMemberHandler := handler.NewAdminMemberHandler(stores.Members)
	productHandler := handler.NewProductHandler(stores.Products)
	adminProductHandler := handler.NewAdminProductHandler(stores.Products)
	categoryHandler := handler.NewCategoryHandler(stores.Categories)
	cartHandler := handler.NewCartHandler(stores.Carts)
	orderHandler := handler.NewOrderHandler(stores.Orders)
	adminUserHandler := handler.NewAdminUserHandler(stores.AdminUsers)
	uploadHandler := handler.NewUploadHandler(cfg.UploadDir, log)

	// --- Storefront routes ---
	e.POST("/member", memberHandler.Register)
	e.GET("/member", memberHandler.Get)
	e.PUT("/member", memberHandler.Update)
	e.DELETE("/member", memberHandler.Delete)
	e.POST("/member/login", memberHandler.Login)
	e.PUT("/member/password", memberHandler.ChangePassword)

	e.GET("/product", productHandler.List)
	e.GET("/product/:id", productHandler.Get)

	e.GET("/cart", cartHandler.Get)
	e.POST("/cart", cartHandler.Add)
	e.PUT("/cart", cartHandler.Update)
	e.DELETE("/cart", cartHandler.Remove)

	e.POST("/order", orderHandler.Create)

	// --- Back-office routes ---
	// These carry no authorization; the original surface never had any.
	e.GET("/user/members", adminMemberHandler.List)
	e.POST("/user/members", adminMemberHandler.Create)
	e.PUT("/user/members", adminMemberHandler.Update)
	e.DELETE("/user/members", adminMemberHandler.Delete)

	e.GET("/user/products", adminProductHandler.List)
	e.POST("/user/products", adminProductHandler.Create)
	e.PUT("/user/products", adminProductHandler.Update)
	e.DELETE("/user/products", adminProductHandler.Delete)

	e.GET("/user/categories", categoryHandler.List)
	e.POST("/user/categories", categoryHandler.Create)
	e.PUT("/user/categories", categoryHandler.Update)
	e.DELETE("/user/categories", categoryHandler.Delete)

	e.GET("/user/orders", orderHandler.List)

	e.GET("/user/users", adminUserHandler.List)
	e.POST("/user/users", adminUserHandler.Create)
	e.PUT("/user/users", adminUserHandler.Update)
	e.DELETE("/user/users", adminUserHandler.Delete)
	e.POST("/user/users/login", adminUserHandler.Login)

	// --- Uploads ---
	e.POST("/api/upload", uploadHandler.Upload)
	e.Static("/uploads", cfg.UploadDir)

	// --- Operational surface ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
