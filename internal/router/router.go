package router

import (
	"time"

	"storefront/internal/cache"
	"storefront/internal/database"
	"storefront/internal/handler"
	"storefront/internal/handler/auth"
	"storefront/internal/handler/products"
	"storefront/internal/handler/users"
	"storefront/internal/middleware"
	"storefront/internal/worker"

	"github.com/labstack/echo/v4"
)

// Setup registers every route. Handlers receive their store and cache
// capabilities explicitly; nothing reads a global connection.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool, sessionTTL time.Duration) {
	e.GET("/", handler.WelcomeHandler())

	api := e.Group("/api")
	api.GET("/ping", handler.PingHandler(db, rdb))

	// Registration, login and logout ride under /users for compatibility
	// with the original route table, so they are registered before the
	// parameterized user routes.
	api.POST("/users/register", auth.RegisterHandler(db))
	api.POST("/users/login", auth.LoginHandler(db, rdb, wp, sessionTTL))
	api.POST("/users/logout", auth.LogoutHandler(rdb), middleware.RequireSession(rdb))

	api.GET("/users", users.ListUsersHandler(db))
	api.GET("/users/:id", users.GetUserHandler(db))
	api.POST("/users", users.CreateUserHandler(db))
	api.PUT("/users/:id", users.UpdateUserHandler(db))
	api.DELETE("/users/:id", users.DeleteUserHandler(db))

	// Product reads are public; mutations need a live session.
	requireSession := middleware.RequireSession(rdb)
	api.GET("/products", products.ListProductsHandler(db))
	api.GET("/products/:id", products.GetProductHandler(db))
	api.POST("/products", products.CreateProductHandler(db), requireSession)
	api.PUT("/products/:id", products.UpdateProductHandler(db), requireSession)
	api.DELETE("/products/:id", products.DeleteProductHandler(db), requireSession)
}
