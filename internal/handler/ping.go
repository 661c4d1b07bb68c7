package handler

import (
	"net/http"

	"storefront/internal/api"
	"storefront/internal/cache"
	"storefront/internal/database"

	"github.com/labstack/echo/v4"
)

// @Summary     Health check
// @Description Returns pong when the database and session store are reachable
// @Tags        health
// @Produce     json
// @Success     200 {object} api.Response
// @Failure     503 {object} api.Response
// @Router      /ping [get]
func PingHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, api.Fault("Database not connected", err))
		}
		if err := rdb.Ping(c.Request().Context()).Err(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, api.Fault("Session store not connected", err))
		}
		return c.JSON(http.StatusOK, api.Response{Success: true, Message: "pong"})
	}
}

// WelcomeHandler describes the API surface at the root path.
func WelcomeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"message":       "Welcome to the API!",
			"documentation": "Visit /swagger/index.html for API documentation",
			"endpoints": []string{
				"/api/users - User management",
				"/api/products - Product management",
				"/api/ping - Health check",
			},
		})
	}
}
