package middleware

import (
	"errors"
	"net/http"

	"storefront/internal/api"
	"storefront/internal/cache"
	"storefront/internal/service"

	"github.com/labstack/echo/v4"
)

// ContextAccountKey holds the authenticated *service.Session on the
// request context after RequireSession passes.
const ContextAccountKey = "account"

var getSession = service.GetSession

// RequireSession guards a route behind a live session. The session token
// travels in the session_id cookie; anything short of a resolvable live
// session yields 401 with no side effects.
func RequireSession(rdb cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(service.CookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, api.Fail("Unauthorized"))
			}
			sess, err := getSession(c.Request().Context(), rdb, cookie.Value)
			if err != nil {
				if errors.Is(err, service.ErrNoSession) {
					return c.JSON(http.StatusUnauthorized, api.Fail("Unauthorized"))
				}
				return c.JSON(http.StatusInternalServerError, api.Fault("Error resolving session", err))
			}
			c.Set(ContextAccountKey, sess)
			return next(c)
		}
	}
}
