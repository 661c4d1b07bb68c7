package auth

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"storefront/internal/api"
	"storefront/internal/cache"
	"storefront/internal/database"
	"storefront/internal/model"
	"storefront/internal/service"
	"storefront/internal/store"
	"storefront/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword         = service.HashPassword
	comparePassword      = service.ComparePassword
	createAccount        = store.CreateAccount
	getAccountByUsername = store.GetAccountByUsername
	touchAccountLogin    = store.TouchAccountLogin
	createSession        = service.CreateSession
	deleteSession        = service.DeleteSession
)

func sessionCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     service.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// @Summary     Register an account
// @Description Creates a login credential; username must be unique
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       credentials body     api.RegisterRequest true "New credentials"
// @Success     201         {object} api.Response
// @Failure     400         {object} api.Response
// @Failure     409         {object} api.Response
// @Failure     500         {object} api.Response
// @Router      /users/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("Invalid request body"))
		}
		req.Username = service.NormalizeText(req.Username)
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("Username and password are required"))
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fault("Error registering user", err))
		}

		account, err := createAccount(c.Request().Context(), db, &model.Account{
			Username:     req.Username,
			PasswordHash: hash,
		})
		if errors.Is(err, store.ErrDuplicate) {
			return c.JSON(http.StatusConflict, api.Fail("Username already exists"))
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fault("Error registering user", err))
		}
		return c.JSON(http.StatusCreated, api.OKMessage("User registered successfully", echo.Map{
			"userId": account.ID,
		}))
	}
}

// @Summary     Log in
// @Description Verifies credentials and starts a cookie session
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       credentials body     api.LoginRequest true "Credentials"
// @Success     200         {object} api.Response
// @Failure     400         {object} api.Response
// @Failure     401         {object} api.Response
// @Failure     500         {object} api.Response
// @Router      /users/login [post]
func LoginHandler(db database.DB, rdb cache.Cache, wp worker.Pool, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("Invalid request body"))
		}
		req.Username = service.NormalizeText(req.Username)
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("Username and password are required"))
		}

		account, err := getAccountByUsername(c.Request().Context(), db, req.Username)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.Fail("Invalid credentials"))
		}
		if err := comparePassword(account.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.Fail("Invalid credentials"))
		}

		token, err := createSession(c.Request().Context(), rdb, service.Session{
			AccountID: account.ID,
			Username:  account.Username,
		}, ttl)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fault("Error logging in", err))
		}
		c.SetCookie(sessionCookie(token, ttl))

		// Stamp last_login_at off the request path.
		accountID := account.ID
		wp.Submit(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := touchAccountLogin(ctx, db, accountID); err != nil {
				log.Printf("touch login for %s: %v", accountID, err)
			}
		})

		return c.JSON(http.StatusOK, api.OK(echo.Map{
			"id":       account.ID,
			"username": account.Username,
		}))
	}
}

// @Summary     Log out
// @Description Revokes the active session and clears the cookie
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.Response
// @Failure     401 {object} api.Response
// @Failure     500 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /users/logout [post]
func LogoutHandler(rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(service.CookieName)
		if err != nil || cookie.Value == "" {
			return c.JSON(http.StatusUnauthorized, api.Fail("Unauthorized"))
		}
		if err := deleteSession(c.Request().Context(), rdb, cookie.Value); err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fault("Error logging out", err))
		}
		c.SetCookie(sessionCookie("", -time.Second))
		return c.JSON(http.StatusOK, api.Response{Success: true, Message: "Logged out successfully"})
	}
}
