package router

import (
	"net/http"
	"testing"
	"time"

	"storefront/internal/cache"
	"storefront/internal/database"
	"storefront/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	wp := worker.NewPool(1)
	defer wp.Stop()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, wp, time.Hour)

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /",
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/users/register",
		http.MethodPost + " /api/users/login",
		http.MethodPost + " /api/users/logout",
		http.MethodGet + " /api/users",
		http.MethodGet + " /api/users/:id",
		http.MethodPost + " /api/users",
		http.MethodPut + " /api/users/:id",
		http.MethodDelete + " /api/users/:id",
		http.MethodGet + " /api/products",
		http.MethodGet + " /api/products/:id",
		http.MethodPost + " /api/products",
		http.MethodPut + " /api/products/:id",
		http.MethodDelete + " /api/products/:id",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
