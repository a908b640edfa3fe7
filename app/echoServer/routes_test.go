package echoServer

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	authctrl "github.com/yukta0302/rentwala/app/echoServer/controller/auth"
	cartctrl "github.com/yukta0302/rentwala/app/echoServer/controller/cart"
	checkoutctrl "github.com/yukta0302/rentwala/app/echoServer/controller/checkout"
	itemctrl "github.com/yukta0302/rentwala/app/echoServer/controller/item"
	rentalctrl "github.com/yukta0302/rentwala/app/echoServer/controller/rental"
)

func newTestRouter() *echo.Echo {
	e := echo.New()
	Register(e, C{
		Auth:      &authctrl.Controller{},
		Item:      &itemctrl.Controller{},
		Cart:      &cartctrl.Controller{},
		Checkout:  &checkoutctrl.Controller{},
		Rental:    &rentalctrl.Controller{},
		JWTSecret: "test-secret",
	})
	return e
}

func TestProtectedRoutes_NoTokenIsUnauthorized(t *testing.T) {
	e := newTestRouter()

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/v1/cart"},
		{http.MethodPost, "/v1/checkout"},
		{http.MethodGet, "/v1/rentals/my"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestProtectedRoutes_GarbageTokenIsUnauthorized(t *testing.T) {
	e := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
