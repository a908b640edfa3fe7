package echoServer

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	authctrl "github.com/yukta0302/rentwala/app/echoServer/controller/auth"
	"github.com/yukta0302/rentwala/app/echoServer/jwtx"
	cartctrl "github.com/yukta0302/rentwala/app/echoServer/controller/cart"
	checkoutctrl "github.com/yukta0302/rentwala/app/echoServer/controller/checkout"
	itemctrl "github.com/yukta0302/rentwala/app/echoServer/controller/item"
	rentalctrl "github.com/yukta0302/rentwala/app/echoServer/controller/rental"
)

type C struct {
	Auth      *authctrl.Controller
	Item      *itemctrl.Controller
	Cart      *cartctrl.Controller
	Checkout  *checkoutctrl.Controller
	Rental    *rentalctrl.Controller
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/users/register", c.Auth.Register)
	pub.POST("/users/login", c.Auth.Login)

	// Browsing needs no session, same as the storefront pages.
	pub.GET("/items", c.Item.List)
	pub.GET("/items/:id", c.Item.Detail)
	pub.GET("/search", c.Item.Search)
	pub.GET("/categories", c.Item.Categories)
	pub.GET("/categories/:path", c.Item.ByCategory)

	// Auth
	auth := e.Group("/v1")
	auth.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(c.JWTSecret),

		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",

		// A missing header is as unauthorized as a bad signature.
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		},
	}))
	// user_id/email extraction; anything without a usable identity is 401
	auth.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			reqID := ctx.Response().Header().Get(echo.HeaderXRequestID)

			uid, err := jwtx.UserIDFromContext(ctx)
			if err != nil {
				ctx.Logger().Warnf("[AUTH] %v req_id=%s ip=%s", err, reqID, ctx.RealIP())
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			email, err := jwtx.EmailFromContext(ctx)
			if err != nil {
				ctx.Logger().Warnf("[AUTH] %v req_id=%s", err, reqID)
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}

			ctx.Set("user_id", uid)
			ctx.Set("email", email)
			return next(ctx)
		}
	})

	// Listing
	auth.POST("/items", c.Item.Create)

	// Cart
	auth.POST("/cart", c.Cart.Add)
	auth.GET("/cart", c.Cart.List)
	auth.DELETE("/cart", c.Cart.Clear)

	// Checkout
	auth.GET("/checkout", c.Checkout.Preview)
	auth.POST("/checkout", c.Checkout.Finalize)

	// Direct rent + history
	auth.POST("/items/:id/rent", c.Rental.RentNow)
	auth.GET("/rentals/my", c.Rental.MyHistory)
}
