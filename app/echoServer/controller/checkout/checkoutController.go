package checkout

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/yukta0302/rentwala/app/echoServer/jwtx"
	cs "github.com/yukta0302/rentwala/service/checkout"
)

type Controller struct {
	Svc cs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/checkout  (read-only total preview)
func (h *Controller) Preview(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)

	sum, err := h.Svc.Preview(c.Request().Context(), uid)
	if err != nil {
		if cs.Code(err) == cs.ErrEmptyCart {
			return c.JSON(http.StatusConflict, echo.Map{"message": "cart is empty"})
		}
		h.Log.Error("checkout preview", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, sum)
}

// POST /v1/checkout
func (h *Controller) Finalize(c echo.Context) error {
	var req FinalizeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	uid, _ := c.Get("user_id").(int64)
	email, err := jwtx.EmailFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	sum, err := h.Svc.Finalize(c.Request().Context(), uid, email, req.ShippingAddress, req.PaymentMethod)
	if err != nil {
		if cs.Code(err) == cs.ErrEmptyCart {
			return c.JSON(http.StatusConflict, echo.Map{"message": "cart is empty"})
		}
		h.Log.Error("checkout finalize", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, sum)
}
