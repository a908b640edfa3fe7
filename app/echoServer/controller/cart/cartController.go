package cart

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/yukta0302/rentwala/model"
	cartsvc "github.com/yukta0302/rentwala/service/cart"
)

type Controller struct {
	Svc cartsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/cart
func (h *Controller) Add(c echo.Context) error {
	var req AddLineReq
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

	line := model.CartLine{ItemID: req.ItemID, Days: req.Days, Quantity: req.Quantity}
	if err := h.Svc.AddLine(c.Request().Context(), uid, line); err != nil {
		h.Log.Error("cart add", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "added"})
}

// GET /v1/cart
func (h *Controller) List(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	rows, err := h.Svc.ListLines(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("cart list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// DELETE /v1/cart
func (h *Controller) Clear(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	if err := h.Svc.Clear(c.Request().Context(), uid); err != nil {
		h.Log.Error("cart clear", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "cleared"})
}
