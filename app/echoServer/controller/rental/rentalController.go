package rental

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/yukta0302/rentwala/app/echoServer/jwtx"
	rs "github.com/yukta0302/rentwala/service/rental"
)

type Controller struct {
	Svc rs.Service
	Log *slog.Logger
}

// POST /v1/items/:id/rent
func (h *Controller) RentNow(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	email, err := jwtx.EmailFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	it, err := h.Svc.RentNow(c.Request().Context(), email, id)
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "item not found"})
		case rs.ErrUnavailable:
			return c.JSON(http.StatusConflict, echo.Map{"message": "not available"})
		default:
			h.Log.Error("rent now", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "rented", "item": it})
}

// GET /v1/rentals/my
func (h *Controller) MyHistory(c echo.Context) error {
	email, err := jwtx.EmailFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	rows, err := h.Svc.MyHistory(c.Request().Context(), email)
	if err != nil {
		h.Log.Error("history", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
