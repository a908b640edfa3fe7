package item

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/yukta0302/rentwala/app/echoServer/jwtx"
	"github.com/yukta0302/rentwala/model"
	"github.com/yukta0302/rentwala/repository/storage"
	itemsvc "github.com/yukta0302/rentwala/service/item"
)

type Controller struct {
	Svc     itemsvc.Service
	Uploads storage.Store
	V       *validator.Validate
	Log     *slog.Logger
}

// POST /v1/items  (multipart: listing fields + optional image)
func (h *Controller) Create(c echo.Context) error {
	var req CreateItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid form"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	email, err := jwtx.EmailFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	imageURL, err := h.saveImage(c)
	if err != nil {
		h.Log.Error("image upload", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "image upload failed"})
	}

	it := &model.Item{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    imageURL,
		Amount:      req.Amount,
		Quantity:    req.Quantity,
		Category:    req.Category,
	}
	catPath, err := h.Svc.CreateListing(c.Request().Context(), it, email)
	if err != nil {
		if itemsvc.Code(err) == itemsvc.ErrBadInput {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		}
		h.Log.Error("item create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"item":          it,
		"category_path": catPath,
	})
}

// saveImage stores the uploaded file when one is attached. A listing without
// an image is allowed, same as the original form.
func (h *Controller) saveImage(c echo.Context) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return "", nil // no file attached
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return h.Uploads.Save(c.Request().Context(), fh.Filename, content, fh.Header.Get("Content-Type"))
}

// GET /v1/items
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("item list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/items/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	row, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if itemsvc.Code(err) == itemsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
		}
		h.Log.Error("item detail error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, row)
}

// GET /v1/search?q=
func (h *Controller) Search(c echo.Context) error {
	q := c.QueryParam("q")
	rows, err := h.Svc.Search(c.Request().Context(), q)
	if err != nil {
		h.Log.Error("search error", "err", err, "q", q)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"query": q, "data": rows})
}

// GET /v1/categories
func (h *Controller) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": h.Svc.Categories()})
}

// GET /v1/categories/:path
func (h *Controller) ByCategory(c echo.Context) error {
	cat, rows, err := h.Svc.ByCategoryPath(c.Request().Context(), c.Param("path"))
	if err != nil {
		if itemsvc.Code(err) == itemsvc.ErrUnknownCategory {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
		}
		h.Log.Error("category browse error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"category": cat, "data": rows})
}
