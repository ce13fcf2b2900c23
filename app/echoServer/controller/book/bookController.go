package book

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/AbuBokorSiddik67/Library-Management-Server/model"
	bookrepo "github.com/AbuBokorSiddik67/Library-Management-Server/repository/book"
	booksvc "github.com/AbuBokorSiddik67/Library-Management-Server/service/book"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
)

type Controller struct {
	Svc booksvc.Service
	Log *slog.Logger
}

// GET /books
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("book list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /books/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	row, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("book detail error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	// No match renders as a JSON null body, not a 404.
	return c.JSON(http.StatusOK, row)
}

// POST /books
func (h *Controller) Create(c echo.Context) error {
	doc := bson.M{}
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	ack, err := h.Svc.Create(c.Request().Context(), doc)
	if err != nil {
		h.Log.Error("book create error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, ack)
}

// PUT /books/:id
func (h *Controller) Replace(c echo.Context) error {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	fields := bson.M{}
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	ack, err := h.Svc.Replace(c.Request().Context(), id, fields)
	if err != nil {
		h.Log.Error("book replace error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, ack)
}

// PATCH /book-quantity-inc/:bookId
func (h *Controller) IncQuantity(c echo.Context) error {
	id, err := model.ParseID(c.Param("bookId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	ack, err := h.Svc.IncrementQuantity(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, bookrepo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Book not found."})
		}
		h.Log.Error("book quantity inc error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, ack)
}
