package borrowed

import (
	"log/slog"
	"net/http"

	"github.com/AbuBokorSiddik67/Library-Management-Server/model"
	borrowsvc "github.com/AbuBokorSiddik67/Library-Management-Server/service/borrow"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
)

type Controller struct {
	Svc borrowsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /borrowed-books?email=
func (h *Controller) ListByEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email query parameter is required."})
	}
	rows, err := h.Svc.ListByUser(c.Request().Context(), email)
	if err != nil {
		h.Log.Error("borrowed list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /borrowed-books
func (h *Controller) Borrow(c echo.Context) error {
	doc := bson.M{}
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	req := BorrowReq{}
	req.UserEmail, _ = doc[model.FieldUserEmail].(string)
	req.BookID, _ = doc[model.FieldBookID].(string)
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  echo.Map{"userEmail": "required", "bookId": "required"},
		})
	}

	ack, err := h.Svc.Borrow(c.Request().Context(), req.UserEmail, req.BookID, doc)
	if err != nil {
		switch borrowsvc.Code(err) {
		case borrowsvc.ErrAlreadyBorrowed:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "You have already borrowed this book."})
		case borrowsvc.ErrInvalidBookID:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid Book ID format provided."})
		default:
			h.Log.Error("borrow error", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal Server Error during borrow operation."})
		}
	}
	return c.JSON(http.StatusCreated, ack)
}

// DELETE /borrowed-books/:borrowedBookId
func (h *Controller) Delete(c echo.Context) error {
	id, err := model.ParseID(c.Param("borrowedBookId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		if borrowsvc.Code(err) == borrowsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Borrowed book entry not found."})
		}
		h.Log.Error("borrowed delete error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Borrowed book entry deleted successfully."})
}
