package echoServer

import (
	"net/http"

	"github.com/AbuBokorSiddik67/Library-Management-Server/app/echoServer/controller/book"
	"github.com/AbuBokorSiddik67/Library-Management-Server/app/echoServer/controller/borrowed"

	"github.com/labstack/echo/v4"
)

type C struct {
	Book     *book.Controller
	Borrowed *borrowed.Controller
}

func Register(e *echo.Echo, c C) {
	// Liveness
	e.GET("/", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Library management system is running...!")
	})

	// Catalog
	e.GET("/books", c.Book.List)
	e.GET("/books/:id", c.Book.Detail)
	e.POST("/books", c.Book.Create)
	e.PUT("/books/:id", c.Book.Replace)

	// Returns bump the counter here; deleting the loan entry is a separate
	// call below and the two may arrive in either order.
	e.PATCH("/book-quantity-inc/:bookId", c.Book.IncQuantity)

	// Borrowing ledger
	e.GET("/borrowed-books", c.Borrowed.ListByEmail)
	e.POST("/borrowed-books", c.Borrowed.Borrow)
	e.DELETE("/borrowed-books/:borrowedBookId", c.Borrowed.Delete)
}
