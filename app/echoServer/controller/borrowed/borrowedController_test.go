package borrowed_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AbuBokorSiddik67/Library-Management-Server/app/echoServer/controller/borrowed"
	borrowsvc "github.com/AbuBokorSiddik67/Library-Management-Server/service/borrow"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type svcMock struct {
	borrowFn func(ctx context.Context, userEmail, bookID string, doc bson.M) (*mongo.InsertOneResult, error)
	listFn   func(ctx context.Context, userEmail string) ([]bson.M, error)
	deleteFn func(ctx context.Context, id primitive.ObjectID) error
}

var _ borrowsvc.Service = (*svcMock)(nil)

func (m *svcMock) Borrow(ctx context.Context, userEmail, bookID string, doc bson.M) (*mongo.InsertOneResult, error) {
	return m.borrowFn(ctx, userEmail, bookID, doc)
}
func (m *svcMock) ListByUser(ctx context.Context, userEmail string) ([]bson.M, error) {
	return m.listFn(ctx, userEmail)
}
func (m *svcMock) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.deleteFn(ctx, id)
}

// coded mirrors the error shape the borrow service hands to controllers.
type coded struct{ c borrowsvc.ErrCode }

func (e coded) Error() string           { return string(e.c) }
func (e coded) Code() borrowsvc.ErrCode { return e.c }

func newController(svc borrowsvc.Service) *borrowed.Controller {
	return &borrowed.Controller{
		Svc: svc,
		V:   validator.New(),
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func jsonCtx(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListByEmail_MissingParam(t *testing.T) {
	h := newController(&svcMock{})
	c, rec := jsonCtx(http.MethodGet, "/borrowed-books", "")

	require.NoError(t, h.ListByEmail(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Email query parameter is required.")
}

func TestListByEmail_OK(t *testing.T) {
	h := newController(&svcMock{
		listFn: func(ctx context.Context, userEmail string) ([]bson.M, error) {
			require.Equal(t, "a@x.com", userEmail)
			return []bson.M{{"bookId": "507f1f77bcf86cd799439011"}}, nil
		},
	})
	c, rec := jsonCtx(http.MethodGet, "/borrowed-books?email=a@x.com", "")

	require.NoError(t, h.ListByEmail(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "507f1f77bcf86cd799439011")
}

func TestBorrow_Created(t *testing.T) {
	inserted := primitive.NewObjectID()
	h := newController(&svcMock{
		borrowFn: func(ctx context.Context, userEmail, bookID string, doc bson.M) (*mongo.InsertOneResult, error) {
			require.Equal(t, "a@x.com", userEmail)
			require.Equal(t, "507f1f77bcf86cd799439011", bookID)
			require.Equal(t, "Moby Dick", doc["title"])
			return &mongo.InsertOneResult{InsertedID: inserted}, nil
		},
	})
	body := `{"userEmail":"a@x.com","bookId":"507f1f77bcf86cd799439011","title":"Moby Dick"}`
	c, rec := jsonCtx(http.MethodPost, "/borrowed-books", body)

	require.NoError(t, h.Borrow(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), inserted.Hex())
}

func TestBorrow_MissingFields(t *testing.T) {
	h := newController(&svcMock{
		borrowFn: func(ctx context.Context, userEmail, bookID string, doc bson.M) (*mongo.InsertOneResult, error) {
			t.Fatal("service must not be called on a body without userEmail/bookId")
			return nil, nil
		},
	})
	c, rec := jsonCtx(http.MethodPost, "/borrowed-books", `{"title":"Moby Dick"}`)

	require.NoError(t, h.Borrow(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBorrow_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
		msg  string
	}{
		{"already borrowed", coded{borrowsvc.ErrAlreadyBorrowed}, http.StatusBadRequest, "You have already borrowed this book."},
		{"invalid book id", coded{borrowsvc.ErrInvalidBookID}, http.StatusBadRequest, "Invalid Book ID format provided."},
		{"datastore fault", io.ErrUnexpectedEOF, http.StatusInternalServerError, "Internal Server Error during borrow operation."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newController(&svcMock{
				borrowFn: func(ctx context.Context, userEmail, bookID string, doc bson.M) (*mongo.InsertOneResult, error) {
					return nil, tc.err
				},
			})
			body := `{"userEmail":"a@x.com","bookId":"507f1f77bcf86cd799439011"}`
			c, rec := jsonCtx(http.MethodPost, "/borrowed-books", body)

			require.NoError(t, h.Borrow(c))
			require.Equal(t, tc.want, rec.Code)
			require.Contains(t, rec.Body.String(), tc.msg)
		})
	}
}

func TestDelete_NotFound(t *testing.T) {
	h := newController(&svcMock{
		deleteFn: func(ctx context.Context, id primitive.ObjectID) error {
			return coded{borrowsvc.ErrNotFound}
		},
	})
	c, rec := jsonCtx(http.MethodDelete, "/borrowed-books/507f1f77bcf86cd799439011", "")
	c.SetParamNames("borrowedBookId")
	c.SetParamValues("507f1f77bcf86cd799439011")

	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Borrowed book entry not found.")
}

func TestDelete_InvalidID(t *testing.T) {
	h := newController(&svcMock{})
	c, rec := jsonCtx(http.MethodDelete, "/borrowed-books/nope", "")
	c.SetParamNames("borrowedBookId")
	c.SetParamValues("nope")

	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDelete_OK(t *testing.T) {
	h := newController(&svcMock{
		deleteFn: func(ctx context.Context, id primitive.ObjectID) error { return nil },
	})
	c, rec := jsonCtx(http.MethodDelete, "/borrowed-books/507f1f77bcf86cd799439011", "")
	c.SetParamNames("borrowedBookId")
	c.SetParamValues("507f1f77bcf86cd799439011")

	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Borrowed book entry deleted successfully.")
}
