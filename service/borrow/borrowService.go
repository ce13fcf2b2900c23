package borrowsvc

import (
	"context"
	"errors"

	"github.com/AbuBokorSiddik67/Library-Management-Server/model"
	bookrepo "github.com/AbuBokorSiddik67/Library-Management-Server/repository/book"
	borrowedrepo "github.com/AbuBokorSiddik67/Library-Management-Server/repository/borrowed"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// errors used by controllers

type ErrCode string

const (
	ErrAlreadyBorrowed ErrCode = "ALREADY_BORROWED"
	ErrInvalidBookID   ErrCode = "INVALID_BOOK_ID"
	ErrNotFound        ErrCode = "NOT_FOUND"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type LoanRepo interface {
	FindByUser(ctx context.Context, userEmail string) ([]bson.M, error)
	FindByUserAndBook(ctx context.Context, userEmail, bookID string) (bson.M, error)
	Create(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

type BookRepo interface {
	AdjustQuantity(ctx context.Context, id primitive.ObjectID, delta int) (*mongo.UpdateResult, error)
}

type Service interface {
	// Borrow: reject duplicates, record the loan, take one copy off the shelf.
	Borrow(ctx context.Context, userEmail, bookID string, doc bson.M) (*mongo.InsertOneResult, error)

	// ListByUser: every active loan entry for that exact email.
	ListByUser(ctx context.Context, userEmail string) ([]bson.M, error)

	// Delete: remove a loan entry after a return.
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ----- Service implementation -----

type service struct {
	loans LoanRepo
	books BookRepo
}

func New(loans LoanRepo, books BookRepo) Service {
	return &service{loans: loans, books: books}
}

// Borrow runs the one multi-step write in the system. The duplicate check and
// the insert are two separate datastore calls, so two concurrent borrows of
// the same (userEmail, bookId) can both pass the check; the store carries no
// unique index to stop them. Matches the behavior this service replaces.
func (s *service) Borrow(ctx context.Context, userEmail, bookID string, doc bson.M) (*mongo.InsertOneResult, error) {
	existing, err := s.loans.FindByUserAndBook(ctx, userEmail, bookID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, makeErr(ErrAlreadyBorrowed)
	}

	oid, err := model.ParseID(bookID)
	if err != nil {
		return nil, makeErr(ErrInvalidBookID)
	}

	ack, err := s.loans.Create(ctx, doc)
	if err != nil {
		return nil, err
	}

	// A decrement against a bookId that resolves to no book is a silent
	// no-op: the loan entry above is kept, not rolled back.
	if _, err := s.books.AdjustQuantity(ctx, oid, -1); err != nil && !errors.Is(err, bookrepo.ErrNotFound) {
		return nil, err
	}
	return ack, nil
}

func (s *service) ListByUser(ctx context.Context, userEmail string) ([]bson.M, error) {
	return s.loans.FindByUser(ctx, userEmail)
}

func (s *service) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.loans.DeleteByID(ctx, id)
	if errors.Is(err, borrowedrepo.ErrNotFound) {
		return makeErr(ErrNotFound)
	}
	return err
}
