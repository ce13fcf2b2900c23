package borrowed

// BorrowReq covers the two fields every borrow body must carry; everything
// else in the body is passed through to the store untouched.
type BorrowReq struct {
	UserEmail string `json:"userEmail" validate:"required"`
	BookID    string `json:"bookId" validate:"required"`
}
