// model/borrowed.go
package model

// Borrowed-book entries are free-form like books, but every entry must carry
// these two fields. FieldBookID holds the book's id as a plain hex string,
// never as a native ObjectID.
const (
	FieldUserEmail = "userEmail"
	FieldBookID    = "bookId"
)
