// model/book.go
package model

// Books are stored as free-form documents: clients decide the catalog fields
// (title, author, cover, ...). The only field the service itself reads or
// writes is the available-copy counter.
const FieldQuantity = "quantity"
