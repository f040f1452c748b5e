package service

import (
	"library-manager/internal/domains/book/model"
	readermodel "library-manager/internal/domains/reader/model"
)

// ServiceInterface is the catalog operation set for books.
type ServiceInterface interface {
	ListBooks() ([]model.Book, error)
	GetBook(id int) (*model.Book, error)
	AddBook(b *model.Book) error
	EditBook(id int, fields model.EditableFields) error
	RemoveBook(id int) error
	SearchBooks(query string) ([]model.Book, error)

	// Borrower resolves the reader a book is lent to. Nil without error
	// when the book is not lent or the stored reader id dangles (reader
	// removed while still holding the loan).
	Borrower(b *model.Book) (*readermodel.Reader, error)

	// Reserver resolves the reader holding the reservation, same nil
	// semantics as Borrower.
	Reserver(b *model.Book) (*readermodel.Reader, error)
}
