package service

import (
	bookmodel "library-manager/internal/domains/book/model"
	"library-manager/internal/domains/reader/model"
)

// ServiceInterface is the catalog operation set for readers.
type ServiceInterface interface {
	// ListReaders returns all readers with their current loans attached.
	ListReaders() ([]model.Reader, error)
	GetReader(id int) (*model.Reader, error)
	AddReader(r *model.Reader) error
	EditReader(id int, fields model.EditableFields) error
	RemoveReader(id int) error
	SearchReaders(query string) ([]model.Reader, error)

	// BorrowedBooks returns the books currently lent to the reader.
	BorrowedBooks(r *model.Reader) ([]bookmodel.Book, error)
}
