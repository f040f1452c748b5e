package repository

import (
	bookmodel "library-manager/internal/domains/book/model"
	"library-manager/internal/domains/reader/model"
)

// RepositoryInterface defines data access for the readers table.
// Same full-rewrite storage model as the book repository.
type RepositoryInterface interface {
	// LoadAll returns every reader in file order. Current loans are not
	// attached here - the readers sheet carries no lending columns, use
	// AttachBorrowedBooks with a freshly loaded book set.
	LoadAll() ([]model.Reader, error)

	// GetByID returns the reader with the given id, or ErrReaderNotFound.
	GetByID(id int) (*model.Reader, error)

	// Add assigns the next free id and appends the row.
	Add(r *model.Reader) error

	// Edit overwrites name, surname, phone and address of the matching
	// row. Returns ErrReaderNotFound if absent.
	Edit(id int, fields model.EditableFields) error

	// Remove deletes the matching row. Returns ErrReaderNotFound if
	// absent. Books lent to the removed reader keep their dangling
	// "Lent to" id; resolution treats it as an unknown borrower.
	Remove(id int) error

	// Search returns readers whose name, surname or phone contains the
	// query, case-insensitively, preserving file order.
	Search(query string) ([]model.Reader, error)
}

// AttachBorrowedBooks rebuilds each reader's current-loans list by
// scanning the book set for ids lent to them.
func AttachBorrowedBooks(readers []model.Reader, books []bookmodel.Book) {
	for i := range readers {
		readers[i].BorrowedBooks = nil
		for _, b := range books {
			if b.IsLentTo(readers[i].ID) {
				readers[i].AddBorrowed(b.ID)
			}
		}
	}
}
