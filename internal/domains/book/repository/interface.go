package repository

import "library-manager/internal/domains/book/model"

// RepositoryInterface defines data access for the books table.
//
// Every mutation reads the whole table, applies the change and rewrites
// the file. There is no locking: the design targets a single local user,
// concurrent writers would need a locking layer that does not exist here.
type RepositoryInterface interface {
	// LoadAll returns every book in file order.
	LoadAll() ([]model.Book, error)

	// GetByID returns the book with the given id, or ErrBookNotFound.
	GetByID(id int) (*model.Book, error)

	// Add assigns the next free id (max existing + 1, or 1 for an empty
	// table), appends the row and rewrites the file.
	Add(b *model.Book) error

	// Edit overwrites the catalog attributes of the matching row.
	// Lending state is untouched. Returns ErrBookNotFound if absent.
	Edit(id int, fields model.EditableFields) error

	// Remove deletes the matching row. Returns ErrBookNotFound if absent.
	Remove(id int) error

	// Search returns books whose title, author, publisher or ISBN
	// contains the query, case-insensitively, preserving file order.
	Search(query string) ([]model.Book, error)

	// UpdateLendingState persists the lending and reservation columns of
	// the given book. Catalog attributes are untouched. Returns
	// ErrBookNotFound if the id is absent.
	UpdateLendingState(b *model.Book) error
}
