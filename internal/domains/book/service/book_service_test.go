package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-manager/internal/domains/book/model"
	"library-manager/internal/domains/book/repository"
	readermodel "library-manager/internal/domains/reader/model"
	readerrepo "library-manager/internal/domains/reader/repository"
)

func newTestService(t *testing.T) (ServiceInterface, repository.RepositoryInterface, readerrepo.RepositoryInterface) {
	t.Helper()
	dir := t.TempDir()
	books := repository.NewExcelRepository(filepath.Join(dir, "books.xlsx"))
	readers := readerrepo.NewExcelRepository(filepath.Join(dir, "readers.xlsx"))
	return NewService(books, readers), books, readers
}

func TestBookService_AddValidates(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.AddBook(&model.Book{Title: "", Author: "Herbert", Pages: 412})
	assert.Error(t, err)

	b := &model.Book{Title: "Dune", Author: "Herbert", ISBN: "123", Publisher: "Ace", Pages: 412}
	require.NoError(t, svc.AddBook(b))
	assert.Equal(t, 1, b.ID)
}

func TestBookService_Borrower(t *testing.T) {
	svc, books, readers := newTestService(t)

	r, err := readermodel.NewReader("Jan", "Kowalski", "123456789", readermodel.Address{})
	require.NoError(t, err)
	require.NoError(t, readers.Add(r))

	b := &model.Book{Title: "Dune", Author: "Herbert", Pages: 412}
	require.NoError(t, books.Add(b))

	// Not lent: no borrower, no error.
	got, err := svc.Borrower(b)
	require.NoError(t, err)
	assert.Nil(t, got)

	readerID := r.ID
	b.Lent = true
	b.LentTo = &readerID

	got, err = svc.Borrower(b)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Kowalski", got.Surname)
}

func TestBookService_BorrowerDanglingReference(t *testing.T) {
	svc, _, _ := newTestService(t)

	// The reader this id points at was never persisted (or was removed
	// while still holding the loan).
	gone := 42
	b := &model.Book{ID: 1, Title: "Dune", Author: "Herbert", Pages: 412, Lent: true, LentTo: &gone}

	got, err := svc.Borrower(b)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBookService_Reserver(t *testing.T) {
	svc, _, readers := newTestService(t)

	r, err := readermodel.NewReader("Anna", "Nowak", "987654321", readermodel.Address{})
	require.NoError(t, err)
	require.NoError(t, readers.Add(r))

	readerID := r.ID
	b := &model.Book{ID: 1, Title: "Dune", Author: "Herbert", Pages: 412, Reserved: true, ReservedBy: &readerID}

	got, err := svc.Reserver(b)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Nowak", got.Surname)
}
