package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-manager/internal/domains/book/model"
)

func newTestRepo(t *testing.T) RepositoryInterface {
	t.Helper()
	return NewExcelRepository(filepath.Join(t.TempDir(), "books.xlsx"))
}

func addBook(t *testing.T, repo RepositoryInterface, title, author string) *model.Book {
	t.Helper()
	b, err := model.NewBook(title, author, "123", "Ace", 412)
	require.NoError(t, err)
	require.NoError(t, repo.Add(b))
	return b
}

func TestRepository_AddAssignsSequentialIDs(t *testing.T) {
	repo := newTestRepo(t)

	first := addBook(t, repo, "Dune", "Herbert")
	assert.Equal(t, 1, first.ID, "first id in an empty table is 1")

	for i := 2; i <= 5; i++ {
		b := addBook(t, repo, "Dune", "Herbert")
		assert.Equal(t, i, b.ID)
	}

	books, err := repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, books, 5)
	for i, b := range books {
		assert.Equal(t, i+1, b.ID)
	}
}

func TestRepository_IDsSurviveRemoval(t *testing.T) {
	repo := newTestRepo(t)

	addBook(t, repo, "Dune", "Herbert")
	second := addBook(t, repo, "Hyperion", "Simmons")
	addBook(t, repo, "Solaris", "Lem")

	require.NoError(t, repo.Remove(second.ID))

	// Max existing id is 3, so the next assignment continues from 4
	// even with a gap in the middle.
	next := addBook(t, repo, "Ubik", "Dick")
	assert.Equal(t, 4, next.ID)
}

func TestRepository_IDsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.xlsx")

	repo := NewExcelRepository(path)
	addBook(t, repo, "Dune", "Herbert")
	addBook(t, repo, "Hyperion", "Simmons")

	// Fresh repository over the same file: ids continue, no restart
	// counter reset.
	reopened := NewExcelRepository(path)
	b := addBook(t, reopened, "Solaris", "Lem")
	assert.Equal(t, 3, b.ID)
}

func TestRepository_GetByID(t *testing.T) {
	repo := newTestRepo(t)
	added := addBook(t, repo, "Dune", "Herbert")

	got, err := repo.GetByID(added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)

	_, err = repo.GetByID(999)
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestRepository_EditPreservesLendingState(t *testing.T) {
	repo := newTestRepo(t)
	b := addBook(t, repo, "Dune", "Herbert")

	// Lend the book, then edit its catalog fields.
	lentTo := 7
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, 30)
	b.Lent = true
	b.LentTo = &lentTo
	b.LentDate = &now
	b.ReturnDate = &due
	require.NoError(t, repo.UpdateLendingState(b))

	require.NoError(t, repo.Edit(b.ID, model.EditableFields{
		Title: "Dune Messiah", Author: "Herbert", ISBN: "456", Publisher: "Ace", Pages: 256,
	}))

	got, err := repo.GetByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", got.Title)
	assert.Equal(t, 256, got.Pages)
	assert.True(t, got.Lent, "edit must not touch lending state")
	require.NotNil(t, got.LentTo)
	assert.Equal(t, 7, *got.LentTo)
	assert.Equal(t, due, *got.ReturnDate)
}

func TestRepository_EditNotFound(t *testing.T) {
	repo := newTestRepo(t)
	err := repo.Edit(42, model.EditableFields{Title: "X", Author: "Y", Pages: 1})
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestRepository_RemoveNotFound(t *testing.T) {
	repo := newTestRepo(t)
	assert.ErrorIs(t, repo.Remove(42), model.ErrBookNotFound)
}

func TestRepository_Remove(t *testing.T) {
	repo := newTestRepo(t)
	b := addBook(t, repo, "Dune", "Herbert")

	require.NoError(t, repo.Remove(b.ID))

	books, err := repo.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestRepository_SearchCaseInsensitive(t *testing.T) {
	repo := newTestRepo(t)
	addBook(t, repo, "Dune", "Herbert")
	addBook(t, repo, "Hyperion", "Simmons")

	lower, err := repo.Search("dune")
	require.NoError(t, err)
	upper, err := repo.Search("DUNE")
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
	require.Len(t, lower, 1)
	assert.Equal(t, "Dune", lower[0].Title)
}

func TestRepository_SearchColumns(t *testing.T) {
	repo := newTestRepo(t)

	b, err := model.NewBook("Solaris", "Lem", "978-83", "MON", 204)
	require.NoError(t, err)
	require.NoError(t, repo.Add(b))

	for _, q := range []string{"sola", "lem", "mon", "978"} {
		got, err := repo.Search(q)
		require.NoError(t, err)
		assert.Len(t, got, 1, "query %q", q)
	}

	none, err := repo.Search("herbert")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRepository_UpdateLendingStateRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	b := addBook(t, repo, "Dune", "Herbert")

	lentTo, reservedBy := 2, 5
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, 30)
	until := due.AddDate(0, 0, 7)
	b.Lent = true
	b.LentTo = &lentTo
	b.LentDate = &now
	b.ReturnDate = &due
	b.Reserved = true
	b.ReservedBy = &reservedBy
	b.ReservedUntil = &until

	require.NoError(t, repo.UpdateLendingState(b))

	got, err := repo.GetByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	// And clearing it persists too.
	got.ClearLoan()
	got.ClearReservation()
	require.NoError(t, repo.UpdateLendingState(got))

	cleared, err := repo.GetByID(b.ID)
	require.NoError(t, err)
	assert.False(t, cleared.Lent)
	assert.Nil(t, cleared.LentTo)
	assert.False(t, cleared.Reserved)
}

func TestRepository_UpdateLendingStateNotFound(t *testing.T) {
	repo := newTestRepo(t)
	b := &model.Book{ID: 9, Title: "Ghost", Author: "Nobody", Pages: 1}
	assert.ErrorIs(t, repo.UpdateLendingState(b), model.ErrBookNotFound)
}
