package repository

import (
	"fmt"
	"strings"

	"library-manager/internal/domains/book/model"
	"library-manager/internal/infrastructure/storage"
)

// excelRepository implements RepositoryInterface on top of the xlsx
// table store.
type excelRepository struct {
	table storage.Table
}

// NewExcelRepository creates a book repository backed by
// <dataDir>/books.xlsx. The file is created header-only on first access.
func NewExcelRepository(path string) RepositoryInterface {
	return &excelRepository{
		table: storage.Table{
			Path:    path,
			Sheet:   "Books",
			Columns: model.Columns,
		},
	}
}

func (r *excelRepository) LoadAll() ([]model.Book, error) {
	rows, err := r.table.ReadRows()
	if err != nil {
		return nil, err
	}

	books := make([]model.Book, 0, len(rows))
	for i, row := range rows {
		b, err := model.BookFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: books row %d: %v", storage.ErrStorage, i+2, err)
		}
		books = append(books, *b)
	}
	return books, nil
}

func (r *excelRepository) GetByID(id int) (*model.Book, error) {
	books, err := r.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range books {
		if books[i].ID == id {
			return &books[i], nil
		}
	}
	return nil, model.ErrBookNotFound
}

func (r *excelRepository) Add(b *model.Book) error {
	books, err := r.LoadAll()
	if err != nil {
		return err
	}

	b.ID = nextID(books)
	books = append(books, *b)
	return r.writeAll(books)
}

func (r *excelRepository) Edit(id int, fields model.EditableFields) error {
	books, err := r.LoadAll()
	if err != nil {
		return err
	}

	for i := range books {
		if books[i].ID != id {
			continue
		}
		books[i].Title = fields.Title
		books[i].Author = fields.Author
		books[i].ISBN = fields.ISBN
		books[i].Publisher = fields.Publisher
		books[i].Pages = fields.Pages
		return r.writeAll(books)
	}
	return model.ErrBookNotFound
}

func (r *excelRepository) Remove(id int) error {
	books, err := r.LoadAll()
	if err != nil {
		return err
	}

	for i := range books {
		if books[i].ID == id {
			books = append(books[:i], books[i+1:]...)
			return r.writeAll(books)
		}
	}
	return model.ErrBookNotFound
}

func (r *excelRepository) Search(query string) ([]model.Book, error) {
	books, err := r.LoadAll()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matches := make([]model.Book, 0)
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q) ||
			strings.Contains(strings.ToLower(b.Publisher), q) ||
			strings.Contains(strings.ToLower(b.ISBN), q) {
			matches = append(matches, b)
		}
	}
	return matches, nil
}

func (r *excelRepository) UpdateLendingState(b *model.Book) error {
	books, err := r.LoadAll()
	if err != nil {
		return err
	}

	for i := range books {
		if books[i].ID != b.ID {
			continue
		}
		books[i].Lent = b.Lent
		books[i].LentTo = b.LentTo
		books[i].LentDate = b.LentDate
		books[i].ReturnDate = b.ReturnDate
		books[i].Reserved = b.Reserved
		books[i].ReservedBy = b.ReservedBy
		books[i].ReservedUntil = b.ReservedUntil
		return r.writeAll(books)
	}
	return model.ErrBookNotFound
}

func (r *excelRepository) writeAll(books []model.Book) error {
	rows := make([][]any, 0, len(books))
	for i := range books {
		rows = append(rows, books[i].ToRow())
	}
	return r.table.WriteRows(rows)
}

func nextID(books []model.Book) int {
	max := 0
	for _, b := range books {
		if b.ID > max {
			max = b.ID
		}
	}
	return max + 1
}
