package repository

import (
	"fmt"
	"strings"

	"library-manager/internal/domains/reader/model"
	"library-manager/internal/infrastructure/storage"
)

type excelRepository struct {
	table storage.Table
}

// NewExcelRepository creates a reader repository backed by
// <dataDir>/readers.xlsx.
func NewExcelRepository(path string) RepositoryInterface {
	return &excelRepository{
		table: storage.Table{
			Path:    path,
			Sheet:   "Readers",
			Columns: model.Columns,
		},
	}
}

func (r *excelRepository) LoadAll() ([]model.Reader, error) {
	rows, err := r.table.ReadRows()
	if err != nil {
		return nil, err
	}

	readers := make([]model.Reader, 0, len(rows))
	for i, row := range rows {
		rd, err := model.ReaderFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: readers row %d: %v", storage.ErrStorage, i+2, err)
		}
		readers = append(readers, *rd)
	}
	return readers, nil
}

func (r *excelRepository) GetByID(id int) (*model.Reader, error) {
	readers, err := r.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range readers {
		if readers[i].ID == id {
			return &readers[i], nil
		}
	}
	return nil, model.ErrReaderNotFound
}

func (r *excelRepository) Add(rd *model.Reader) error {
	readers, err := r.LoadAll()
	if err != nil {
		return err
	}

	rd.ID = nextID(readers)
	readers = append(readers, *rd)
	return r.writeAll(readers)
}

func (r *excelRepository) Edit(id int, fields model.EditableFields) error {
	readers, err := r.LoadAll()
	if err != nil {
		return err
	}

	for i := range readers {
		if readers[i].ID != id {
			continue
		}
		readers[i].Name = fields.Name
		readers[i].Surname = fields.Surname
		readers[i].PhoneNum = fields.PhoneNum
		readers[i].Address = fields.Address
		return r.writeAll(readers)
	}
	return model.ErrReaderNotFound
}

func (r *excelRepository) Remove(id int) error {
	readers, err := r.LoadAll()
	if err != nil {
		return err
	}

	for i := range readers {
		if readers[i].ID == id {
			readers = append(readers[:i], readers[i+1:]...)
			return r.writeAll(readers)
		}
	}
	return model.ErrReaderNotFound
}

func (r *excelRepository) Search(query string) ([]model.Reader, error) {
	readers, err := r.LoadAll()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matches := make([]model.Reader, 0)
	for _, rd := range readers {
		if strings.Contains(strings.ToLower(rd.Name), q) ||
			strings.Contains(strings.ToLower(rd.Surname), q) ||
			strings.Contains(rd.PhoneNum, q) {
			matches = append(matches, rd)
		}
	}
	return matches, nil
}

func (r *excelRepository) writeAll(readers []model.Reader) error {
	rows := make([][]any, 0, len(readers))
	for i := range readers {
		rows = append(rows, readers[i].ToRow())
	}
	return r.table.WriteRows(rows)
}

func nextID(readers []model.Reader) int {
	max := 0
	for _, rd := range readers {
		if rd.ID > max {
			max = rd.ID
		}
	}
	return max + 1
}
