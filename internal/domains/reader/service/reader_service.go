package service

import (
	"github.com/rs/zerolog/log"

	bookmodel "library-manager/internal/domains/book/model"
	bookrepo "library-manager/internal/domains/book/repository"
	"library-manager/internal/domains/reader/model"
	"library-manager/internal/domains/reader/repository"
)

type ReaderService struct {
	repo  repository.RepositoryInterface
	books bookrepo.RepositoryInterface
}

// NewService wires the reader catalog operations to the repositories.
// The book repository is needed to rebuild current loans on load.
func NewService(repo repository.RepositoryInterface, books bookrepo.RepositoryInterface) ServiceInterface {
	return &ReaderService{repo: repo, books: books}
}

func (s *ReaderService) ListReaders() ([]model.Reader, error) {
	readers, err := s.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	books, err := s.books.LoadAll()
	if err != nil {
		return nil, err
	}
	repository.AttachBorrowedBooks(readers, books)
	return readers, nil
}

func (s *ReaderService) GetReader(id int) (*model.Reader, error) {
	reader, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	books, err := s.books.LoadAll()
	if err != nil {
		return nil, err
	}
	readers := []model.Reader{*reader}
	repository.AttachBorrowedBooks(readers, books)
	return &readers[0], nil
}

func (s *ReaderService) AddReader(r *model.Reader) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := s.repo.Add(r); err != nil {
		return err
	}
	log.Info().Int("reader_id", r.ID).Str("name", r.Name).Str("surname", r.Surname).Msg("reader added")
	return nil
}

func (s *ReaderService) EditReader(id int, fields model.EditableFields) error {
	if err := fields.Validate(); err != nil {
		return err
	}
	return s.repo.Edit(id, fields)
}

// RemoveReader deletes the reader row. Loans are intentionally not
// released: books lent to the removed reader keep their dangling id and
// resolve to an unknown borrower.
func (s *ReaderService) RemoveReader(id int) error {
	if err := s.repo.Remove(id); err != nil {
		return err
	}
	log.Info().Int("reader_id", id).Msg("reader removed")
	return nil
}

func (s *ReaderService) SearchReaders(query string) ([]model.Reader, error) {
	readers, err := s.repo.Search(query)
	if err != nil {
		return nil, err
	}
	books, err := s.books.LoadAll()
	if err != nil {
		return nil, err
	}
	repository.AttachBorrowedBooks(readers, books)
	return readers, nil
}

func (s *ReaderService) BorrowedBooks(r *model.Reader) ([]bookmodel.Book, error) {
	books, err := s.books.LoadAll()
	if err != nil {
		return nil, err
	}
	lent := make([]bookmodel.Book, 0)
	for _, b := range books {
		if b.IsLentTo(r.ID) {
			lent = append(lent, b)
		}
	}
	return lent, nil
}
