package service

import (
	"errors"

	"github.com/rs/zerolog/log"

	"library-manager/internal/domains/book/model"
	"library-manager/internal/domains/book/repository"
	readermodel "library-manager/internal/domains/reader/model"
	readerrepo "library-manager/internal/domains/reader/repository"
)

type BookService struct {
	repo    repository.RepositoryInterface
	readers readerrepo.RepositoryInterface
}

// NewService wires the book catalog operations to the repositories. The
// reader repository is only used to resolve borrower / reserver ids.
func NewService(repo repository.RepositoryInterface, readers readerrepo.RepositoryInterface) ServiceInterface {
	return &BookService{repo: repo, readers: readers}
}

func (s *BookService) ListBooks() ([]model.Book, error) {
	return s.repo.LoadAll()
}

func (s *BookService) GetBook(id int) (*model.Book, error) {
	return s.repo.GetByID(id)
}

func (s *BookService) AddBook(b *model.Book) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if err := s.repo.Add(b); err != nil {
		return err
	}
	log.Info().Int("book_id", b.ID).Str("title", b.Title).Msg("book added")
	return nil
}

func (s *BookService) EditBook(id int, fields model.EditableFields) error {
	if err := fields.Validate(); err != nil {
		return err
	}
	return s.repo.Edit(id, fields)
}

func (s *BookService) RemoveBook(id int) error {
	if err := s.repo.Remove(id); err != nil {
		return err
	}
	log.Info().Int("book_id", id).Msg("book removed")
	return nil
}

func (s *BookService) SearchBooks(query string) ([]model.Book, error) {
	return s.repo.Search(query)
}

func (s *BookService) Borrower(b *model.Book) (*readermodel.Reader, error) {
	return s.resolve(b.LentTo)
}

func (s *BookService) Reserver(b *model.Book) (*readermodel.Reader, error) {
	return s.resolve(b.ReservedBy)
}

func (s *BookService) resolve(readerID *int) (*readermodel.Reader, error) {
	if readerID == nil {
		return nil, nil
	}
	reader, err := s.readers.GetByID(*readerID)
	if errors.Is(err, readermodel.ErrReaderNotFound) {
		// Dangling reference: the reader was removed while the book
		// still pointed at them.
		return nil, nil
	}
	return reader, err
}
