package lending

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	bookmodel "library-manager/internal/domains/book/model"
	bookrepo "library-manager/internal/domains/book/repository"
	readermodel "library-manager/internal/domains/reader/model"
	readerrepo "library-manager/internal/domains/reader/repository"
)

// ServiceInterface is the lending operation set the presentation layer
// consumes. Operations address entities by id, load them fresh from the
// tables, run the state machine and persist the mutated book row.
type ServiceInterface interface {
	Borrow(readerID, bookID int) error
	Return(readerID, bookID int) (decimal.Decimal, error)
	Extend(readerID, bookID int) (time.Time, error)
	Reserve(readerID, bookID int) (time.Time, error)
}

type Service struct {
	books   bookrepo.RepositoryInterface
	readers readerrepo.RepositoryInterface
	now     func() time.Time
}

// NewService wires the lending operations to the two repositories.
func NewService(books bookrepo.RepositoryInterface, readers readerrepo.RepositoryInterface) *Service {
	return &Service{
		books:   books,
		readers: readers,
		now:     time.Now,
	}
}

// WithClock overrides the time source. Test hook.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Borrow lends the book to the reader and persists the new state.
func (s *Service) Borrow(readerID, bookID int) error {
	reader, book, err := s.load(readerID, bookID)
	if err != nil {
		return err
	}

	if err := Borrow(reader, book, s.now()); err != nil {
		return err
	}
	if err := s.books.UpdateLendingState(book); err != nil {
		return err
	}

	log.Info().Int("reader_id", readerID).Int("book_id", bookID).
		Time("due", *book.ReturnDate).Msg("book borrowed")
	return nil
}

// Return checks the book back in, persists the new state and reports
// the late fee.
func (s *Service) Return(readerID, bookID int) (decimal.Decimal, error) {
	reader, book, err := s.load(readerID, bookID)
	if err != nil {
		return decimal.Zero, err
	}

	fee, err := Return(reader, book, s.now())
	if err != nil {
		return decimal.Zero, err
	}
	if err := s.books.UpdateLendingState(book); err != nil {
		return decimal.Zero, err
	}

	log.Info().Int("reader_id", readerID).Int("book_id", bookID).
		Str("fee", fee.String()).Msg("book returned")
	return fee, nil
}

// Extend pushes the due date out and persists it. Returns the new due
// date.
func (s *Service) Extend(readerID, bookID int) (time.Time, error) {
	reader, book, err := s.load(readerID, bookID)
	if err != nil {
		return time.Time{}, err
	}

	due, err := Extend(reader, book, s.now())
	if err != nil {
		return time.Time{}, err
	}
	if err := s.books.UpdateLendingState(book); err != nil {
		return time.Time{}, err
	}

	log.Info().Int("reader_id", readerID).Int("book_id", bookID).
		Time("due", due).Msg("loan extended")
	return due, nil
}

// Reserve places the reader's claim on a lent book and persists it.
// Returns the reservation expiry.
func (s *Service) Reserve(readerID, bookID int) (time.Time, error) {
	reader, book, err := s.load(readerID, bookID)
	if err != nil {
		return time.Time{}, err
	}

	until, err := Reserve(reader, book, s.now())
	if err != nil {
		return time.Time{}, err
	}
	if err := s.books.UpdateLendingState(book); err != nil {
		return time.Time{}, err
	}

	log.Info().Int("reader_id", readerID).Int("book_id", bookID).
		Time("until", until).Msg("book reserved")
	return until, nil
}

// load fetches both entities fresh from the tables and rebuilds the
// reader's current-loans list from the book set.
func (s *Service) load(readerID, bookID int) (*readermodel.Reader, *bookmodel.Book, error) {
	reader, err := s.readers.GetByID(readerID)
	if err != nil {
		return nil, nil, err
	}

	books, err := s.books.LoadAll()
	if err != nil {
		return nil, nil, err
	}
	readers := []readermodel.Reader{*reader}
	readerrepo.AttachBorrowedBooks(readers, books)
	reader = &readers[0]

	for i := range books {
		if books[i].ID == bookID {
			return reader, &books[i], nil
		}
	}
	return nil, nil, bookmodel.ErrBookNotFound
}
