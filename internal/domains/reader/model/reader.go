package model

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Columns is the fixed schema of the readers sheet.
var Columns = []string{"ID", "Name", "Surname", "Phone", "City", "Street", "Apartment", "Postal Code"}

var phonePattern = regexp.MustCompile(`^\d{9}$`)

// Reader represents a registered library member.
//
// BorrowedBooks and the four history logs are not persisted: BorrowedBooks
// is rebuilt from the books table on load (every book whose "Lent to" id
// matches), the history logs start empty each session and are append-only
// while the reader is in memory.
type Reader struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Surname  string  `json:"surname"`
	PhoneNum string  `json:"phone_num"`
	Address  Address `json:"address,omitempty"`

	// Book ids currently on loan to this reader.
	BorrowedBooks []int `json:"-"`

	// Per-book audit trails, keyed by book id.
	PastBorrowed map[int][]time.Time `json:"-"`
	PastReturned map[int][]time.Time `json:"-"`
	PastExtended map[int][]time.Time `json:"-"`
	PastReserved map[int][]time.Time `json:"-"`
}

// EditableFields are the reader attributes the edit path may change.
// Identity is excluded.
type EditableFields struct {
	Name     string  `json:"name"`
	Surname  string  `json:"surname"`
	PhoneNum string  `json:"phone_num"`
	Address  Address `json:"address"`
}

// NewReader validates the fields and returns a reader with no id assigned.
// Id assignment happens in the repository when the reader is persisted.
func NewReader(name, surname, phoneNum string, address Address) (*Reader, error) {
	r := &Reader{
		Name:     name,
		Surname:  surname,
		PhoneNum: phoneNum,
		Address:  address,
	}
	initHistory(r)
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks the reader invariants. The phone number check comes
// first so callers get the dedicated sentinel error for it.
func (r Reader) Validate() error {
	if !phonePattern.MatchString(r.PhoneNum) {
		return ErrInvalidPhoneNumber
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Surname, validation.Required),
	)
}

// Validate checks the editable subset with the same rules as construction.
func (f EditableFields) Validate() error {
	if !phonePattern.MatchString(f.PhoneNum) {
		return ErrInvalidPhoneNumber
	}
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required),
		validation.Field(&f.Surname, validation.Required),
	)
}

// HasBorrowed reports whether the book id is in the reader's current loans.
func (r *Reader) HasBorrowed(bookID int) bool {
	for _, id := range r.BorrowedBooks {
		if id == bookID {
			return true
		}
	}
	return false
}

// AddBorrowed records a book id as currently on loan.
func (r *Reader) AddBorrowed(bookID int) {
	if !r.HasBorrowed(bookID) {
		r.BorrowedBooks = append(r.BorrowedBooks, bookID)
	}
}

// RemoveBorrowed drops a book id from the current loans, if present.
func (r *Reader) RemoveBorrowed(bookID int) {
	for i, id := range r.BorrowedBooks {
		if id == bookID {
			r.BorrowedBooks = append(r.BorrowedBooks[:i], r.BorrowedBooks[i+1:]...)
			return
		}
	}
}

func (r Reader) String() string {
	return fmt.Sprintf("%s %s (%s)", r.Name, r.Surname, r.PhoneNum)
}

// ToRow flattens the reader into the fixed column order of the readers
// sheet. The phone number stays a string so leading zeros survive.
func (r *Reader) ToRow() []any {
	return []any{
		r.ID,
		r.Name,
		r.Surname,
		r.PhoneNum,
		r.Address.City,
		r.Address.Street,
		r.Address.Apartment,
		r.Address.PostalCode,
	}
}

// ReaderFromRow rebuilds a reader from one sheet row. Missing trailing
// address cells default to empty strings. The row is not re-validated:
// rows already persisted are trusted, only the id and shape are checked.
func ReaderFromRow(cells []string) (*Reader, error) {
	if len(cells) < len(Columns) {
		padded := make([]string, len(Columns))
		copy(padded, cells)
		cells = padded
	}

	id, err := strconv.Atoi(cells[0])
	if err != nil {
		return nil, fmt.Errorf("column %q: invalid value %q", Columns[0], cells[0])
	}

	r := &Reader{
		ID:       id,
		Name:     cells[1],
		Surname:  cells[2],
		PhoneNum: cells[3],
		Address: Address{
			City:       cells[4],
			Street:     cells[5],
			Apartment:  cells[6],
			PostalCode: cells[7],
		},
	}
	initHistory(r)
	return r, nil
}

func initHistory(r *Reader) {
	r.PastBorrowed = make(map[int][]time.Time)
	r.PastReturned = make(map[int][]time.Time)
	r.PastExtended = make(map[int][]time.Time)
	r.PastReserved = make(map[int][]time.Time)
}
