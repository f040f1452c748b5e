package model

import (
	"fmt"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Columns is the fixed schema of the books sheet.
var Columns = []string{
	"ID", "Title", "Author", "ISBN", "Publisher", "Pages",
	"Lent", "Lent to", "Lent date", "Return date",
	"Reserved", "Reserved by", "Reserved until",
}

// Book represents a single catalog entry.
//
// LentTo and ReservedBy are reader ids, not live references: the reader
// they point at is resolved through the reader repository when needed.
// Invariants: LentTo, LentDate and ReturnDate are set iff Lent is true;
// ReservedBy and ReservedUntil are set iff Reserved is true.
type Book struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	ISBN      string `json:"isbn"`
	Publisher string `json:"publisher"`
	Pages     int    `json:"pages"`

	Lent       bool       `json:"lent"`
	LentTo     *int       `json:"lent_to,omitempty"`
	LentDate   *time.Time `json:"lent_date,omitempty"`
	ReturnDate *time.Time `json:"return_date,omitempty"`

	Reserved      bool       `json:"reserved"`
	ReservedBy    *int       `json:"reserved_by,omitempty"`
	ReservedUntil *time.Time `json:"reserved_until,omitempty"`
}

// EditableFields are the book attributes the edit path may change.
// Identity and lending state are excluded.
type EditableFields struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	ISBN      string `json:"isbn"`
	Publisher string `json:"publisher"`
	Pages     int    `json:"pages"`
}

// NewBook validates the fields and returns a book with no id assigned.
// Id assignment happens in the repository when the book is persisted.
func NewBook(title, author, isbn, publisher string, pages int) (*Book, error) {
	b := &Book{
		Title:     title,
		Author:    author,
		ISBN:      isbn,
		Publisher: publisher,
		Pages:     pages,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b Book) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Title, validation.Required),
		validation.Field(&b.Author, validation.Required),
		validation.Field(&b.Pages, validation.Min(1)),
	)
}

func (f EditableFields) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required),
		validation.Field(&f.Author, validation.Required),
		validation.Field(&f.Pages, validation.Min(1)),
	)
}

// IsReservedBy reports whether the book is currently reserved by the
// given reader id.
func (b *Book) IsReservedBy(readerID int) bool {
	return b.Reserved && b.ReservedBy != nil && *b.ReservedBy == readerID
}

// IsLentTo reports whether the book is currently lent to the given
// reader id.
func (b *Book) IsLentTo(readerID int) bool {
	return b.Lent && b.LentTo != nil && *b.LentTo == readerID
}

// ClearReservation unsets the reservation state.
func (b *Book) ClearReservation() {
	b.Reserved = false
	b.ReservedBy = nil
	b.ReservedUntil = nil
}

// ClearLoan unsets the lending state.
func (b *Book) ClearLoan() {
	b.Lent = false
	b.LentTo = nil
	b.LentDate = nil
	b.ReturnDate = nil
}

func (b Book) String() string {
	return fmt.Sprintf("%s (%s, %s, %d pages)", b.Title, b.Author, b.Publisher, b.Pages)
}

// ToRow flattens the book into the fixed column order of the books sheet.
// Nullable fields serialize to blank cells; timestamps use RFC 3339 so
// the round trip through the sheet stays lossless.
func (b *Book) ToRow() []any {
	return []any{
		b.ID,
		b.Title,
		b.Author,
		b.ISBN,
		b.Publisher,
		b.Pages,
		b.Lent,
		optIntCell(b.LentTo),
		optTimeCell(b.LentDate),
		optTimeCell(b.ReturnDate),
		b.Reserved,
		optIntCell(b.ReservedBy),
		optTimeCell(b.ReservedUntil),
	}
}

// BookFromRow rebuilds a book from one sheet row. Blank lending cells
// default to not-lent / not-reserved; anything unparsable is an error
// naming the offending column.
func BookFromRow(cells []string) (*Book, error) {
	if len(cells) < len(Columns) {
		padded := make([]string, len(Columns))
		copy(padded, cells)
		cells = padded
	}

	b := &Book{
		Title:     cells[1],
		Author:    cells[2],
		ISBN:      cells[3],
		Publisher: cells[4],
	}

	var err error
	if b.ID, err = intCell(cells[0], Columns[0]); err != nil {
		return nil, err
	}
	if b.Pages, err = intCell(cells[5], Columns[5]); err != nil {
		return nil, err
	}
	if b.Lent, err = boolCell(cells[6], Columns[6]); err != nil {
		return nil, err
	}
	if b.LentTo, err = optIntFromCell(cells[7], Columns[7]); err != nil {
		return nil, err
	}
	if b.LentDate, err = optTimeFromCell(cells[8], Columns[8]); err != nil {
		return nil, err
	}
	if b.ReturnDate, err = optTimeFromCell(cells[9], Columns[9]); err != nil {
		return nil, err
	}
	if b.Reserved, err = boolCell(cells[10], Columns[10]); err != nil {
		return nil, err
	}
	if b.ReservedBy, err = optIntFromCell(cells[11], Columns[11]); err != nil {
		return nil, err
	}
	if b.ReservedUntil, err = optTimeFromCell(cells[12], Columns[12]); err != nil {
		return nil, err
	}

	// Cross-field invariants. A row that claims to be lent without a
	// borrower or due date would blow up the fee computation later.
	if b.Lent && (b.LentTo == nil || b.ReturnDate == nil) {
		return nil, fmt.Errorf("lent book without borrower or return date")
	}
	if b.Reserved && b.ReservedBy == nil {
		return nil, fmt.Errorf("reserved book without reserving reader")
	}

	return b, nil
}

func optIntCell(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}

func optTimeCell(v *time.Time) any {
	if v == nil {
		return ""
	}
	return v.Format(time.RFC3339)
}

func intCell(v, col string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("column %q: invalid value %q", col, v)
	}
	return n, nil
}

func boolCell(v, col string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("column %q: invalid value %q", col, v)
	}
	return b, nil
}

func optIntFromCell(v, col string) (*int, error) {
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("column %q: invalid value %q", col, v)
	}
	return &n, nil
}

func optTimeFromCell(v, col string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, fmt.Errorf("column %q: invalid value %q", col, v)
	}
	return &t, nil
}
