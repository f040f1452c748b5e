// Package lending implements the borrow / return / extend / reserve
// state machine over books and readers.
//
// A book moves AVAILABLE -> LENT -> AVAILABLE; while LENT it may carry
// one reservation, which grants its holder priority to borrow once the
// book comes back. Lending and reservation-by-another-party are mutually
// exclusive, which is what prevents double-booking.
package lending

import (
	"time"

	"github.com/shopspring/decimal"

	bookmodel "library-manager/internal/domains/book/model"
	readermodel "library-manager/internal/domains/reader/model"
)

// Fixed business policy. Not configurable, but named so tests can
// reference them instead of magic numbers.
const (
	// LoanPeriodDays is the length of one loan, and of one extension.
	LoanPeriodDays = 30

	// ReservationGraceDays is how long past the due date a reservation
	// stays valid.
	ReservationGraceDays = 7
)

// LateFeePerDay is the charge per whole day overdue, in currency units.
var LateFeePerDay = decimal.RequireFromString("0.5")

// Borrow checks the book out to the reader for LoanPeriodDays.
//
// Fails with ErrBookLentToSomeone when the book is already out, and with
// ErrBookReserved when someone else holds a reservation on it. Borrowing
// a book the reader reserved themselves consumes the reservation.
func Borrow(r *readermodel.Reader, b *bookmodel.Book, now time.Time) error {
	if b.Lent {
		return bookmodel.ErrBookLentToSomeone
	}
	if b.Reserved && !b.IsReservedBy(r.ID) {
		return bookmodel.ErrBookReserved
	}

	lentTo := r.ID
	due := now.AddDate(0, 0, LoanPeriodDays)
	b.Lent = true
	b.LentTo = &lentTo
	b.LentDate = &now
	b.ReturnDate = &due

	if b.IsReservedBy(r.ID) {
		b.ClearReservation()
	}

	r.AddBorrowed(b.ID)
	r.PastBorrowed[b.ID] = append(r.PastBorrowed[b.ID], now)
	return nil
}

// Return checks the book back in and computes the late fee.
//
// Only the reader the book is lent to may return it; anyone else gets
// ErrBookNotLentToReader. Being late is not an error - the fee is the
// result. A reservation held by the returning reader is cleared, one
// held by somebody else stays in place.
func Return(r *readermodel.Reader, b *bookmodel.Book, now time.Time) (decimal.Decimal, error) {
	if !b.Lent {
		return decimal.Zero, bookmodel.ErrBookNotLent
	}
	if !b.IsLentTo(r.ID) {
		return decimal.Zero, bookmodel.ErrBookNotLentToReader
	}

	fee := LateFee(*b.ReturnDate, now)

	b.ClearLoan()
	if b.IsReservedBy(r.ID) {
		b.ClearReservation()
	}

	r.RemoveBorrowed(b.ID)
	r.PastReturned[b.ID] = append(r.PastReturned[b.ID], now)
	return fee, nil
}

// Extend pushes the due date out by another LoanPeriodDays.
//
// Fails when the book is not lent, lent to a different reader, or
// reserved - a pending reservation blocks extension regardless of who
// holds it.
func Extend(r *readermodel.Reader, b *bookmodel.Book, now time.Time) (time.Time, error) {
	if !b.Lent {
		return time.Time{}, bookmodel.ErrBookNotLent
	}
	if !b.IsLentTo(r.ID) {
		return time.Time{}, bookmodel.ErrBookNotLentToReader
	}
	if b.Reserved {
		return time.Time{}, bookmodel.ErrBookReserved
	}

	due := b.ReturnDate.AddDate(0, 0, LoanPeriodDays)
	b.ReturnDate = &due

	r.PastExtended[b.ID] = append(r.PastExtended[b.ID], now)
	return due, nil
}

// Reserve places the reader's claim on a currently-lent book, valid
// until ReservationGraceDays past the due date.
//
// Reserving an available book is rejected with ErrBookNotLent - there is
// nothing to wait for, the reader can just borrow it. An existing
// reservation wins: ErrBookReserved.
func Reserve(r *readermodel.Reader, b *bookmodel.Book, now time.Time) (time.Time, error) {
	if !b.Lent {
		return time.Time{}, bookmodel.ErrBookNotLent
	}
	if b.Reserved {
		return time.Time{}, bookmodel.ErrBookReserved
	}

	reservedBy := r.ID
	until := b.ReturnDate.AddDate(0, 0, ReservationGraceDays)
	b.Reserved = true
	b.ReservedBy = &reservedBy
	b.ReservedUntil = &until

	r.PastReserved[b.ID] = append(r.PastReserved[b.ID], now)
	return until, nil
}

// LateFee is the charge for returning at now against the given due
// date: LateFeePerDay times the number of whole 24-hour days elapsed
// since the due date, floored. Sub-day lateness costs nothing; on-time
// returns cost zero.
func LateFee(dueDate, now time.Time) decimal.Decimal {
	if !now.After(dueDate) {
		return decimal.Zero
	}
	days := int64(now.Sub(dueDate).Hours() / 24)
	if days <= 0 {
		return decimal.Zero
	}
	return LateFeePerDay.Mul(decimal.NewFromInt(days))
}
